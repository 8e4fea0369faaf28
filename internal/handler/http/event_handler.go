package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/natnael-haile/hireflow/internal/handler/http/dto"
	"github.com/natnael-haile/hireflow/internal/handler/http/middleware"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

type EventHandler struct {
	AnalyticsUC usecasecontract.IAnalyticsUC
}

func NewEventHandler(uc usecasecontract.IAnalyticsUC) *EventHandler {
	return &EventHandler{AnalyticsUC: uc}
}

func (h *EventHandler) TrackEvent(c *gin.Context) {
	var req dto.TrackEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	var userID *string
	if id := c.GetString(middleware.ContextUserID); id != "" {
		userID = &id
	}

	if dErr := h.AnalyticsUC.TrackEvent(c.Request.Context(), userID, req.Name, req.Props); dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	MessageHandler(c, http.StatusAccepted, "event recorded")
}
