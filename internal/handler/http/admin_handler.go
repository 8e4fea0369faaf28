package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/natnael-haile/hireflow/internal/handler/http/dto"
	"github.com/natnael-haile/hireflow/internal/handler/http/middleware"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

type AdminHandler struct {
	AdminUC usecasecontract.IAdminUC
}

func NewAdminHandler(uc usecasecontract.IAdminUC) *AdminHandler {
	return &AdminHandler{AdminUC: uc}
}

func (h *AdminHandler) DashboardMetrics(c *gin.Context) {
	metrics, dErr := h.AdminUC.DashboardMetrics(c.Request.Context())
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToMetricsResponse(metrics))
}

func (h *AdminHandler) GrantRole(c *gin.Context) {
	var req dto.GrantRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	grantedBy := c.GetString(middleware.ContextUserID)
	user, dErr := h.AdminUC.GrantRole(c.Request.Context(), grantedBy, req.Email, req.Role)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(user))
}

func (h *AdminHandler) ScoreTalent(c *gin.Context) {
	var req dto.ScoreTalentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	profile, dErr := h.AdminUC.ScoreTalent(c.Request.Context(), c.Param("id"), *req.Score, req.Shortlisted, req.Summary)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToTalentResponse(profile))
}
