package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/natnael-haile/hireflow/internal/handler/http/dto"
	"github.com/natnael-haile/hireflow/internal/handler/http/middleware"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

type ProjectHandler struct {
	ProjectUC usecasecontract.IProjectUC
}

func NewProjectHandler(uc usecasecontract.IProjectUC) *ProjectHandler {
	return &ProjectHandler{ProjectUC: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	project, dErr := h.ProjectUC.CreateProject(c.Request.Context(), userID, req.Title, req.Tier, req.CandidateSource)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	projects, dErr := h.ProjectUC.ListProjects(c.Request.Context(), userID)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ToProjectResponse(p))
	}
	SuccessHandler(c, http.StatusOK, out)
}

func (h *ProjectHandler) AddTalent(c *gin.Context) {
	var req dto.AddTalentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	projectID := c.Param("id")

	talent, dErr := h.ProjectUC.AddTalent(c.Request.Context(), userID, projectID, req.FullName, req.FileName)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToTalentResponse(talent))
}

func (h *ProjectHandler) ListTalent(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	projectID := c.Param("id")

	talent, dErr := h.ProjectUC.ListTalent(c.Request.Context(), userID, projectID)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	out := make([]dto.TalentResponse, 0, len(talent))
	for _, t := range talent {
		out = append(out, dto.ToTalentResponse(t))
	}
	SuccessHandler(c, http.StatusOK, out)
}

func (h *ProjectHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	projectID := c.Param("id")

	payment, dErr := h.ProjectUC.RecordPayment(c.Request.Context(), userID, projectID, req.Amount, req.Currency)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	SuccessHandler(c, http.StatusCreated, payment)
}
