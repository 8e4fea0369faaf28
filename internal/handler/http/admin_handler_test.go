package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/natnael-haile/hireflow/internal/infrastructure/jwt"

	handler "github.com/natnael-haile/hireflow/internal/handler/http"
	dto "github.com/natnael-haile/hireflow/internal/handler/http/dto"
	"github.com/natnael-haile/hireflow/internal/handler/http/middleware"
	mocks "github.com/natnael-haile/hireflow/internal/handler/http/mocks"
)

func setupAdminRouter(h *handler.AdminHandler, manager *jwt.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleWare(jwt.NewTokenService(manager)), middleware.RequireStaff())
	admin.GET("/metrics", h.DashboardMetrics)
	admin.POST("/roles", h.GrantRole)
	admin.POST("/talent/:id/score", h.ScoreTalent)
	return r
}

func adminToken(t *testing.T, manager *jwt.JWTManager, roles []string) string {
	t.Helper()
	token, err := manager.GenerateAccessToken("staff-id", "staff@example.com", roles)
	assert.NoError(t, err)
	return token
}

func TestDashboardMetricsHandler(t *testing.T) {
	mockUC := mocks.NewMockAdminUC()
	h := handler.NewAdminHandler(mockUC)
	manager := testTokenService()
	r := setupAdminRouter(h, manager)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, []string{"admin"}))

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total_revenue")
}

func TestAdminRoutesRejectNonStaff(t *testing.T) {
	mockUC := mocks.NewMockAdminUC()
	h := handler.NewAdminHandler(mockUC)
	manager := testTokenService()
	r := setupAdminRouter(h, manager)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, []string{"recruiter"}))

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGrantRoleHandler(t *testing.T) {
	mockUC := mocks.NewMockAdminUC()
	h := handler.NewAdminHandler(mockUC)
	manager := testTokenService()
	r := setupAdminRouter(h, manager)

	payload := dto.GrantRoleRequest{Email: "promoted@example.com", Role: "ops_manager"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/roles", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, []string{"ops_manager"}))

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "promoted@example.com")
}

func TestGrantRoleHandler_NotWhitelisted(t *testing.T) {
	mockUC := mocks.NewMockAdminUC()
	mockUC.NotWhitelisted = true
	h := handler.NewAdminHandler(mockUC)
	manager := testTokenService()
	r := setupAdminRouter(h, manager)

	payload := dto.GrantRoleRequest{Email: "stranger@example.com", Role: "admin"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/roles", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, []string{"admin"}))

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not whitelisted")
}

func TestScoreTalentHandler(t *testing.T) {
	mockUC := mocks.NewMockAdminUC()
	h := handler.NewAdminHandler(mockUC)
	manager := testTokenService()
	r := setupAdminRouter(h, manager)

	score := 87.5
	payload := dto.ScoreTalentRequest{Score: &score, Shortlisted: true, Summary: "strong candidate"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/talent/mock-talent-id/score", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, []string{"ops_manager"}))

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scored")
	assert.Contains(t, w.Body.String(), "87.5")
}

func TestScoreTalentHandler_AlreadyScored(t *testing.T) {
	mockUC := mocks.NewMockAdminUC()
	mockUC.TalentAlreadyScored = true
	h := handler.NewAdminHandler(mockUC)
	manager := testTokenService()
	r := setupAdminRouter(h, manager)

	score := 50.0
	payload := dto.ScoreTalentRequest{Score: &score}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/talent/mock-talent-id/score", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, []string{"ops_manager"}))

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestScoreTalentHandler_MissingScore(t *testing.T) {
	mockUC := mocks.NewMockAdminUC()
	h := handler.NewAdminHandler(mockUC)
	manager := testTokenService()
	r := setupAdminRouter(h, manager)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/talent/mock-talent-id/score", bytes.NewBuffer([]byte(`{"shortlisted":true}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, []string{"ops_manager"}))

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
