package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/natnael-haile/hireflow/internal/infrastructure/jwt"

	handler "github.com/natnael-haile/hireflow/internal/handler/http"
	dto "github.com/natnael-haile/hireflow/internal/handler/http/dto"
	"github.com/natnael-haile/hireflow/internal/handler/http/middleware"
	mocks "github.com/natnael-haile/hireflow/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testTokenService() *jwt.JWTManager {
	return jwt.NewJWTManager("test-secret", time.Hour)
}

func setupAuthRouter(h *handler.AuthHandler, manager *jwt.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/api/auth/signup", h.SignUp)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleWare(jwt.NewTokenService(manager)))
	protected.GET("/api/auth/me", h.Me)
	return r
}

func TestSignUpHandler(t *testing.T) {
	mockUC := mocks.NewMockOnboardingUC()
	h := handler.NewAuthHandler(mockUC, "http://localhost:8080")
	r := setupAuthRouter(h, testTokenService())

	payload := dto.SignUpRequest{
		Email:       "test@example.com",
		Password:    "Sup3rSecret",
		FullName:    "Test User",
		CompanyName: "Test Co",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "mock-access-token")
}

func TestSignUpHandler_MissingFields(t *testing.T) {
	mockUC := mocks.NewMockOnboardingUC()
	h := handler.NewAuthHandler(mockUC, "http://localhost:8080")
	r := setupAuthRouter(h, testTokenService())

	// Email omitted intentionally to trigger binding validation.
	payload := dto.SignUpRequest{Password: "Sup3rSecret", FullName: "Test User"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Email' failed on the 'required' tag")
}

func TestSignUpHandler_Conflict(t *testing.T) {
	mockUC := mocks.NewMockOnboardingUC()
	mockUC.SignUpConflict = true
	h := handler.NewAuthHandler(mockUC, "http://localhost:8080")
	r := setupAuthRouter(h, testTokenService())

	payload := dto.SignUpRequest{Email: "taken@example.com", Password: "Sup3rSecret", FullName: "Test User"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "user already registered")
}

func TestLoginHandler(t *testing.T) {
	mockUC := mocks.NewMockOnboardingUC()
	h := handler.NewAuthHandler(mockUC, "http://localhost:8080")
	r := setupAuthRouter(h, testTokenService())

	payload := dto.LoginRequest{Email: "test@example.com", Password: "Sup3rSecret"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	mockUC := mocks.NewMockOnboardingUC()
	mockUC.ShouldFailSignIn = true
	h := handler.NewAuthHandler(mockUC, "http://localhost:8080")
	r := setupAuthRouter(h, testTokenService())

	payload := dto.LoginRequest{Email: "test@example.com", Password: "WrongPass1"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestMeHandler(t *testing.T) {
	mockUC := mocks.NewMockOnboardingUC()
	h := handler.NewAuthHandler(mockUC, "http://localhost:8080")
	manager := testTokenService()
	r := setupAuthRouter(h, manager)

	token, err := manager.GenerateAccessToken("mock-user-id", "test@example.com", []string{"recruiter"})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
	assert.Contains(t, w.Body.String(), "Test Co")
}

func TestMeHandler_NoToken(t *testing.T) {
	mockUC := mocks.NewMockOnboardingUC()
	h := handler.NewAuthHandler(mockUC, "http://localhost:8080")
	r := setupAuthRouter(h, testTokenService())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeHandler_BadToken(t *testing.T) {
	mockUC := mocks.NewMockOnboardingUC()
	h := handler.NewAuthHandler(mockUC, "http://localhost:8080")
	r := setupAuthRouter(h, testTokenService())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
