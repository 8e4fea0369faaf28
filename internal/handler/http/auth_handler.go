package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/natnael-haile/hireflow/internal/handler/http/dto"
	"github.com/natnael-haile/hireflow/internal/handler/http/middleware"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

type AuthHandler struct {
	OnboardingUC usecasecontract.IOnboardingUC
	BaseURL      string
}

func NewAuthHandler(uc usecasecontract.IOnboardingUC, baseURL string) *AuthHandler {
	return &AuthHandler{
		OnboardingUC: uc,
		BaseURL:      baseURL,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	session, dErr := h.OnboardingUC.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName, req.CompanyName)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	session, dErr := h.OnboardingUC.SignIn(c.Request.Context(), req.Email, req.Password)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToSessionResponse(session))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if dErr := h.OnboardingUC.SignOut(c.Request.Context()); dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}
	MessageHandler(c, http.StatusOK, "logged out")
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, recruiter, dErr := h.OnboardingUC.CurrentUser(c.Request.Context(), userID)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	out := dto.MeResponse{User: dto.ToUserResponse(user)}
	if recruiter != nil {
		rec := dto.ToRecruiterResponse(recruiter)
		out.Recruiter = &rec
	}
	SuccessHandler(c, http.StatusOK, out)
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *AuthHandler) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  h.BaseURL + "/api/auth/google/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func (h *AuthHandler) HandleGoogleLogin(c *gin.Context) {
	b := make([]byte, 16)
	rand.Read(b)
	oauthStateString := base64.URLEncoding.EncodeToString(b)
	c.SetCookie("oauthState", oauthStateString, 300, "/", "localhost", false, true)

	url := h.googleOauthConfig().AuthCodeURL(oauthStateString)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie("oauthState")

	if err != nil || state != cookieState {
		c.String(http.StatusUnauthorized, "invalid CSRF state token\n")
		return
	}
	c.SetCookie("oauthState", "", -1, "/", "localhost", false, true)

	code := c.Query("code")
	if code == "" {
		c.String(http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := c.Request.Context()

	token, err := h.googleOauthConfig().Exchange(requestCtx, code)
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("failed to exchange authorization code for token: %v\n", err))
		return
	}

	client := h.googleOauthConfig().Client(requestCtx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("failed to get user info: %v", err))
		return
	}
	defer resp.Body.Close()

	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("failed to decode user info: %v\n", err))
		return
	}

	session, dErr := h.OnboardingUC.SignInWithGoogle(requestCtx, userInfo.Email, userInfo.Name)
	if dErr != nil {
		DataErrorHandler(c, dErr)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToSessionResponse(session))
}
