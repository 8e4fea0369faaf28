package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domaincontract "github.com/natnael-haile/hireflow/internal/domain/contract"
	"github.com/natnael-haile/hireflow/internal/handler/http/middleware"
	"github.com/natnael-haile/hireflow/internal/infrastructure/metrics"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

type Router struct {
	authHandler    *AuthHandler
	projectHandler *ProjectHandler
	adminHandler   *AdminHandler
	eventHandler   *EventHandler
	tokenService   domaincontract.ITokenService
	metrics        *metrics.Metrics
}

func NewRouter(onboardingUC usecasecontract.IOnboardingUC, projectUC usecasecontract.IProjectUC, adminUC usecasecontract.IAdminUC, analyticsUC usecasecontract.IAnalyticsUC, tokenService domaincontract.ITokenService, config usecasecontract.IConfigProvider, m *metrics.Metrics) *Router {
	baseURL := config.GetAppBaseURL()
	return &Router{
		authHandler:    NewAuthHandler(onboardingUC, baseURL),
		projectHandler: NewProjectHandler(projectUC),
		adminHandler:   NewAdminHandler(adminUC),
		eventHandler:   NewEventHandler(analyticsUC),
		tokenService:   tokenService,
		metrics:        m,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	if r.metrics != nil {
		router.Use(r.metrics.GinMiddleware())
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", r.authHandler.SignUp)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	// Protected routes (authentication required)
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.tokenService))
	{
		protected.GET("/auth/me", r.authHandler.Me)

		protected.POST("/projects", r.projectHandler.CreateProject)
		protected.GET("/projects", r.projectHandler.ListProjects)
		protected.POST("/projects/:id/talent", r.projectHandler.AddTalent)
		protected.GET("/projects/:id/talent", r.projectHandler.ListTalent)
		protected.POST("/projects/:id/payments", r.projectHandler.RecordPayment)

		protected.POST("/events", r.eventHandler.TrackEvent)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireStaff())
		{
			admin.GET("/metrics", r.adminHandler.DashboardMetrics)
			admin.POST("/roles", r.adminHandler.GrantRole)
			admin.POST("/talent/:id/score", r.adminHandler.ScoreTalent)
		}
	}
}
