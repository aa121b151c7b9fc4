// Package router wires handlers, middleware and services into a gin engine.
// File: router/router.go
package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"xtrnia/apperr"
	"xtrnia/assets"
	"xtrnia/auth"
	"xtrnia/config"
	"xtrnia/controllers"
	"xtrnia/database"
	"xtrnia/logger"
	"xtrnia/metrics"
	"xtrnia/middleware"
	"xtrnia/services"
)

// Deps are the long-lived objects the routes need.
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Tokens  *auth.TokenManager
	Assets  assets.Host
	Metrics metrics.Publisher
}

func corsConfig(cfg *config.Config) cors.Config {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{cfg.ApplicationURL}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func recovery(c *gin.Context, recovered any) {
	middleware.RespondError(c, apperr.Wrap(apperr.Unexpected, "panic", fmt.Errorf("%v", recovered)), "Internal server error")
}

// New builds the engine with every route mounted.
func New(d Deps) *gin.Engine {
	if d.Metrics == nil {
		d.Metrics = metrics.Noop{}
	}

	router := gin.New()
	router.Use(
		gin.CustomRecovery(recovery),
		middleware.RequestLogger(),
		middleware.SecurityHeaders(),
		cors.New(corsConfig(d.Config)),
	)
	router.NoRoute(func(c *gin.Context) {
		middleware.RespondError(c, apperr.New(apperr.NotFound, "Route not found"), "Route not found")
	})

	// services
	adminSvc := services.NewAdminService(d.DB)
	competitionSvc := services.NewCompetitionService(d.DB)
	brochureSvc := services.NewBrochureService(d.DB, d.Assets)
	contactSvc := services.NewContactService(d.DB)
	uploadSvc := services.NewUploadService(d.Assets, d.Metrics)

	// controllers
	authController := controllers.NewAuthController(adminSvc, d.Tokens, d.Metrics, d.Config.Auth.CookieSecure)
	adminController := controllers.NewAdminController(adminSvc)
	competitionController := controllers.NewCompetitionController(competitionSvc)
	brochureController := controllers.NewBrochureController(brochureSvc)
	contactController := controllers.NewContactController(contactSvc)
	uploadController := controllers.NewUploadController(uploadSvc)
	pageController := controllers.NewPageController(brochureSvc, func(ctx context.Context) error {
		return database.Ping(ctx, d.DB)
	})

	adminOnly := middleware.AdminRequired(d.Tokens)

	// Public routes
	router.GET("/health", pageController.Health)
	router.GET("/competitions", competitionController.List)
	router.GET("/competitions/:id", competitionController.Get)
	router.GET("/brochures/active", brochureController.Active)
	router.GET("/brochures/active/qrcode", pageController.BrochureQRCode)
	router.POST("/contact", contactController.Submit)

	router.POST("/auth/login", authController.Login)
	router.POST("/auth/logout", authController.Logout)
	router.GET("/auth/verify", adminOnly, authController.Verify)

	// Protected routes
	protected := router.Group("/", adminOnly)
	{
		protected.POST("/competitions", competitionController.Create)
		protected.PUT("/competitions/:id", competitionController.Update)
		protected.DELETE("/competitions/:id", competitionController.Delete)
		protected.PATCH("/competitions/:id/toggle-type", competitionController.ToggleType)

		protected.GET("/brochures", brochureController.List)
		protected.POST("/brochures", brochureController.Create)
		protected.PUT("/brochures/:id", brochureController.Update)
		protected.DELETE("/brochures/:id", brochureController.Delete)
		protected.POST("/brochures/upload", uploadController.Brochure)

		protected.POST("/upload", uploadController.Image)

		protected.GET("/contact", contactController.List)
		protected.DELETE("/contact/:id", contactController.Delete)

		protected.GET("/admin/info", adminController.Info)
		protected.POST("/admin/change-password", adminController.ChangePassword)
	}

	logger.Debug.Printf("[router.New] %d routes mounted", len(router.Routes()))
	return router
}
