package api

import (
	authUsecase "textwiz-backend/internal/auth/usecase"
	gentextUsecase "textwiz-backend/internal/gentext/usecase"
	"textwiz-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	gentextUsecase gentextUsecase.GentextUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, gentextUc gentextUsecase.GentextUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		gentextUsecase: gentextUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(corsMiddleware(h.config.ClientOrigin))

	SetupRoutes(r, h.authUsecase, h.gentextUsecase, h.config)

	return r.Run(addr)
}

// corsMiddleware restricts cross-origin access to the known client origin
// and allows credentialed requests (the refresh-token cookie).
func corsMiddleware(clientOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == clientOrigin {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
