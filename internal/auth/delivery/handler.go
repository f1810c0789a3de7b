package delivery

import (
	"net/http"

	authdto "textwiz-backend/internal/auth/dto"
	"textwiz-backend/internal/auth/usecase"
	"textwiz-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// refreshCookieMaxAge matches the original deployment's very long-lived
// cookie (86400 * 7000 seconds).
const refreshCookieMaxAge = 86400 * 7000

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	result, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.sendToken(c, http.StatusCreated, result)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.sendToken(c, http.StatusOK, result)
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("refreshToken", "", -1, "/", "", h.config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// sendToken writes the success envelope and sets the refresh-token cookie.
// The access token goes in the body; the refresh token never does.
func (h *AuthHandler) sendToken(c *gin.Context, status int, result *usecase.AuthResult) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("refreshToken", result.Tokens.RefreshToken, refreshCookieMaxAge, "/", "", h.config.IsProduction(), true)

	c.JSON(status, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   result.Tokens.AccessToken,
		"user":    result.User,
	})
}
