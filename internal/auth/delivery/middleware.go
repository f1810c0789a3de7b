package delivery

import (
	"strings"

	"textwiz-backend/internal/apperrors"
	"textwiz-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperrors.New(apperrors.Unauthorized, "authorization header required"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Error(apperrors.New(apperrors.Unauthorized, "invalid authorization header format"))
			c.Abort()
			return
		}

		userID, err := authUsecase.ValidateAccessToken(parts[1])
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
