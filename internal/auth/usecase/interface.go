package usecase

import (
	"context"

	authdomain "textwiz-backend/internal/auth/domain"
	authdto "textwiz-backend/internal/auth/dto"
)

// AuthResult bundles what a successful register/login hands back to the
// delivery layer: the token pair and the public profile fields.
type AuthResult struct {
	Tokens authdomain.TokenPair
	User   authdto.PublicUser
}

type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*AuthResult, error)
	ValidateAccessToken(tokenString string) (string, error)
}
