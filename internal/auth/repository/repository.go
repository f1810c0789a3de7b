package repository

import (
	"context"

	authdomain "textwiz-backend/internal/auth/domain"
)

// UserRepository abstracts the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByUsername(ctx context.Context, username string) (*authdomain.User, error)
}
