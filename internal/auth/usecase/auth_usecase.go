package usecase

import (
	"context"
	"time"

	"textwiz-backend/internal/apperrors"
	authdomain "textwiz-backend/internal/auth/domain"
	authdto "textwiz-backend/internal/auth/dto"
	"textwiz-backend/internal/auth/repository"
	"textwiz-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*AuthResult, error) {
	existingEmail, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existingEmail != nil {
		return nil, apperrors.New(apperrors.Duplicate, "Email is already registered")
	}

	existingUsername, err := u.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existingUsername != nil {
		return nil, apperrors.New(apperrors.Duplicate, "Username is already taken")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	// The unique indexes catch the race where two registrations slip past
	// the pre-checks; the duplicate-key error is normalized at the boundary.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issueTokens(user)
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*AuthResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.New(apperrors.Validation, "Please provide email and password")
	}

	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.New(apperrors.Unauthorized, "Invalid credentials")
	}

	// bcrypt's compare is the constant-time check; same message as the
	// unknown-email path so responses never reveal whether the account exists.
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.New(apperrors.Unauthorized, "Invalid credentials")
	}

	return u.issueTokens(user)
}

func (u *authUsecase) issueTokens(user *authdomain.User) (*AuthResult, error) {
	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Tokens: authdomain.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
		User: authdto.PublicUser{
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":  user.ID.Hex(),
		"exp": time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTAccessSecret))
}

func (u *authUsecase) generateRefreshToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID.Hex(),
		"token_id": uuid.New().String(),
		"exp":      time.Now().Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTRefreshSecret))
}

// ValidateAccessToken checks the signature and expiry of a bearer token and
// returns the user ID it carries.
func (u *authUsecase) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTAccessSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.New(apperrors.Unauthorized, "invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.New(apperrors.Unauthorized, "invalid token claims")
	}

	userID, ok := claims["id"].(string)
	if !ok {
		return "", apperrors.New(apperrors.Unauthorized, "invalid token claims")
	}

	return userID, nil
}
