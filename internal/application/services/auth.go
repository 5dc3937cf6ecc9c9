package services

import (
	"errors"
	"time"

	"file-registry-api/internal/application/ports"
	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/infrastructure/jwt"
)

var ErrFailedToGenerateToken = errors.New("failed to generate token")

// AuthService issues bearer tokens for users AccountService has already
// authenticated. It does not look at passwords.
type AuthService struct {
	jwtService *jwt.Service
	ttl        time.Duration
}

func NewAuthService(
	jwtService *jwt.Service,
	ttl time.Duration,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
		ttl:        ttl,
	}
}

func (as *AuthService) GenerateToken(u *user.User) (string, error) {
	token, err := as.jwtService.GenerateJWT(u.ID.String(), as.ttl)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
