package ports

import (
	"context"

	"file-registry-api/internal/domain/user"
)

type AccountService interface {
	Register(ctx context.Context, username, password string) (*user.User, error)
	Authenticate(ctx context.Context, username, password string) (*user.User, error)
	FindUser(ctx context.Context, id user.ID) (*user.User, error)
}
