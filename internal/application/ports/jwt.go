package ports

import (
	"file-registry-api/internal/domain/user"
)

type Auth interface {
	GenerateToken(u *user.User) (string, error)
}
