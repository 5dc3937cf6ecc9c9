package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID              uuid.UUID
		Username        string
		PasswordHash    string
		LastInteraction time.Time

		CreatedAt time.Time
	}
)
