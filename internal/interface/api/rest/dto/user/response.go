package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		ID              uuid.UUID `json:"id"`
		Username        string    `json:"username"`
		LastInteraction int64     `json:"last_interaction"`
	}
	Usage struct {
		Files     int `json:"files"`
		Limit     int `json:"limit"`
		Remaining int `json:"remaining"`
	}
	Profile struct {
		User  User  `json:"user"`
		Usage Usage `json:"usage"`
	}
)
