package user

import (
	domain "file-registry-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:              model.ID,
		Username:        model.Username,
		PasswordHash:    model.PasswordHash,
		LastInteraction: model.LastInteraction,

		CreatedAt: model.CreatedAt,
	}

	return u
}
