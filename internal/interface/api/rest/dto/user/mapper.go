package user

import (
	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/domain/user_file"
)

// ToResponseUser never carries the password hash.
func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:              uDomain.ID,
		Username:        uDomain.Username,
		LastInteraction: uDomain.LastInteraction.UnixMilli(),
	}

	return u
}

func ToResponseProfile(uDomain user.User, usage user_file.Usage) Profile {
	return Profile{
		User: ToResponseUser(uDomain),
		Usage: Usage{
			Files:     usage.Files,
			Limit:     usage.Limit,
			Remaining: usage.Remaining,
		},
	}
}
