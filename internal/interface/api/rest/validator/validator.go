package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/interface/api/rest/dto/auth"
)

const maxUsernameLen = 64

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateCredentials(r auth.Credentials) map[string]string {
	errs := make(map[string]string)

	username := user.NormalizeUsername(r.Username)
	password := r.Password // not trimmed, only checked for being non-empty

	// username (required + length + printable)
	if username == "" {
		errs["username"] = "username is required"
	} else if l := utf8.RuneCountInString(username); l > maxUsernameLen {
		errs["username"] = "username must be at most 64 characters"
	} else if strings.IndexFunc(username, isControl) >= 0 {
		errs["username"] = "username must not contain control characters"
	}

	// password (required + bcrypt limit)
	if password == "" {
		errs["password"] = "password is required"
	} else if len(password) > user.MaxPasswordBytes {
		errs["password"] = "password must be at most 72 bytes"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isControl(r rune) bool { return unicode.IsControl(r) }
