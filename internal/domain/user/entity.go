package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// bcrypt ignores everything past 72 bytes
const MaxPasswordBytes = 72

type (
	ID   = uuid.UUID
	User struct {
		ID              ID
		Username        string
		PasswordHash    string
		LastInteraction time.Time

		CreatedAt time.Time
	}
	Users []*User
)

// NormalizeUsername trims the name and brings it to NFC, so canonically
// equivalent spellings hit the same unique index entry.
func NormalizeUsername(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
