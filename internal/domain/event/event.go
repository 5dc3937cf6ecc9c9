package event

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	UserRegistered    Action = "user.registered"
	UserAuthenticated Action = "user.authenticated"
	FileUploaded      Action = "file.uploaded"
	FileDeleted       Action = "file.deleted"
)

// Actions doubles as the list of routing keys bound on the exchange.
var Actions = []Action{UserRegistered, UserAuthenticated, FileUploaded, FileDeleted}

type (
	Event struct {
		ID      uuid.UUID `json:"event_id"`
		TS      time.Time `json:"time_stamp"`
		Action  Action    `json:"event_action"`
		UserID  string    `json:"user_id"`
		Payload any       `json:"payload,omitempty"`
	}
	UserPayload struct {
		Username string `json:"username"`
	}
	FilePayload struct {
		FileID    string `json:"file_id"`
		FileName  string `json:"file_name,omitempty"`
		SizeBytes int64  `json:"size_bytes,omitempty"`
	}
)

func New(action Action, userID uuid.UUID, payload any) Event {
	return Event{
		ID:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		UserID:  userID.String(),
		Payload: payload,
	}
}
