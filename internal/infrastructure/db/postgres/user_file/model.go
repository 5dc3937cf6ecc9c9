package user_file

import (
	"time"

	"github.com/google/uuid"
)

type (
	UserFile struct {
		ID     uuid.UUID
		UserID uuid.UUID

		FileName  string
		SizeBytes int64

		UploadDate time.Time
	}
	UserFiles []*UserFile
)
