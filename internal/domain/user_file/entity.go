package user_file

import (
	"time"

	"github.com/google/uuid"

	"file-registry-api/internal/domain/user"
)

const (
	MaxFilesPerUser = 15
	// 15 MiB
	MaxFileSize = int64(15 << 20)
)

type (
	ID       = uuid.UUID
	UserFile struct {
		ID     ID
		UserID user.ID

		FileName  string
		SizeBytes int64

		UploadedAt time.Time
	}
	UserFiles []*UserFile

	Usage struct {
		Files     int
		Limit     int
		Remaining int
	}
)

func NewUsage(files int) Usage {
	return Usage{
		Files:     files,
		Limit:     MaxFilesPerUser,
		Remaining: max(MaxFilesPerUser-files, 0),
	}
}
