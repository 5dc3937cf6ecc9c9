package ports

import (
	"context"

	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/domain/user_file"
)

// UserFileService expects ownerID to be an identity the caller has already
// verified.
type UserFileService interface {
	RegisterUpload(ctx context.Context, ownerID user.ID, fileName string, fileSize int64) (*user_file.UserFile, error)
	DeleteFile(ctx context.Context, ownerID user.ID, fileID user_file.ID) error
	FindFile(ctx context.Context, ownerID user.ID, fileID user_file.ID) (*user_file.UserFile, error)
	FindFiles(ctx context.Context, ownerID user.ID) (user_file.UserFiles, error)
	Usage(ctx context.Context, ownerID user.ID) (user_file.Usage, error)
}
