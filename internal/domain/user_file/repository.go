package user_file

import (
	"context"

	"file-registry-api/internal/domain/user"
)

// Repository is the record store of the user_files table. Every lookup and
// mutation is scoped to the owner, a file of another user reads as
// ErrFileNotFound.
type Repository interface {
	// CreateUserFileWithinQuota counts the owner's files and inserts req in
	// one unit of work. It fails with ErrQuotaExceeded when the owner already
	// holds quota files, and with user.ErrUserNotFound for an unknown owner.
	CreateUserFileWithinQuota(ctx context.Context, req *UserFile, quota int) (*UserFile, error)
	FetchUserFile(ctx context.Context, userID user.ID, id ID) (*UserFile, error)
	FetchUserFiles(ctx context.Context, userID user.ID) (UserFiles, error)
	CountUserFiles(ctx context.Context, userID user.ID) (int, error)
	DeleteUserFile(ctx context.Context, userID user.ID, id ID) error
}
