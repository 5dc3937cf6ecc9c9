package user_file

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/domain/user_file"
	"file-registry-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user_file.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUserFileWithinQuota(
	ctx context.Context,
	req *user_file.UserFile,
	quota int,
) (*user_file.UserFile, error) {
	uf := new(UserFile)

	err := postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var ownerID uuid.UUID
		if err := tx.QueryRow(ctx, LockOwner, req.UserID).Scan(&ownerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.ErrUserNotFound
			}
			return err
		}

		var n int
		if err := tx.QueryRow(ctx, CountUserFiles, req.UserID).Scan(&n); err != nil {
			return err
		}
		if n >= quota {
			return user_file.ErrQuotaExceeded
		}

		return tx.QueryRow(
			ctx,
			InsertUserFile,
			req.UserID, req.FileName, req.SizeBytes, req.UploadedAt,
		).Scan(
			&uf.ID,
			&uf.UserID,

			&uf.FileName,
			&uf.SizeBytes,

			&uf.UploadDate,
		)
	})
	if err != nil {
		return nil, postgres.StoreError(err, user.ErrUserNotFound, user_file.ErrQuotaExceeded)
	}

	return fromDBModel(uf), nil
}

func (r *Repository) FetchUserFile(ctx context.Context, userID user.ID, id user_file.ID) (*user_file.UserFile, error) {
	uf := new(UserFile)
	err := r.db.QueryRow(ctx, SelectUserFile, id, userID).Scan(
		&uf.ID,
		&uf.UserID,

		&uf.FileName,
		&uf.SizeBytes,

		&uf.UploadDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user_file.ErrFileNotFound
		}
		return nil, postgres.StoreError(err)
	}

	return fromDBModel(uf), nil
}

func (r *Repository) FetchUserFiles(ctx context.Context, userID user.ID) (user_file.UserFiles, error) {
	rows, err := r.db.Query(ctx, SelectUserFiles, userID)
	if err != nil {
		return nil, postgres.StoreError(err)
	}
	defer rows.Close()

	var ufs UserFiles
	for rows.Next() {
		uf := new(UserFile)

		if err = rows.Scan(
			&uf.ID,
			&uf.UserID,

			&uf.FileName,
			&uf.SizeBytes,

			&uf.UploadDate,
		); err != nil {
			return nil, postgres.StoreError(err)
		}

		ufs = append(ufs, uf)
	}
	if err = rows.Err(); err != nil {
		return nil, postgres.StoreError(err)
	}

	return fromDBModels(ufs), nil
}

func (r *Repository) CountUserFiles(ctx context.Context, userID user.ID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, CountUserFiles, userID).Scan(&n); err != nil {
		return 0, postgres.StoreError(err)
	}

	return n, nil
}

// DeleteUserFile removes the file only when it belongs to userID. Lookup and
// delete are the same statement, there is no window between them.
func (r *Repository) DeleteUserFile(ctx context.Context, userID user.ID, id user_file.ID) error {
	tag, err := r.db.Exec(ctx, DeleteUserFile, id, userID)
	if err != nil {
		return postgres.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return user_file.ErrFileNotFound
	}

	return nil
}
