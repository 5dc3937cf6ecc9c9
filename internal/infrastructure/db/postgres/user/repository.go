package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*user.User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.LastInteraction,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, postgres.StoreError(err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return scanUser(r.db.QueryRow(ctx, SelectUserByID, id))
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return scanUser(r.db.QueryRow(ctx, SelectUserByUsername, username))
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.PasswordHash, req.LastInteraction,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrUsernameTaken
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) TouchLastInteraction(ctx context.Context, id user.ID, at time.Time) (*user.User, error) {
	return scanUser(r.db.QueryRow(ctx, UpdateLastInteraction, at, id))
}
