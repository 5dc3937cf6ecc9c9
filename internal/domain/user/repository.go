package user

import (
	"context"
	"time"
)

// Repository is the record store of the users table. Lookups that miss
// return ErrUserNotFound.
type Repository interface {
	CreateUser(ctx context.Context, req User) (*User, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
	TouchLastInteraction(ctx context.Context, id ID, at time.Time) (*User, error)
}
