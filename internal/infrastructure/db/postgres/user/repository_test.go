package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-registry-api/internal/domain"
	"file-registry-api/internal/domain/user"
)

var userColumns = []string{"id", "username", "password_hash", "last_interaction", "created_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_CreateUser(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000).UTC()
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "inserted",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(InsertUser).
					WithArgs("alice", "hash", at).
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(id, "alice", "hash", at, at))
			},
		},
		{
			name: "duplicate username",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(InsertUser).
					WithArgs("alice", "hash", at).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_uq"})
			},
			wantErr: user.ErrUsernameTaken,
		},
		{
			name: "db down",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(InsertUser).
					WithArgs("alice", "hash", at).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := newMock(t)
			tt.setup(m)

			u, err := NewRepository(m).CreateUser(context.Background(), user.User{
				Username:        "alice",
				PasswordHash:    "hash",
				LastInteraction: at,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, u.ID)
				assert.Equal(t, "alice", u.Username)
				assert.True(t, u.LastInteraction.Equal(at))
			}
			require.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestRepository_FetchUserByUsername(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000).UTC()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		m := newMock(t)
		m.ExpectQuery(SelectUserByUsername).
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(id, "alice", "hash", at, at))

		u, err := NewRepository(m).FetchUserByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "hash", u.PasswordHash)
		require.NoError(t, m.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		m := newMock(t)
		m.ExpectQuery(SelectUserByUsername).
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		u, err := NewRepository(m).FetchUserByUsername(context.Background(), "nobody")
		require.ErrorIs(t, err, user.ErrUserNotFound)
		require.NotErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Nil(t, u)
		require.NoError(t, m.ExpectationsWereMet())
	})
}

func TestRepository_FetchUserByID(t *testing.T) {
	m := newMock(t)
	id := uuid.New()
	m.ExpectQuery(SelectUserByID).
		WithArgs(id).
		WillReturnError(errors.New("timeout"))

	_, err := NewRepository(m).FetchUserByID(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestRepository_TouchLastInteraction(t *testing.T) {
	created := time.UnixMilli(1_700_000_000_000).UTC()
	at := created.Add(time.Hour)
	id := uuid.New()

	m := newMock(t)
	m.ExpectQuery(UpdateLastInteraction).
		WithArgs(at, id).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(id, "alice", "hash", at, created))

	u, err := NewRepository(m).TouchLastInteraction(context.Background(), id, at)
	require.NoError(t, err)
	assert.True(t, u.LastInteraction.Equal(at))
	assert.True(t, u.CreatedAt.Equal(created))
	require.NoError(t, m.ExpectationsWereMet())
}
