package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"file-registry-api/internal/domain"
)

const uniqueViolation = "23505"

func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// StoreError marks err as a store failure. Errors matching one of keep are
// domain outcomes and are returned untouched.
func StoreError(err error, keep ...error) error {
	if err == nil {
		return nil
	}
	for _, k := range keep {
		if errors.Is(err, k) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
