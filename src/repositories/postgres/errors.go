package postgres

import (
	"errors"

	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// mapError translates driver-level failures onto the service error taxonomy.
// Unique violations become Conflict; the store's constraint system is the
// sole arbiter of username/email uniqueness.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return services.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return services.ErrConflict
	}
	return err
}
