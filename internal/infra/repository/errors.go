package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
)

// classify maps a gorm error onto the domain failure kinds. Anything the
// database did not explicitly report is treated as a connectivity problem.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s (sqlstate %s)", domain.ErrRemoteRejected, pgErr.Message, pgErr.Code)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrInvalidData) {
		return fmt.Errorf("%w: %w", domain.ErrRemoteRejected, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
}
