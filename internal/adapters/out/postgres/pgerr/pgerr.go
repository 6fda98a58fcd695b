// Package pgerr translates postgres driver errors into the errs taxonomy.
package pgerr

import (
	"errors"

	"drayage/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UniqueViolation is the SQLSTATE of a unique or primary key conflict.
const UniqueViolation = "23505"

// Translate maps unique violations to errs.ObjectAlreadyExistsError and a missing
// row to errs.ObjectNotFoundError. Other errors are returned unchanged.
func Translate(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == UniqueViolation {
		return errs.NewObjectAlreadyExistsErrorWithCause(entity, id, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause(entity, id, err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(entity, id, err)
	}

	return err
}
