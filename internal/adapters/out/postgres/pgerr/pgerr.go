// Package pgerr maps low-level Postgres driver errors to domain error
// kinds shared by all repository packages.
package pgerr

import (
	"errors"

	"deliveryapp/internal/pkg/errs"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// Wrap translates unique constraint violations into ConflictError so
// handlers and the transport never see driver types. Other errors pass
// through unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewConflictErrorWithCause(string(pqErr.Constraint), err)
	}

	return err
}
