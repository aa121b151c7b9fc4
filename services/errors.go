// File: services/errors.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"xtrnia/apperr"
)

// dbError maps storage errors onto the application taxonomy. entity names
// the record for not-found messages.
func dbError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFoundf(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Wrap(apperr.Conflict, entity+" conflicts with a concurrent change, retry", err)
	default:
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return err
		}
		return apperr.Wrap(apperr.Unexpected, entity+" storage failure", err)
	}
}
