package mongo

import (
	"errors"

	driver "go.mongodb.org/mongo-driver/mongo"

	"atlas_travel/internal/domain"
)

// Unauthorized per the server error code table.
const codeUnauthorized = 13

// normalizeErr folds driver errors into the domain taxonomy. Unrecognized
// codes become unknown with the provider message preserved; an error that
// already carries a kind passes through untouched.
func normalizeErr(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	if errors.Is(err, driver.ErrNoDocuments) {
		return domain.NewError(domain.KindNotFound, domain.ErrNotFound.Message, err)
	}
	if driver.IsDuplicateKeyError(err) {
		return domain.NewError(domain.KindAlreadyExists, domain.ErrAlreadyExists.Message, err)
	}
	var ce driver.CommandError
	if errors.As(err, &ce) && ce.Code == codeUnauthorized {
		return domain.NewError(domain.KindPermissionDenied, domain.ErrPermissionDenied.Message, err)
	}
	var we driver.WriteException
	if errors.As(err, &we) {
		for _, w := range we.WriteErrors {
			if w.Code == codeUnauthorized {
				return domain.NewError(domain.KindPermissionDenied, domain.ErrPermissionDenied.Message, err)
			}
		}
	}
	return domain.NewError(domain.KindUnknown, err.Error(), err)
}
