package postgres

import (
	"strings"

	domainerrors "restops/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes that gorm does not translate.
const (
	sqlStateNotNullViolation = "23502"
)

// constraintError maps a write failure caused by a table constraint to the
// domain error a caller can act on. It returns nil for any other error.
func constraintError(err error, subject string) error {
	switch {
	case err == nil:
		return nil
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(subject + " references an unknown shop or branch")
	case isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(subject + " violates a storage constraint")
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(subject + " already exists")
	default:
		return nil
	}
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// gorm has no sentinel for not-null violations, so match the SQLSTATE or the
// server message.
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, sqlStateNotNullViolation) ||
		strings.Contains(errMsg, "violates not-null constraint")
}
