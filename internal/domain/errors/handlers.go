package errors

import (
	"gorm.io/gorm"

	"restops/internal/errors"
)

// Resolve returns the AppError carried by err, falling back to ErrInternalError
// so transports always have a code and message to answer with.
func Resolve(err error) AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return ErrInternalError
}

// IsAppError reports whether err carries an AppError anywhere in its chain.
func IsAppError(err error) bool {
	_, ok := errors.AsType[AppError](err)

	return ok
}

// IsCode reports whether err carries the business code of target.
func IsCode(err error, target AppError) bool {
	appErr, ok := errors.AsType[AppError](err)
	if !ok {
		return false
	}

	return appErr.ErrorCode() == target.ErrorCode()
}
