// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request structs.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the staff role and priority tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("staffrole", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()

		return raw == "" || entity.Priority(raw).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate returns ErrValidationFailed naming every failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Field()+" failed '"+fe.Tag()+"'")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(parts, "; "))
}
