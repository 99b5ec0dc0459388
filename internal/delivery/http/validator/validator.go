// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "todo/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance shared by all handlers.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct tag failures surface as the
// generic validation error so field internals never leak to clients.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
