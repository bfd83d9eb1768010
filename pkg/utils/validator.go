package utils

import (
	"net/http"

	apperrors "alvs-system/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			"validation failed",
			err,
			map[string]interface{}{"reason": err.Error()},
		)
	}
	return nil
}
