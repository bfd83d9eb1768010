package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the custom validation rules used by the
// DTOs on the given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("tax_id", isBrazilianTaxID); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone_br", isBrazilianPhoneNumber); err != nil {
		return err
	}
	return nil
}

var (
	// CPF (000.000.000-00) or CNPJ (00.000.000/0000-00), punctuation optional.
	cpfRegex  = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)
	cnpjRegex = regexp.MustCompile(`^\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}$`)

	// (11) 98888-7777 with optional area parentheses and separator.
	phoneRegex = regexp.MustCompile(`^\(?\d{2}\)?[\s-]?\d{4,5}-?\d{4}$`)
)

func isBrazilianTaxID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return cpfRegex.MatchString(s) || cnpjRegex.MatchString(s)
}

func isBrazilianPhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}
