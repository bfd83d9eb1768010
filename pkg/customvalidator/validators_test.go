package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxIDValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))

	valid := []string{
		"12.345.678/0001-90",
		"12345678000190",
		"123.456.789-09",
		"12345678909",
	}
	for _, s := range valid {
		assert.NoError(t, v.Var(s, "tax_id"), s)
	}

	invalid := []string{"", "abc", "12.345/0001", "123.456.789"}
	for _, s := range invalid {
		assert.Error(t, v.Var(s, "tax_id"), s)
	}
}

func TestPhoneValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))

	valid := []string{"(11) 98888-7777", "11988887777", "(11) 3333-4444"}
	for _, s := range valid {
		assert.NoError(t, v.Var(s, "phone_br"), s)
	}

	invalid := []string{"phone", "123", "(11) 98888-77"}
	for _, s := range invalid {
		assert.Error(t, v.Var(s, "phone_br"), s)
	}
}
