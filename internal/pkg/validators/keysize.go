package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizeTag is the struct tag under which RSAKeySizeValidation is registered
const RSAKeySizeTag = "rsakeysize"

// RSAKeySizeValidation validates an RSA modulus size in bits.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case 1024, 2048, 3072, 4096:
		return true
	default:
		return false
	}
}

// New returns a validator with the harness specific validations registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(RSAKeySizeTag, RSAKeySizeValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
