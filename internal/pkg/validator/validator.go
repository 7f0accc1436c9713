// Package validator wraps go-playground/validator with the tags used for
// Ethereum inputs and a uniform error format.
//
// Besides the stock tags (eth_addr, url, oneof...) it registers:
//
//   - eth_hash: a 0x-prefixed 32-byte hex string (transaction hashes, topics).
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

// errStringFormat describes a single failed field.
//
// Example: "'Address': value '0x12' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var hashRegex = regexp.MustCompile(`^0[xX][0-9a-fA-F]{64}$`)

var validator = newValidator()

func newValidator() *gvalidator.Validate {
	v := gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("eth_hash", isHash); err != nil {
		panic(err)
	}

	return v
}

func isHash(fl gvalidator.FieldLevel) bool {
	return hashRegex.MatchString(fl.Field().String())
}

// formatError joins ErrValidationFailed with one message per failed field.
// Errors that are not validation errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fieldErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, fieldErr.Field(), fieldErr.Value(), fieldErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	type receiptInput struct {
//	    Hash string `validate:"required,eth_hash"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the input
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
