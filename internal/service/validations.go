package service

import (
	"errors"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
			_, err := parseISODate(fl.Field().String())
			return err == nil
		})
	})
}

// Joins every failed field into one error wrapping kind.
func validationError(kind error, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		joined := kind
		for _, fieldErr := range fieldErrs {
			joined = errors.Join(joined, fieldErr)
		}
		return joined
	}
	return fmt.Errorf("%w: unexpected error: %s", kind, err.Error())
}

func invalidLogData(err error) error {
	return validationError(errorvalues.ErrInvalidLogData, err)
}
