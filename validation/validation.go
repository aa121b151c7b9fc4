// Package validation wraps a shared go-playground validator configured with
// the site's custom rules and JSON field naming.
// File: validation/validation.go
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"xtrnia/apperr"
)

var (
	// 10-digit Indian mobile number
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	// local@domain.tld, nothing stricter
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names so clients see "minClass", not "MinClass"
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "in_mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "basic_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct validates s and converts the first failing rule into an
// apperr.Validation error naming the field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return apperr.Wrap(apperr.Unexpected, "validation failed", err)
	}
	return fieldError(errs[0])
}

// IsMobile reports whether phone is a valid 10-digit Indian mobile number.
func IsMobile(phone string) bool {
	return mobilePattern.MatchString(phone)
}

// IsEmail reports whether email matches the basic local@domain.tld shape.
func IsEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func fieldError(e validator.FieldError) *apperr.Error {
	field := e.Field()
	var msg string

	switch e.ActualTag() {
	case "required":
		msg = fmt.Sprintf("field %s is required", field)
	case "in_mobile":
		msg = "Invalid phone number. Please enter a valid 10-digit Indian phone number"
	case "basic_email":
		msg = "Invalid email format"
	case "oneof":
		msg = fmt.Sprintf("field %s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	case "min", "gte":
		msg = fmt.Sprintf("field %s must be at least %s", field, e.Param())
	case "max", "lte":
		msg = fmt.Sprintf("field %s must be at most %s", field, e.Param())
	case "gtfield", "gtefield":
		msg = fmt.Sprintf("field %s must not be less than %s", field, lowerFirst(e.Param()))
	default:
		msg = fmt.Sprintf("field %s is invalid", field)
	}

	return &apperr.Error{Kind: apperr.Validation, Field: field, Message: msg}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
