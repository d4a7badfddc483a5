package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/go-playground/validator/v10"
)

const phoneLength = 10

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) == phoneLength
	})
	mustRegister(v, "usstate", func(fl validator.FieldLevel) bool {
		return entity.IsState(fl.Field().String())
	})
	mustRegister(v, "genre", func(fl validator.FieldLevel) bool {
		return entity.IsGenre(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// validateRequest converts validator failures into an entity.ValidationError
// keyed by the json field name.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	verr := entity.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fieldName(fe), fieldMessage(fe))
	}
	return verr
}

// fieldName strips the index validator appends to dive failures, genres[2].
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "is required"
	case "phone":
		return fmt.Sprintf("must have exactly %d digits", phoneLength)
	case "usstate":
		return "must be a US state code"
	case "genre":
		return fmt.Sprintf("has unknown genre %q", fe.Value())
	case "gt":
		return "must be a positive id"
	default:
		return "is invalid"
	}
}
