package services

import (
	"civilprotection-backend/models"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct checks column constraints declared on the model. Out of
// range numbers are bad input; overlong strings cannot be stored.
func validateStruct(v *validator.Validate, model interface{}) error {
	err := v.Struct(model)
	if err == nil {
		return nil
	}
	message := formatValidationErrors(err)
	if hasTag(err, "gte") {
		return models.ErrBadRequest.WithMessage(message)
	}
	return models.ErrUnprocessable.WithMessage(message)
}

func hasTag(err error, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, fieldError := range validationErrors {
		if fieldError.Tag() == tag {
			return true
		}
	}
	return false
}

// formatValidationErrors formats validation errors into readable messages
func formatValidationErrors(err error) string {
	var errorMessages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				errorMessages = append(errorMessages, fieldError.Field()+" is required")
			case "max":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at most "+fieldError.Param()+" characters")
			case "gte":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param())
			default:
				errorMessages = append(errorMessages, fieldError.Field()+" is invalid")
			}
		}
	}

	if len(errorMessages) == 0 {
		return models.ErrUnprocessable.Message
	}
	return strings.Join(errorMessages, "; ")
}
