package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"clip-whisper/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateForm binds multipart or urlencoded form fields into req and runs
// struct tag validation plus domain validation.
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return errors.NewValidationError("Validation failed", fieldErrors(err))
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateQuery validates query parameters
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return errors.NewValidationError("Invalid query parameters", fieldErrors(err))
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func fieldErrors(err error) map[string]string {
	validationErrors := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		validationErrors["request"] = "invalid request format"
		return validationErrors
	}

	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			validationErrors[field] = "is required"
		case "min":
			validationErrors[field] = "is too small"
		case "max":
			validationErrors[field] = "is too large"
		case "oneof":
			validationErrors[field] = "must be one of the allowed values"
		default:
			validationErrors[field] = "is invalid"
		}
	}
	return validationErrors
}
