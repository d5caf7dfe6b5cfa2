package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	if err := validate.RegisterValidation("imagemime", validateImageMIME); err != nil {
		panic(fmt.Sprintf("failed to register imagemime validation: %v", err))
	}
}

// Validate validates a struct using tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateEmail validates a single recipient address
func ValidateEmail(email string) error {
	return validate.Var(email, "required,email")
}

// ValidateImageMIME validates that a MIME type names an image
func ValidateImageMIME(mimeType string) error {
	return validate.Var(mimeType, "required,imagemime")
}

// Custom validation functions

func validateImageMIME(fl validator.FieldLevel) bool {
	mimeType := strings.ToLower(strings.TrimSpace(fl.Field().String()))

	// MIME parameters such as "; charset=binary" are ignored
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	subtype, ok := strings.CutPrefix(mimeType, "image/")
	return ok && subtype != ""
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string
	Error string
}

// FormatError formats a validation error into a human-readable message
func FormatError(err error) []ValidationError {
	var validationErrors []ValidationError

	if err == nil {
		return validationErrors
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return validationErrors
	}

	for _, e := range errs {
		var message string

		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", e.Field())
		case "email":
			message = "Invalid email address"
		case "imagemime":
			message = "Photo must be an image"
		case "max":
			message = fmt.Sprintf("%s is too large", e.Field())
		default:
			message = fmt.Sprintf("Invalid value for %s", e.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field: strings.ToLower(e.Field()),
			Error: message,
		})
	}

	return validationErrors
}
