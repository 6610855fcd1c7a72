package validator

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/binagroup/complex-api-server/internal/shared/apierror"
	"github.com/go-playground/validator/v10"
)

// ToMessages converts gin binding/validator errors into one wire message per
// failed field, so the caller sees every problem at once.
func ToMessages(err error) ([]apierror.Message, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	msgs := make([]apierror.Message, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		msgs = append(msgs, apierror.Message{
			Status:  http.StatusBadRequest,
			Code:    "VALIDATION_ERROR",
			Message: getErrorMessage(fieldErr),
		})
	}
	return msgs, true
}

// getErrorMessage returns a user-facing message for one failed field
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", fe.Field())
	case "email":
		return fmt.Sprintf("'%s' must be a well-formed email address", fe.Field())
	case "min":
		return fmt.Sprintf("'%s' must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s characters", fe.Field(), fe.Param())
	case "phone":
		return fmt.Sprintf("'%s' must be a valid mobile number (+994XXXXXXXXX)", fe.Field())
	case "web":
		return fmt.Sprintf("'%s' must be a valid website address", fe.Field())
	case "url":
		return fmt.Sprintf("'%s' must be a valid URL", fe.Field())
	case "datetime":
		return fmt.Sprintf("'%s' must be a date in the format %s", fe.Field(), "yyyy-MM-dd")
	default:
		return fmt.Sprintf("'%s' is not valid", fe.Field())
	}
}
