package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches Azerbaijani mobile numbers: +994, a known operator
	// prefix, then exactly seven digits. Example: +994501234567
	phoneRegex = regexp.MustCompile(`^\+994(10|50|51|55|60|70|77|99)[0-9]{7}$`)
)

// ValidatePhone validates an Azerbaijani mobile phone number
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phoneRegex.MatchString(phone)
}
