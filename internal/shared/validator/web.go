package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// webRegex matches a dotted domain with an optional http(s) scheme and path.
	// Examples: example.az, https://park-view.az/about
	webRegex = regexp.MustCompile(`^(https?://)?([A-Za-z0-9-]+\.)+[A-Za-z]{2,}(/\S*)?$`)
)

// ValidateWeb validates a website address
func ValidateWeb(fl validator.FieldLevel) bool {
	web := fl.Field().String()
	return webRegex.MatchString(web)
}
