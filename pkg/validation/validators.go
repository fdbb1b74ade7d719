package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Matches the check the frontend runs before submitting: no whitespace,
// exactly one @ separating local part and domain, at least one dot after
// the @. Deliberately looser than full RFC 5322.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// ContactEmail validates an email address against the contact form pattern.
func ContactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}
