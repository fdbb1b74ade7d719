package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldJSONNames maps ContactMessage struct fields to the JSON names the
// frontend keys its inline errors by.
var fieldJSONNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Message": "message",
}

// contactFieldMessages maps struct field -> failed tag -> the user-facing
// message. These strings are rendered verbatim next to the form inputs, so
// they must stay in sync with the frontend copy.
var contactFieldMessages = map[string]map[string]string{
	"Name": {
		"required": "Name is required",
		"min":      "Name must be at least 2 characters",
	},
	"Email": {
		"required":      "Email is required",
		"contact_email": "Please enter a valid email",
	},
	"Message": {
		"required": "Message is required",
		"min":      "Message must be at least 10 characters",
	},
}

// ContactFieldErrors translates a validator error into per-field messages
// keyed by JSON field name. Returns an empty map for a nil error, so the
// result is non-empty iff the record is invalid.
func ContactFieldErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)
	if err == nil {
		return fieldErrors
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Not a field-level failure (e.g. a non-struct was passed in).
		fieldErrors["form"] = "Invalid submission"
		return fieldErrors
	}

	for _, fe := range verrs {
		name, ok := fieldJSONNames[fe.Field()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		if msgs, ok := contactFieldMessages[fe.Field()]; ok {
			if msg, ok := msgs[fe.Tag()]; ok {
				fieldErrors[name] = msg
				continue
			}
		}
		fieldErrors[name] = "Invalid value"
	}

	return fieldErrors
}
