package validator

import (
	"errors"
	"regexp"
	"sync"

	govalidator "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *govalidator.Validate

	phoneRe = regexp.MustCompile(`^\+?\d{10,15}$`)
)

// instance lazily builds the shared validator with custom tags registered.
func instance() *govalidator.Validate {
	once.Do(func() {
		validate = govalidator.New()
		_ = validate.RegisterValidation("phone", func(fl govalidator.FieldLevel) bool {
			return phoneRe.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Check validates dst and returns a map of field name → failed tag.
// Returns nil when dst is valid.
func Check(dst any) map[string]string {
	err := instance().Struct(dst)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
		return fields
	}

	// Not a validation error (e.g., nil pointer passed in).
	fields["detail"] = err.Error()
	return fields
}

// FieldErrors carries per-field validation failures as an error value so
// callers can surface them field by field.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return "validation failed"
}

// ValidPhone reports whether s looks like a usable phone number.
// Shared with handlers that match raw message text before any form exists.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}
