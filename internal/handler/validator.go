package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// definitionID matches the ids used in definition files.
var definitionID = regexp.MustCompile(`^[a-z0-9_]+$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()
	_ = v.RegisterValidation("defid", validateDefinitionID)
	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(InitValidator)
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name, without leaking struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "defid":
			errs[field] = "Must be a lower-case definition id"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateDefinitionID accepts empty values; pair with required when needed.
func validateDefinitionID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return id == "" || definitionID.MatchString(id)
}
