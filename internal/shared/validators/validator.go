package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// granularities mirrors models.Granularity values; duplicated to keep shared free of domain imports.
var granularities = map[string]struct{}{
	"day":   {},
	"week":  {},
	"month": {},
	"year":  {},
}

// New creates a new validator instance with the dashboard's custom tags registered:
//   - granularity: one of day, week, month, year
//   - timezone: a location name accepted by time.LoadLocation ("Local" included)
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation("granularity", func(fl validator.FieldLevel) bool {
		_, ok := granularities[fl.Field().String()]
		return ok
	})
	_ = v.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})
	return v
}
