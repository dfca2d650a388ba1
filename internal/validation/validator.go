package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"statement-transformer/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("scheme", closedSet(models.AllSchemes()))
	_ = v.RegisterValidation("presence", closedSet(models.AllPresences()))
	_ = v.RegisterValidation("region", closedSet(models.AllRegions()))
	_ = v.RegisterValidation("realm", closedSet(models.AllRealms()))
	_ = v.RegisterValidation("card_type", closedSet(models.AllCardTypes()))

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// closedSet accepts a string field whose value is one of allowed. Matching is
// exact: the wire values are the canonical tag names.
func closedSet[T ~string](allowed []T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, candidate := range allowed {
			if value == string(candidate) {
				return true
			}
		}
		return false
	}
}

// AllowedValues lists the accepted values of a custom tag, for error messages.
func AllowedValues(tag string) []string {
	switch tag {
	case "scheme":
		return toStrings(models.AllSchemes())
	case "presence":
		return toStrings(models.AllPresences())
	case "region":
		return toStrings(models.AllRegions())
	case "realm":
		return toStrings(models.AllRealms())
	case "card_type":
		return toStrings(models.AllCardTypes())
	default:
		return nil
	}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// FormatFieldError renders one validation failure as "field: message". The field
// is the namespaced JSON path without the root struct name.
func FormatFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	var message string
	switch fe.Tag() {
	case "required":
		message = "is required"
	case "max":
		message = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		message = fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		message = fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "scheme", "presence", "region", "realm", "card_type":
		message = fmt.Sprintf("must be one of %s", strings.Join(AllowedValues(fe.Tag()), ", "))
	default:
		message = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}

	return fmt.Sprintf("%s: %s", field, message)
}

// IsTagError reports whether the failure is a category tag outside its closed set.
func IsTagError(fe validator.FieldError) bool {
	return AllowedValues(fe.Tag()) != nil
}
