package tr064

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var hostnameRegexp = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*$`)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("host_or_ip", validateHostOrIP); err != nil {
		panic(err)
	}

	// Report field names by their "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // TOML field name (e.g., "address", "port")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

// Validate checks the parameters and returns all validation errors
func (p *Params) Validate() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(p); err != nil {
		var validatorErrs validator.ValidationErrors
		if errors.As(err, &validatorErrs) {
			for _, e := range validatorErrs {
				validationErrors = append(validationErrors, ValidationError{
					FieldPath: e.Field(),
					Message:   getValidationMessage(e),
				})
			}
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "host_or_ip":
		return "must be a hostname or IP address"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// Custom validator: hostname or IP address
func validateHostOrIP(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if net.ParseIP(value) != nil {
		return true
	}
	return hostnameRegexp.MatchString(value)
}
