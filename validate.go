package jobhunter

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct checks v against its `validate` tags and converts the first
// failure into an EINVALID error naming the JSON field.
func validateStruct(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Errorf(EINVALID, "invalid %s", entity)
	}

	fe := verrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return Errorf(EINVALID, "%s %s required", entity, field)
	case "oneof":
		return Errorf(EINVALID, "%s %s must be one of: %s", entity, field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return Errorf(EINVALID, "%s %s must be at least %s", entity, field, fe.Param())
	default:
		return Errorf(EINVALID, "%s %s is invalid", entity, field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
