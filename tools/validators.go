package tools

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names, the way clients sent them
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks the `validate` tags of s and returns one message per failing field.
// A nil result means s is valid.
func ValidateStruct(s any) []string {
	return messages("", validate.Struct(s))
}

// ValidateField checks a single value against tag, naming it field in the messages.
func ValidateField(field string, value any, tag string) []string {
	return messages(field, validate.Var(value, tag))
}

func messages(field string, err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if name == "" {
			name = field
		}
		out = append(out, describe(name, fe))
	}
	return out
}

func describe(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " should not be empty"
	case "email":
		return name + " must be an email"
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", name, fe.Tag())
	}
}
