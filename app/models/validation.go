package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds a validator that reports errors by JSON field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError maps a field name to the list of messages for that field.
// It is rendered verbatim as the body of a 400 response.
type ValidationError map[string][]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

func (e ValidationError) add(field, message string) {
	e[field] = append(e[field], message)
}

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)

func msgMaxLength(limit string) string {
	return fmt.Sprintf("Ensure this field has no more than %s characters.", limit)
}

// runValidator runs struct tag validation and folds the result into errs.
func runValidator(in interface{}, errs ValidationError) {
	err := validate.Struct(in)
	if err == nil {
		return
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return
	}
	for _, fe := range ves {
		switch fe.Tag() {
		case "max":
			errs.add(fe.Field(), msgMaxLength(fe.Param()))
		default:
			errs.add(fe.Field(), msgRequired)
		}
	}
}

// requireField records the required/blank errors for a string field. A nil
// pointer means the field was absent from the payload; an empty string means
// it was present but blank. Both are rejected for required fields.
func requireField(errs ValidationError, field string, value *string) {
	if value == nil {
		errs.add(field, msgRequired)
	} else if strings.TrimSpace(*value) == "" {
		errs.add(field, msgBlank)
	}
}
