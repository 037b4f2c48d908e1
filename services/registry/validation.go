package registry

import (
	"errors"
	"reflect"
	"strings"

	"servicehub/utils"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors converts validator errors into client-facing field errors.
func fieldErrors(err error) []utils.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make([]utils.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msg := "is invalid"
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "gt":
			msg = "must be greater than " + fe.Param()
		}
		out = append(out, utils.FieldError{Field: fe.Field(), Error: msg})
	}
	return out
}
