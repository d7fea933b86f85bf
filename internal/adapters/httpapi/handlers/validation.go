package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

func validateStruct(v any) (map[string]string, bool) {
	err := validate.Struct(v)
	if err == nil {
		return nil, false
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make(map[string]string, len(verrs))
	for _, verr := range verrs {
		field := verr.Field()
		if field == "" {
			continue
		}

		if _, exists := out[field]; exists {
			continue
		}

		out[field] = validationMessage(verr)
	}

	if len(out) == 0 {
		return nil, false
	}

	return out, true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func writeValidationErrors(c *gin.Context, errs map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"errors": errs,
	})
}
