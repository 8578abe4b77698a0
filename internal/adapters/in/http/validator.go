package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var _ echo.Validator = (*RequestValidator)(nil)

// RequestValidator checks the structural shape of request bodies. Business
// rules live in the domain and are reported as violations, not here.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return &RequestValidator{validate: v}
}

// Validate returns an *echo.HTTPError with status 400 whose message maps
// field paths to what is wrong with them.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fieldPath(fe)] = validationMessage(fe)
	}
	return echo.NewHTTPError(http.StatusBadRequest, details)
}

// fieldPath drops the request type name from the namespace:
// "SaveQuoteRequest.items[0].length" becomes "items[0].length".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), "'", "")
	case "datetime":
		return "must be a date formatted as " + fe.Param()
	case "startswith":
		return "must start with " + fe.Param()
	}
	return "is invalid"
}
