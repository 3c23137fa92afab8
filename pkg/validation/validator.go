// Package validation wraps a shared go-playground validator with the
// soiltype and season tags and exposes it to echo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"smartcrop/pkg/agronomy"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = validate.RegisterValidation("soiltype", func(fl validator.FieldLevel) bool {
			_, ok := agronomy.ParseSoilType(fl.Field().String())
			return ok
		})
		_ = validate.RegisterValidation("season", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if strings.TrimSpace(s) == "" {
				return true
			}
			_, ok := agronomy.ParseSeason(s)
			return ok
		})
	})
	return validate
}

// FieldError is one failed constraint, rendered for API clients.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Errors is returned by Struct when validation fails.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Message
	}
	return strings.Join(parts, "; ")
}

// Struct validates s and returns Errors on constraint failures.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := make(Errors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "soiltype":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), joinSoils())
	case "season":
		return fmt.Sprintf("%s must be Monsoon, Winter or Summer", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func joinSoils() string {
	s := make([]string, len(agronomy.SoilTypes))
	for i, st := range agronomy.SoilTypes {
		s[i] = string(st)
	}
	return strings.Join(s, ", ")
}

// Echo adapts the shared validator to echo.Validator.
type Echo struct{}

func (Echo) Validate(i any) error { return Struct(i) }
