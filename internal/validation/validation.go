// Package validation holds the request validator shared by the HTTP and
// menu front-ends. Rules are declared with `validate` struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// MinPublicationYear is the earliest accepted publication year.
const MinPublicationYear = 1000

// catalogIDPattern keeps item ids usable as a single URL path segment.
var catalogIDPattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N}._-]*$`)

var (
	once     sync.Once
	validate *validator.Validate

	// now is swapped in tests.
	now = time.Now
)

// Validator returns the process-wide validator instance.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("pubyear", publicationYear)
		_ = v.RegisterValidation("catalogid", catalogID)
		validate = v
	})
	return validate
}

// Struct validates s and converts the first failure into an
// apperrors validation error naming the JSON field.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), reason(fe))
	}
	return apperrors.NewValidationError("request", err.Error())
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, value any, tag string) error {
	err := Validator().Var(value, tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.NewValidationError(field, reason(fieldErrs[0]))
	}
	return apperrors.NewValidationError(field, err.Error())
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}

func catalogID(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return catalogIDPattern.MatchString(fl.Field().String())
}

func publicationYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= MinPublicationYear && year <= int64(now().Year())
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "catalogid":
		return "must start with a letter or digit and contain only letters, digits, '.', '_' or '-'"
	case "pubyear":
		return fmt.Sprintf("must be between %d and %d", MinPublicationYear, now().Year())
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
