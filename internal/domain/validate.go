package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// structValidator is shared by all service inputs. Validator caches struct
// metadata, so a single instance is kept for the process.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return snakeCase(f.Name)
	})

	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return Department(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("tool_status", func(fl validator.FieldLevel) bool {
		return ToolStatus(fl.Field().String()).IsValid()
	})

	return v
}

// ValidateStruct runs the `validate` struct tags of v and converts failures
// into a *ValidationError with one FieldError per failed field.
func ValidateStruct(v any) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", v, err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return NewValidationErrors(fields)
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		if isString {
			return fmt.Sprintf("min %s characters", fe.Param())
		}
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("max %s characters", fe.Param())
		}
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "len":
		if isString {
			return fmt.Sprintf("must be exactly %s characters", fe.Param())
		}
		return fmt.Sprintf("must have length %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be > %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "url", "http_url", "url|len=0":
		return "must be a valid URL"
	case "hexcolor":
		return "must be a hex color like #6366f1"
	case "department":
		return "must be one of: Engineering, Sales, Marketing, HR, Finance, Operations, Design"
	case "tool_status":
		return "must be one of: active, deprecated, trial"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "invalid value"
	}
}

// snakeCase converts a Go field name to its wire name:
// MonthlyCost -> monthly_cost, WebsiteURL -> website_url, CategoryID -> category_id.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prevLower := unicode.IsLower(runes[i-1])
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
