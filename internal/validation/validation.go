// Package validation checks request inputs before any entity is built and
// reports failures by dotted JSON path.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/go-playground/validator/v10"
)

// Normalizer is implemented by inputs that trim or default their fields
// before validation.
type Normalizer interface {
	Normalize()
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})

	return &Validator{validate: v}
}

// Check normalizes in (when it knows how) and validates it. A failure is
// returned as *domain.ValidationError.
func (v *Validator) Check(in any) error {
	if n, ok := in.(Normalizer); ok {
		n.Normalize()
	}

	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating input: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if _, seen := fields[path]; !seen {
			fields[path] = message(path, fe)
		}
	}
	return domain.NewValidationError(fields)
}

// fieldPath turns "QuoteInput.customer.email" into "customer.email". Segments
// starting with an upper-case letter are Go type or embedded struct names.
func fieldPath(ns string) string {
	segs := strings.Split(ns, ".")
	out := segs[:0]
	for _, s := range segs {
		if s == "" {
			continue
		}
		if r := []rune(s)[0]; unicode.IsUpper(r) {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, ".")
}

var labels = map[string]string{
	"orgId":        "Organization",
	"departmentId": "Department",
	"roofType":     "Roof type",
	"reportId":     "Report",
	"quoteId":      "Quote",
}

// label turns the last path segment into a human label, "unitPrice" becomes
// "Unit price".
func label(path string) string {
	name := path
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	if l, ok := labels[name]; ok {
		return l
	}

	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func message(path string, fe validator.FieldError) string {
	l := label(path)
	switch fe.Tag() {
	case "required":
		return l + " is required"
	case "email":
		return "Invalid email"
	case "url":
		return "Invalid URL"
	case "isodate":
		return "Invalid date"
	case "singleline":
		return l + " must be a single line"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", l, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.Slice {
			if path == "lineItems" {
				return "At least one line item is required"
			}
			return fmt.Sprintf("%s must contain at least %s entries", l, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", l, fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return l + " must be non-negative"
		}
		return fmt.Sprintf("%s must be at least %s", l, fe.Param())
	default:
		return l + " is invalid"
	}
}
