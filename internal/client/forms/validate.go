package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// ErrInvalid matches any ValidationErrors with errors.Is.
var ErrInvalid = errors.New("form has invalid fields")

// FieldState is the display state of one field.
type FieldState int

const (
	Untouched FieldState = iota
	Valid
	Invalid
)

func (s FieldState) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "untouched"
	}
}

// ValidationErrors maps a field path to a message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool { return target == ErrInvalid }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"category":        func(fl validator.FieldLevel) bool { return models.IsCategory(fl.Field().String()) },
		"difficulty":      func(fl validator.FieldLevel) bool { return models.IsDifficulty(fl.Field().String()) },
		"unit":            func(fl validator.FieldLevel) bool { return models.IsUnit(fl.Field().String()) },
		"positive_amount": isPositiveAmount,
		"minutes":         intBetween(models.MinCookingTime, models.MaxCookingTime),
		"servings":        intBetween(models.MinServings, models.MaxServings),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func isPositiveAmount(fl validator.FieldLevel) bool {
	s := strings.ReplaceAll(strings.TrimSpace(fl.Field().String()), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f > 0
}

func intBetween(lo, hi int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && n >= lo && n <= hi
	}
}

// check validates s and returns nil when every field is valid.
func check(s any) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{"": err.Error()}
	}

	out := ValidationErrors{}
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if _, seen := out[path]; !seen {
			out[path] = message(fe)
		}
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_with":
		return "is required to change the password"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return "needs at least one entry"
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "eqfield":
		return "does not match"
	case "category":
		return oneOf(models.Categories)
	case "difficulty":
		return oneOf(models.Difficulties)
	case "unit":
		return oneOf(models.Units)
	case "positive_amount":
		return "must be a positive number"
	case "minutes":
		return fmt.Sprintf("must be between %d and %d minutes", models.MinCookingTime, models.MaxCookingTime)
	case "servings":
		return fmt.Sprintf("must be between %d and %d", models.MinServings, models.MaxServings)
	default:
		return "is invalid"
	}
}

func oneOf(values []string) string {
	return "must be one of: " + strings.Join(values, ", ")
}

// touchSet remembers which fields the user has interacted with. Touching a
// field also touches everything nested under it.
type touchSet struct {
	all    bool
	fields map[string]bool
}

func (t *touchSet) touch(field string) {
	if t.fields == nil {
		t.fields = map[string]bool{}
	}
	t.fields[field] = true
}

func (t *touchSet) touchAll() { t.all = true }

func (t *touchSet) touched(field string) bool {
	if t.all || t.fields[field] {
		return true
	}
	for f := range t.fields {
		if strings.HasPrefix(field, f+".") || strings.HasPrefix(field, f+"[") {
			return true
		}
	}
	return false
}

func stateOf(errs ValidationErrors, t *touchSet, field string) FieldState {
	if !t.touched(field) {
		return Untouched
	}
	if _, bad := errs[field]; bad {
		return Invalid
	}
	return Valid
}

// visible keeps only the errors of touched fields.
func visible(errs ValidationErrors, t *touchSet) ValidationErrors {
	out := ValidationErrors{}
	for k, v := range errs {
		if t.touched(k) {
			out[k] = v
		}
	}
	return out
}
