// Package validation implements per-entity validators. Each validator runs
// field-constraint checks first, collecting every violation into a field to
// message mapping, and only then performs the entity's uniqueness lookup
// against the repository it is handed (which may be transaction-bound).
package validation

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	nameRE  = regexp.MustCompile(`^[A-Za-z-']+$`)
	phoneRE = regexp.MustCompile(`^0[0-9]{10}$`)
)

// fieldValidator wraps a configured go-playground validator shared by the
// entity validators.
type fieldValidator struct {
	validate *validator.Validate
}

func newFieldValidator() fieldValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the JSON field names the API speaks.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Panics from RegisterValidation only occur for empty tag names.
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return nameRE.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phonenumber", func(fl validator.FieldLevel) bool {
		return phoneRE.MatchString(fl.Field().String())
	})

	return fieldValidator{validate: v}
}

// check runs the struct validation and converts any violations into a
// ViolationError carrying all of them. A nil return means the record passed.
func (fv fieldValidator) check(record any) error {
	err := fv.validate.Struct(record)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: the record itself was not a struct.
		return errors.Wrap(err, "field validation failed")
	}

	reasons := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		reasons[fe.Field()] = reasonFor(fe)
	}

	return domainerrors.NewFieldViolations(reasons)
}

// reasonFor renders a single violation as a user-facing message.
func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "email":
		return "The email address must be in the format of name@domain.com"
	case "personname":
		return "Please use a name without numbers or specials"
	case "phonenumber":
		return "Please use a valid phoneNumber"
	case "len":
		return "Postcode size must be " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "size must be at most " + fe.Param() + " characters"
		}

		return "must be between 0 and 5"
	case "min":
		return "must be between 0 and 5"
	default:
		return "is invalid"
	}
}
