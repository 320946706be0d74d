// Package validator adapts go-playground/validator to echo and to the
// per-field ValidationError rendered by the forms.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

// TagRuPhone validates +7XXXXXXXXXX phone numbers.
const TagRuPhone = "ruphone"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their form tag.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(TagRuPhone, func(fl validator.FieldLevel) bool {
		return entity.IsValidPhone(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate returns a *domainerrors.ValidationError listing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate input")
	}

	verr := &domainerrors.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), messageFor(fe))
	}

	return verr
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domainerrors.MsgRequired
	case "email":
		return domainerrors.MsgInvalidEmail
	case TagRuPhone:
		return domainerrors.MsgInvalidPhone
	case "eqfield":
		return domainerrors.MsgPasswordsMismatch
	case "min", "max", "gte", "lte", "gt":
		return "Значение вне допустимого диапазона"
	case "oneof":
		return "Недопустимое значение"
	default:
		return "Некорректное значение"
	}
}
