package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/go-playground/validator/v10"
)

// ModelValidator checks request models against their `validate` struct tags.
type ModelValidator struct {
	validate *validator.Validate
}

// NewModelValidator returns a [Validator] for the request and contact models.
func NewModelValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}

	return &ModelValidator{validate: v}
}

// Validate implements [Validator]. When fields are given, only those
// struct fields (Go names) are checked.
func (v *ModelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value, err := supportedValue(obj)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		return translate(v.validate.StructCtx(ctx, value))
	}

	structType := reflect.TypeOf(value)
	for _, field := range fields {
		if _, ok := structType.FieldByName(field); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, structType.Name(), field)
		}
	}

	return translate(v.validate.StructPartialCtx(ctx, value, fields...))
}

// supportedValue dereferences pointers to known models and rejects the rest.
func supportedValue(obj any) (any, error) {
	switch value := obj.(type) {
	case models.RegisterRequest, models.LoginRequest, models.EmailRequest,
		models.ResetPasswordConfirmRequest, models.ContactPhoneUpdate, models.ContactEmailUpdate,
		models.Contact, models.ContactUpdate:
		return value, nil

	case *models.RegisterRequest:
		return *value, nil
	case *models.LoginRequest:
		return *value, nil
	case *models.EmailRequest:
		return *value, nil
	case *models.ResetPasswordConfirmRequest:
		return *value, nil
	case *models.ContactPhoneUpdate:
		return *value, nil
	case *models.ContactEmailUpdate:
		return *value, nil
	case *models.Contact:
		return *value, nil
	case *models.ContactUpdate:
		return *value, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}

// jsonFieldName reports fields by their JSON name; untagged fields keep
// their lower-cased Go name.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name)
	default:
		return name
	}
}

// maxBytes bounds the encoded length of a string. bcrypt refuses input
// longer than 72 bytes, which "max" cannot express for multi-byte runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}
