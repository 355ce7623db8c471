package http

import (
	"reflect"
	"strings"

	contractDomain "nextgear-contracts/internal/domain/contract"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report json names so details line up with the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("contract_type", func(fl validator.FieldLevel) bool {
		return contractDomain.Type(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("contract_status", func(fl validator.FieldLevel) bool {
		return contractDomain.Status(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "contract_type":
			out = append(out, FieldError{Field: field, Message: "must be one of EXPRESS, SALES"})
		case "contract_status":
			out = append(out, FieldError{Field: field, Message: "must be one of APPROVED, DENIED"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

// summarize flattens field errors into one client-facing message.
func summarize(list []FieldError) string {
	parts := make([]string, 0, len(list))
	for _, fe := range list {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}
