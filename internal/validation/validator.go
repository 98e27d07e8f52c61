package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"estoque/internal/models"
)

// ValidationError reports which fields of an input failed and why. The
// messages are already rendered in the validator's locale, so the
// presentation layer can show them as-is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewFieldError builds a ValidationError for a single field, for constraints
// checked outside the struct validator (e.g. a stock-adjustment delta).
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Field messages per locale, mirroring the two product forms. Anything not
// listed falls back to a generic tag message.
var fieldMessages = map[string]map[string]string{
	"en": {
		"name":      "Product name must be at least 2 characters.",
		"sku":       "SKU must be at least 3 characters.",
		"category":  "Please select a category.",
		"quantity":  "Quantity must be a positive number.",
		"price":     "Price must be greater than 0.",
		"threshold": "Threshold must be a positive number.",
	},
	"pt": {
		"name":      "O nome do produto deve ter pelo menos 2 caracteres.",
		"sku":       "O SKU deve ter pelo menos 3 caracteres.",
		"category":  "Selecione uma categoria.",
		"quantity":  "A quantidade deve ser um número positivo.",
		"price":     "O preço deve ser maior que 0.",
		"threshold": "O limite mínimo deve ser um número positivo.",
	},
}

// FormValidator checks product input against the field constraints before it
// reaches the inventory store.
type FormValidator struct {
	validate *validator.Validate
	locale   string
}

// NewFormValidator creates a FormValidator rendering messages in the given
// locale ("en" or "pt"). Unknown locales behave like "en".
func NewFormValidator(locale string) *FormValidator {
	v := validator.New()
	// Report fields under their json names so messages line up with the
	// form field the user filled in.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if _, ok := fieldMessages[locale]; !ok {
		locale = "en"
	}
	return &FormValidator{
		validate: v,
		locale:   locale,
	}
}

// Locale returns the locale the validator renders messages in.
func (v *FormValidator) Locale() string {
	return v.locale
}

// ValidateProduct checks the input record. On failure it returns a
// *ValidationError carrying one message per offending field.
func (v *FormValidator) ValidateProduct(input *models.ProductInput) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = v.message(e)
	}
	return &ValidationError{Fields: fields}
}

func (v *FormValidator) message(e validator.FieldError) string {
	if msg, ok := fieldMessages[v.locale][e.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
}
