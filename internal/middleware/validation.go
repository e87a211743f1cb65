package middleware

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage turns a gin binding error into a single human-readable
// message identifying the offending field and constraint. Only the first
// violated rule is reported, in schema declaration order.
func BindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return formatFieldError(validationErrs[0])
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fieldLabel(typeErr.Field) + " must be " + expectedKind(typeErr.Type)
	}

	// Strict decoding rejects fields outside the schema
	const unknownField = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, unknownField) {
		name := strings.Trim(strings.TrimPrefix(msg, unknownField), `"`)
		return `"` + name + `" is not allowed`
	}

	return "Invalid request body"
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	label := fieldLabel(e.Field())
	switch e.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be valid"
	case "oneof":
		return label + " must be one of " + strings.Join(strings.Fields(e.Param()), ", ")
	case "min":
		// Only used to reject supplied-but-empty strings on updates
		return label + " is required"
	default:
		return label + " is invalid"
	}
}

// fieldLabel maps struct or JSON field names to their client-facing labels
func fieldLabel(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch strings.ToLower(field) {
	case "name":
		return "Name"
	case "email":
		return "Email"
	case "department":
		return "Department"
	case "registrationid":
		return "Registration ID"
	case "teacherid":
		return "Teacher ID"
	case "designation":
		return "Designation"
	case "age":
		return "Age"
	case "username":
		return "Username"
	case "password":
		return "Password"
	}

	return field
}

// expectedKind names the JSON type a mistyped field should have carried
func expectedKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "valid"
	}
}
