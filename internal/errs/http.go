package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "salary", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the custom error type for API responses. It is serialized
// directly to JSON by the global error handler.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is makes errors.Is match any *HTTPError regardless of its fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
