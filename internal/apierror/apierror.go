// Package apierror defines the error envelope every endpoint of the licorería
// API answers with. Clients only ever see a detail message (plus per-field
// errors on validation failures); internals such as storage errors never leak.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

// New wraps a client-facing message in the envelope.
func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries the per-field messages of a 422 response.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
