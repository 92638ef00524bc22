package errors

import "net/http"

// NewBusinessRule maps to 422. No current rule raises it; the kind is kept
// so future rules get a stable status code.
func NewBusinessRule(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}
