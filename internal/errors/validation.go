package errors

// FieldError describes a single field-level validation violation.
type FieldError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue"`
}

// ValidationException aggregates every violation found in one request body.
type ValidationException struct {
	Errors []FieldError
}

func (e *ValidationException) Error() string {
	return "validation error on request data"
}
