package errors

import (
	"net/http"
	"time"

	"todolist-api.com/todolist-api/internal/dto"
)

// ErrorResponse is the uniform envelope every failed request is answered
// with. Null-valued fields are omitted from the JSON body.
type ErrorResponse struct {
	Timestamp        dto.LocalDateTime `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Path             string            `json:"path"`
	ValidationErrors []FieldError      `json:"validationErrors,omitempty"`
}

func NewErrorResponse(status int, message, path string) ErrorResponse {
	return ErrorResponse{
		Timestamp: dto.LocalDateTime(time.Now()),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
	}
}
