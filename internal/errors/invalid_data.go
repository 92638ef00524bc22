package errors

import (
	"fmt"
	"net/http"
)

func NewInvalidData(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewInvalidParam(name, value string) *Exception {
	return NewInvalidData(fmt.Sprintf("invalid value '%s' for parameter '%s'", value, name))
}
