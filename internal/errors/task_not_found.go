package errors

import (
	"fmt"
	"net/http"
)

func NewTaskNotFound(id int64) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("task not found with id: %d", id),
		StatusCode: http.StatusNotFound,
	}
}
