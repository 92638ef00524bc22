package dto

import (
	"strconv"
	"time"

	"todolist-api.com/todolist-api/internal/constants"
	model "todolist-api.com/todolist-api/internal/models"
)

// LocalDateTimeLayout is the wire format for every timestamp the API emits.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime serializes a time.Time without zone or sub-second parts.
type LocalDateTime time.Time

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format(LocalDateTimeLayout))), nil
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	parsed, err := time.ParseInLocation(LocalDateTimeLayout, raw, time.Local)
	if err != nil {
		return err
	}

	*t = LocalDateTime(parsed)
	return nil
}

func (t LocalDateTime) Time() time.Time {
	return time.Time(t)
}

type CreateTaskRequest struct {
	Title       string                `json:"title" validate:"notblank,min=3,max=100"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Status      *constants.TaskStatus `json:"status"`
}

type UpdateTaskRequest struct {
	Title       string                `json:"title" validate:"notblank,min=3,max=100"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Status      *constants.TaskStatus `json:"status"`
}

type TaskResponse struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	CreatedAt   LocalDateTime        `json:"createdAt"`
	UpdatedAt   LocalDateTime        `json:"updatedAt"`
	Status      constants.TaskStatus `json:"status"`
}

func TaskResponseFrom(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   LocalDateTime(task.CreatedAt),
		UpdatedAt:   LocalDateTime(task.UpdatedAt),
		Status:      task.Status,
	}
}

func TaskResponsesFrom(tasks []model.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, TaskResponseFrom(&tasks[i]))
	}
	return responses
}
