package constants

import (
	"errors"
	"strconv"
)

// TaskStatus is the lifecycle stage of a task. The wire tokens are the
// ones the API has always spoken; they never change casing or language.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDENTE"
	StatusInProgress TaskStatus = "EM_ANDAMENTO"
	StatusDone       TaskStatus = "CONCLUIDA"
)

var ErrInvalidStatus = errors.New("invalid value for field 'status'. Allowed values: PENDENTE, EM_ANDAMENTO, CONCLUIDA")

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func ParseStatus(raw string) (TaskStatus, error) {
	s := TaskStatus(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrInvalidStatus
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
