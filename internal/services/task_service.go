package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"todolist-api.com/todolist-api/internal/constants"
	"todolist-api.com/todolist-api/internal/dto"
	apperrors "todolist-api.com/todolist-api/internal/errors"
	model "todolist-api.com/todolist-api/internal/models"
	repository "todolist-api.com/todolist-api/internal/repositories"
)

// TaskService holds the business rules for the task lifecycle. Field
// constraints are enforced upstream by the validation layer; the service
// only applies defaults, lookups and mutations.
type TaskService struct {
	repo *repository.TaskRepository
	log  *zap.Logger
}

func NewTaskService(repo *repository.TaskRepository, log *zap.Logger) *TaskService {
	return &TaskService{
		repo: repo,
		log:  log,
	}
}

func (s *TaskService) Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error) {
	s.log.Info("creating task", zap.String("title", req.Title))

	status := constants.StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return dto.TaskResponse{}, err
	}

	s.log.Info("task created", zap.Int64("id", task.ID))
	return dto.TaskResponseFrom(task), nil
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (dto.TaskResponse, error) {
	task, err := s.findTask(ctx, id)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	return dto.TaskResponseFrom(task), nil
}

func (s *TaskService) ListAll(ctx context.Context) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.TaskResponsesFrom(tasks), nil
}

func (s *TaskService) ListByStatus(ctx context.Context, status constants.TaskStatus) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return dto.TaskResponsesFrom(tasks), nil
}

func (s *TaskService) Update(ctx context.Context, id int64, req dto.UpdateTaskRequest) (dto.TaskResponse, error) {
	s.log.Info("updating task", zap.Int64("id", id))

	task, err := s.findTask(ctx, id)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	// Title and description are always replaced; status only when supplied.
	task.Title = req.Title
	task.Description = req.Description
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := s.repo.Save(ctx, task); err != nil {
		return dto.TaskResponse{}, err
	}

	return dto.TaskResponseFrom(task), nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	s.log.Info("deleting task", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("task not found", zap.Int64("id", id))
			return apperrors.NewTaskNotFound(id)
		}
		return err
	}
	return nil
}

func (s *TaskService) findTask(ctx context.Context, id int64) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("task not found", zap.Int64("id", id))
			return nil, apperrors.NewTaskNotFound(id)
		}
		return nil, err
	}
	return task, nil
}
