package model

import (
	"time"

	"todolist-api.com/todolist-api/internal/constants"
)

type Task struct {
	ID          int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string               `gorm:"size:100;not null" json:"title"`
	Description string               `gorm:"size:500" json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Task) TableName() string {
	return "tarefas"
}
