package task

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Task is a unit of work description together with the execution state
// reported by whatever runs it.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title" gorm:"not null"`
	Command     string    `json:"command" gorm:"not null"`
	Image       string    `json:"image" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Status      Status    `json:"status" gorm:"not null;default:pending"`
	Logs        string    `json:"logs" gorm:"type:text;not null;default:''"`
}

func (t Task) IsRunning() bool {
	return t.Status == StatusRunning
}

// Changes holds the mutable fields of a task. Nil fields are left untouched.
type Changes struct {
	Title       *string
	Description *string
}

func (c Changes) Empty() bool {
	return c.Title == nil && c.Description == nil
}
