package task

import "context"

type Repository interface {
	Create(ctx context.Context, task *Task) error
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]Task, error)
	FindByID(ctx context.Context, id uint) (*Task, error)
	Update(ctx context.Context, id uint, changes Changes) error
	Delete(ctx context.Context, id uint) error
}
