package gorm

import (
	"context"
	"errors"
	"taskhub/domain/task"

	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	t.ID = 0
	if t.Status == "" {
		t.Status = task.StatusPending
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&task.Task{}).Count(&n).Error
	return n, err
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	err := r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*task.Task, error) {
	var t task.Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, task.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies the non-nil fields of changes to the task with the given id.
func (r *TaskRepository) Update(ctx context.Context, id uint, changes task.Changes) error {
	values := map[string]any{}
	if changes.Title != nil {
		values["title"] = *changes.Title
	}
	if changes.Description != nil {
		values["description"] = *changes.Description
	}
	if len(values) == 0 {
		return task.ErrValidation
	}

	res := r.db.WithContext(ctx).Model(&task.Task{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&task.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return task.ErrNotFound
	}
	return nil
}
