package task

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrCapacity   = errors.New("the maximum number of tasks has been reached")
	ErrNotFound   = errors.New("task not exists")
	ErrConflict   = errors.New("running task can't be deleted")
)
