package app

import (
	"taskhub/domain/task"
	gormRepo "taskhub/internal/repository/gorm"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Container struct {
	DB             *gorm.DB
	Log            logrus.FieldLogger
	TaskRepository task.Repository
	MaxTaskNumber  int
}

func NewContainer(db *gorm.DB, log logrus.FieldLogger, maxTaskNumber int) *Container {
	return &Container{
		DB:             db,
		Log:            log,
		TaskRepository: gormRepo.NewTaskRepository(db),
		MaxTaskNumber:  maxTaskNumber,
	}
}

func (c *Container) Migrate() error {
	return c.DB.AutoMigrate(&task.Task{})
}
