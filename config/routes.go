package config

import (
	"taskhub/app"
	"taskhub/app/controller/health"
	"taskhub/app/controller/tasks"

	"github.com/labstack/echo/v4"
)

func AddRoutes(e *echo.Echo, container *app.Container) {
	health.NewHandler(container.DB).RegisterRoutes(e.Group(""))

	tasksHandler := tasks.NewHandler(container.TaskRepository, container.MaxTaskNumber, container.Log)
	tasksHandler.RegisterRoutes(e.Group("/tasks"))
}
