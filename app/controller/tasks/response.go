package tasks

import (
	"fmt"
	"net/http"
	"taskhub/domain/task"

	"github.com/labstack/echo/v4"
)

type (
	DataResponse struct {
		Data any `json:"data"`
	}
	ErrorResponse struct {
		Error string `json:"error"`
	}
	LogsResponse struct {
		Logs string `json:"logs"`
	}
	TaskResource struct {
		ID         uint               `json:"id"`
		Type       string             `json:"type"`
		Attributes ResourceAttributes `json:"attributes"`
		Links      ResourceLinks      `json:"links"`
	}
	ResourceAttributes struct {
		Title       string      `json:"title"`
		Command     string      `json:"command"`
		Image       string      `json:"image"`
		Description string      `json:"description"`
		Status      task.Status `json:"status"`
	}
	ResourceLinks struct {
		Self string `json:"self"`
	}
)

// NewTaskResource renders t with a self link under base, the collection URL.
func NewTaskResource(t task.Task, base string) TaskResource {
	return TaskResource{
		ID:   t.ID,
		Type: collectionPath,
		Attributes: ResourceAttributes{
			Title:       t.Title,
			Command:     t.Command,
			Image:       t.Image,
			Description: t.Description,
			Status:      t.Status,
		},
		Links: ResourceLinks{
			Self: fmt.Sprintf("%s/%d", base, t.ID),
		},
	}
}

// collectionURL is the request root joined with the collection path,
// e.g. http://localhost:8080/tasks
func collectionURL(c echo.Context) string {
	return fmt.Sprintf("%s://%s/%s", c.Scheme(), c.Request().Host, collectionPath)
}

// errorJSON answers with the flat 400 every task failure uses.
func errorJSON(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
