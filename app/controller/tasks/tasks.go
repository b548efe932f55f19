// Package tasks handles the task resource: create, list, fetch, update,
// delete and read logs
package tasks

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"taskhub/domain/task"

	"github.com/labstack/echo/v4"
	"github.com/mattn/go-shellwords"
	"github.com/sirupsen/logrus"
)

const collectionPath = "tasks"

const (
	msgDataRequired       = "data is required"
	msgAttributesRequired = "data.attributes is required"
	msgAttributesInvalid  = "Make sure 'title', 'command', 'image' and 'description' is in the attributes"
	msgInvalidValue       = "invalid value"
	msgInvalidBody        = "invalid request body"
)

type (
	Handler struct {
		repo     task.Repository
		maxTasks int
		log      logrus.FieldLogger
	}
	CreateRequest struct {
		Data *CreateData `json:"data"`
	}
	CreateData struct {
		Attributes json.RawMessage `json:"attributes"`
	}
	// TaskAttributes are the creation fields. Pointers tell an absent key
	// apart from an empty string.
	TaskAttributes struct {
		Title       *string `json:"title" validate:"required"`
		Command     *string `json:"command" validate:"required"`
		Image       *string `json:"image" validate:"required"`
		Description *string `json:"description" validate:"required"`
	}
	UpdateRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
)

func NewHandler(repo task.Repository, maxTasks int, log logrus.FieldLogger) *Handler {
	return &Handler{repo: repo, maxTasks: maxTasks, log: log}
}

func (h Handler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	tasks, err := h.repo.FindAll(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to list tasks")
	}

	base := collectionURL(c)
	resources := make([]TaskResource, 0, len(tasks))
	for _, t := range tasks {
		resources = append(resources, NewTaskResource(t, base))
	}

	return c.JSON(http.StatusOK, DataResponse{Data: resources})
}

func (h Handler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.repo.Count(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to count tasks")
		return errorJSON(c, msgAttributesInvalid)
	}
	if count >= int64(h.maxTasks) {
		return errorJSON(c, task.ErrCapacity.Error())
	}

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, msgInvalidBody)
	}
	if req.Data == nil {
		return errorJSON(c, msgDataRequired)
	}
	if isEmptyJSON(req.Data.Attributes) {
		return errorJSON(c, msgAttributesRequired)
	}

	var attrs TaskAttributes
	if err := json.Unmarshal(req.Data.Attributes, &attrs); err != nil {
		return errorJSON(c, msgAttributesInvalid)
	}
	if err := c.Validate(&attrs); err != nil {
		return errorJSON(c, msgAttributesInvalid)
	}

	newTask := &task.Task{
		Title:       *attrs.Title,
		Command:     *attrs.Command,
		Image:       *attrs.Image,
		Description: *attrs.Description,
	}
	if err := h.repo.Create(ctx, newTask); err != nil {
		h.log.WithError(err).Error("failed to create task")
		return errorJSON(c, msgAttributesInvalid)
	}

	h.log.WithFields(createdFields(newTask)).Info("task created")

	return c.JSON(http.StatusCreated, DataResponse{Data: NewTaskResource(*newTask, collectionURL(c))})
}

func (h Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	t, err := h.find(c, id)
	if err != nil {
		return errorJSON(c, task.ErrNotFound.Error())
	}

	return c.JSON(http.StatusOK, DataResponse{Data: NewTaskResource(*t, collectionURL(c))})
}

func (h Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	t, err := h.find(c, id)
	if err != nil {
		return errorJSON(c, task.ErrNotFound.Error())
	}
	if t.IsRunning() {
		return errorJSON(c, task.ErrConflict.Error())
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, task.ErrNotFound) {
			h.log.WithError(err).WithField("task_id", id).Error("failed to delete task")
		}
		return errorJSON(c, task.ErrNotFound.Error())
	}

	h.log.WithField("task_id", id).Info("task deleted")

	return c.NoContent(http.StatusNoContent)
}

func (h Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, msgInvalidValue)
	}

	// Empty strings count as absent, so a field can't be cleared.
	var changes task.Changes
	if req.Title != "" {
		changes.Title = &req.Title
	}
	if req.Description != "" {
		changes.Description = &req.Description
	}
	if changes.Empty() {
		return errorJSON(c, msgInvalidValue)
	}

	if err := h.repo.Update(ctx, id, changes); err != nil {
		if !errors.Is(err, task.ErrNotFound) {
			h.log.WithError(err).WithField("task_id", id).Error("failed to update task")
		}
		return errorJSON(c, task.ErrNotFound.Error())
	}

	t, err := h.find(c, id)
	if err != nil {
		return errorJSON(c, task.ErrNotFound.Error())
	}

	return c.JSON(http.StatusOK, DataResponse{Data: NewTaskResource(*t, collectionURL(c))})
}

func (h Handler) Logs(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	t, err := h.find(c, id)
	if err != nil {
		return errorJSON(c, task.ErrNotFound.Error())
	}

	return c.JSON(http.StatusOK, LogsResponse{Logs: t.Logs})
}

// find looks the task up and logs store failures other than a missing row.
func (h Handler) find(c echo.Context, id uint) (*task.Task, error) {
	t, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil && !errors.Is(err, task.ErrNotFound) {
		h.log.WithError(err).WithField("task_id", id).Error("failed to fetch task")
	}
	if err == nil && t == nil {
		err = task.ErrNotFound
	}
	return t, err
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Index)
	g.GET("/", h.Index)
	g.POST("", h.Create)
	g.POST("/", h.Create)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
	g.PATCH("/:id", h.Update)
	g.GET("/:id/logs", h.Logs)
}

// parseID rejects anything but a non-negative integer as if the route had
// not matched.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return uint(id), nil
}

// isEmptyJSON reports whether raw is absent or a JSON value that would be
// falsy: null, false, 0, "", [] or {}.
func isEmptyJSON(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return false
	}
	switch buf.String() {
	case "null", "false", "0", `""`, "[]", "{}":
		return true
	}
	return false
}

// createdFields names the program a task runs when its command splits into
// shell words. Commands that don't split are stored as given.
func createdFields(t *task.Task) logrus.Fields {
	fields := logrus.Fields{"task_id": t.ID}
	if args, err := shellwords.Parse(t.Command); err == nil && len(args) > 0 {
		fields["program"] = args[0]
	}
	return fields
}
