//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskhub/app"
	"taskhub/app/controller/tasks"
	"taskhub/config"
	"taskhub/domain/task"
	"taskhub/internal/logger"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const createBody = `{"data":{"attributes":{"title":"t1","command":"echo hi","image":"alpine","description":"d"}}}`

func setupTaskTestEnvironment(t *testing.T, maxTasks int) (*echo.Echo, *app.Container) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to setup test DB: %v", err)
	}

	return setupServer(t, db, maxTasks)
}

func setupServer(t *testing.T, db *gorm.DB, maxTasks int) (*echo.Echo, *app.Container) {
	t.Helper()

	container := app.NewContainer(db, logger.Discard(), maxTasks)
	if err := container.Migrate(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	e := app.NewServer(logger.Discard(), logrus.InfoLevel)
	config.AddRoutes(e, container)

	return e, container
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeResource(t *testing.T, rec *httptest.ResponseRecorder) tasks.TaskResource {
	t.Helper()
	var resp struct {
		Data tasks.TaskResource `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp tasks.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func createTask(t *testing.T, e *echo.Echo) tasks.TaskResource {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/tasks/", createBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeResource(t, rec)
}

// setStatus stands in for the executor that moves tasks between states.
func setStatus(t *testing.T, container *app.Container, id uint, status task.Status) {
	t.Helper()
	require.NoError(t, container.DB.Model(&task.Task{}).Where("id = ?", id).Update("status", status).Error)
}
