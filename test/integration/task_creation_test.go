//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"taskhub/domain/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreation(t *testing.T) {
	t.Run("should create task and persist it", func(t *testing.T) {
		e, container := setupTaskTestEnvironment(t, 10)

		rec := doRequest(e, http.MethodPost, "/tasks/", createBody)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		res := decodeResource(t, rec)
		assert.NotZero(t, res.ID)
		assert.Equal(t, "t1", res.Attributes.Title)
		assert.Equal(t, "echo hi", res.Attributes.Command)
		assert.Equal(t, "alpine", res.Attributes.Image)
		assert.Equal(t, "d", res.Attributes.Description)
		assert.Equal(t, task.StatusPending, res.Attributes.Status)
		assert.Equal(t, fmt.Sprintf("http://example.com/tasks/%d", res.ID), res.Links.Self)

		dbTask, err := container.TaskRepository.FindByID(context.Background(), res.ID)
		require.NoError(t, err)
		assert.Equal(t, "echo hi", dbTask.Command)
	})

	t.Run("should keep commands verbatim", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t, 10)

		for _, command := range []string{"echo 'hi", "#!/bin/sh\n# don't\nls -la"} {
			attrs, err := json.Marshal(map[string]string{"title": "t", "command": command, "image": "alpine", "description": "d"})
			require.NoError(t, err)

			rec := doRequest(e, http.MethodPost, "/tasks/", fmt.Sprintf(`{"data":{"attributes":%s}}`, attrs))
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, command, decodeResource(t, rec).Attributes.Command)
		}
	})

	t.Run("should accept the collection path without trailing slash", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t, 10)

		rec := doRequest(e, http.MethodPost, "/tasks", createBody)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should issue fresh ids", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t, 10)

		seen := map[uint]bool{}
		for i := 0; i < 5; i++ {
			res := createTask(t, e)
			assert.False(t, seen[res.ID], "id %d issued twice", res.ID)
			seen[res.ID] = true
		}
	})

	t.Run("should stop at the capacity ceiling", func(t *testing.T) {
		e, container := setupTaskTestEnvironment(t, 3)

		for i := 0; i < 3; i++ {
			createTask(t, e)
		}

		rec := doRequest(e, http.MethodPost, "/tasks/", createBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "the maximum number of tasks has been reached", decodeError(t, rec))

		n, err := container.TaskRepository.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("should free capacity after a delete", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t, 1)

		res := createTask(t, e)
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/tasks/%d", res.ID), "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		createTask(t, e)
	})

	t.Run("should reject missing attributes", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t, 10)

		rec := doRequest(e, http.MethodPost, "/tasks/", `{"data":{"attributes":{"title":"t"}}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Make sure 'title', 'command', 'image' and 'description' is in the attributes", decodeError(t, rec))
	})
}
