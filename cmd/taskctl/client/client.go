package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"taskhub/internal/httpclient"
)

// Client interface for interacting with the taskhub API
type Client interface {
	ListTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*Task, error)
	GetTask(ctx context.Context, id uint) (*Task, error)
	UpdateTask(ctx context.Context, id uint, req *UpdateTaskRequest) (*Task, error)
	DeleteTask(ctx context.Context, id uint) error
	GetTaskLogs(ctx context.Context, id uint) (string, error)
}

// HTTPClient implements the Client interface
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a new HTTP client
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpclient.NewClient(30 * time.Second),
	}
}

// TaskAttributes are the creation fields of a task
type TaskAttributes struct {
	Title       string `json:"title"`
	Command     string `json:"command"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Data struct {
		Attributes TaskAttributes `json:"attributes"`
	} `json:"data"`
}

// NewCreateTaskRequest wraps attrs in the data.attributes envelope
func NewCreateTaskRequest(attrs TaskAttributes) *CreateTaskRequest {
	req := &CreateTaskRequest{}
	req.Data.Attributes = attrs
	return req
}

// UpdateTaskRequest represents a partial update. Empty fields are left
// unchanged by the server.
type UpdateTaskRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Task represents a task resource from the API
type Task struct {
	ID         uint   `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		Title       string `json:"title"`
		Command     string `json:"command"`
		Image       string `json:"image"`
		Description string `json:"description"`
		Status      string `json:"status"`
	} `json:"attributes"`
	Links struct {
		Self string `json:"self"`
	} `json:"links"`
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// ListTasks lists all tasks
func (c *HTTPClient) ListTasks(ctx context.Context) ([]Task, error) {
	var env dataEnvelope[[]Task]
	if err := c.do(ctx, http.MethodGet, "/tasks/", nil, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateTask creates a new task via the API
func (c *HTTPClient) CreateTask(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	var env dataEnvelope[Task]
	if err := c.do(ctx, http.MethodPost, "/tasks/", req, http.StatusCreated, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetTask gets task details by ID
func (c *HTTPClient) GetTask(ctx context.Context, id uint) (*Task, error) {
	var env dataEnvelope[Task]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateTask changes the title and/or description of a task
func (c *HTTPClient) UpdateTask(ctx context.Context, id uint, req *UpdateTaskRequest) (*Task, error) {
	var env dataEnvelope[Task]
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d", id), req, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// DeleteTask deletes a task that is not running
func (c *HTTPClient) DeleteTask(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, http.StatusNoContent, nil)
}

// GetTaskLogs returns the logs recorded for a task
func (c *HTTPClient) GetTaskLogs(ctx context.Context, id uint) (string, error) {
	var resp struct {
		Logs string `json:"logs"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d/logs", id), nil, http.StatusOK, &resp); err != nil {
		return "", err
	}
	return resp.Logs, nil
}

// do sends body as JSON and decodes the response into out when the status
// matches want. Any other status is returned as an *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
