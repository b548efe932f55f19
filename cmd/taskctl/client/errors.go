package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the server said the task does not exist. The
// API answers that with 400, so the message is what identifies it.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Message == "task not exists"
}

// newAPIError reads the {"error": "..."} envelope, falling back to the raw body.
func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)

	var env struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		msg = env.Error
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
