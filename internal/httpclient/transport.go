// Package httpclient provides an HTTP client that identifies taskctl and tags
// every request with a correlation id.
package httpclient

import (
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"

	"taskhub/version"
)

const HeaderRequestID = "X-Request-ID"

// ClientTransport wraps an http.RoundTripper and injects client identification
// headers.
type ClientTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *ClientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid mutating the original
	clone := req.Clone(req.Context())

	clone.Header.Set("User-Agent", "taskctl/"+version.Version+" ("+runtime.GOOS+"/"+runtime.GOARCH+")")
	if clone.Header.Get(HeaderRequestID) == "" {
		clone.Header.Set(HeaderRequestID, uuid.New().String())
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// NewClient returns an *http.Client configured with ClientTransport and the specified timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &ClientTransport{},
		Timeout:   timeout,
	}
}
