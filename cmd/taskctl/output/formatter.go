package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Formatter interface for formatting output
type Formatter interface {
	Format(data any) (string, error)
}

// NewFormatter returns the formatter registered under name: "json" or "yaml".
func NewFormatter(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return NewJSONFormatter(), nil
	case "yaml", "yml":
		return NewYAMLFormatter(), nil
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}

// JSONFormatter implements the Formatter interface for JSON output
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats data as JSON
func (f *JSONFormatter) Format(data any) (string, error) {
	bytes, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// YAMLFormatter renders data as YAML. go-yaml falls back to json tags.
type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) Format(data any) (string, error) {
	bytes, err := yaml.Marshal(data)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(bytes), "\n"), nil
}
