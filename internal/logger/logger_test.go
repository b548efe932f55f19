package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToInfo(t *testing.T) {
	l, cleanup, err := New(Options{})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, cleanup, err := New(Options{Level: "garbage"})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNew_ParsesLevel(t *testing.T) {
	l, cleanup, err := New(Options{Level: "debug"})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestNew_WritesJSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "sub", "taskhub.log")

	l, cleanup, err := New(Options{Format: "json", File: logPath})
	require.NoError(t, err)

	l.WithField("task_id", 3).Info("task created")
	cleanup()

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	line := strings.TrimSpace(string(content))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "task created", entry["msg"])
	assert.Equal(t, float64(3), entry["task_id"])
}

func TestNew_AppendsToExistingFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "taskhub.log")
	require.NoError(t, os.WriteFile(logPath, []byte("existing\n"), 0644))

	l, cleanup, err := New(Options{File: logPath})
	require.NoError(t, err)
	l.Info("new message")
	cleanup()

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "existing\n"))
	assert.Contains(t, string(content), "new message")
}
