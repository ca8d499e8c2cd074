package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, DebugLevel, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "ERROR")
	assert.Equal(t, ErrorLevel, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, InfoLevel, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "vớ vẩn")
	assert.Equal(t, InfoLevel, LevelFromEnv())
}

func TestDefaultLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewDefaultLogger(ErrorLevel)
	l.Debug("bị lọc")
	l.Info("bị lọc")
	l.Error("được ghi, user %d", 7)

	out := buf.String()
	assert.NotContains(t, out, "[DEBUG]")
	assert.NotContains(t, out, "[INFO]")
	assert.Contains(t, out, "[ERROR] được ghi, user 7")
}

func TestDefaultLoggerInfoLevelKeepsInfo(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewDefaultLogger(InfoLevel)
	l.Debug("bị lọc")
	l.Info("được ghi")

	out := buf.String()
	assert.NotContains(t, out, "[DEBUG]")
	assert.Contains(t, out, "[INFO] được ghi")
}
