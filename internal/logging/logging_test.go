package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(tt.verbosity, &buf)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	Setup(1, &buf)

	logger := GetLogger("solver")
	logger.Info().Msg("phase reached")

	out := buf.String()
	assert.Contains(t, out, "phase reached")
	assert.Contains(t, out, "component=solver")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	Setup(2, &buf)

	done := LogOperationStart(GetLogger("test"), "build")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "operation=build")
}

func TestSetup_QuietHidesInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup(0, &buf)

	logger := GetLogger("test")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
