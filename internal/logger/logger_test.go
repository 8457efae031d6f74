package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Info("joined %s", "C1")
	l.Warn("slow %d", 3)
	l.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "INFO joined C1")
	assert.Contains(t, out, "WARN slow 3")
	assert.Contains(t, out, "ERROR boom")
}

func TestLogger_RollbarNeedsToken(t *testing.T) {
	l := Discard()
	l.EnableRollbar("", "test", "dev")
	assert.False(t, l.rollbar)
	l.Close()
}
