package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLoggerCapturesLevels(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("sampled %d values", 3)
	l.Warn("slow tick")
	l.Error("provider gone: %v", "nvidia-smi")

	assert.Len(t, l.Messages, 3)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "sampled 3 values", l.Messages[0].Message)
	assert.True(t, l.HasLevel("warn"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("fatal"))
}

func TestBufferLoggerClear(t *testing.T) {
	l := NewBufferLogger()
	l.Debug("one")
	l.Clear()

	assert.Empty(t, l.Messages)
	assert.False(t, l.HasLevel("debug"))
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := Noop()

	// Must not panic, must not write anywhere observable.
	l.Debug("debug %s", "msg")
	l.Warn("warn")
	l.Error("error")
}

func TestNewEnvLoggerImplementsInterface(t *testing.T) {
	var _ Logger = NewEnvLogger("[test]")
}
