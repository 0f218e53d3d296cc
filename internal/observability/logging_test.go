package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("info", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.WithField("bullets", 9).Info("visible")

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "bullets=9")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("loud", &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNewRunEntry(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("warn", &buf)
	require.NoError(t, err)

	entry := NewRunEntry(logger)
	runID, ok := entry.Data["run_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(runID)
	assert.NoError(t, err)

	entry.Warn("tagged")
	assert.Contains(t, buf.String(), "run_id="+runID)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
