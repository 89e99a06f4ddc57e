package testutil

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureHookRecordsEntries(t *testing.T) {
	// GIVEN a quiet logger with a capture hook
	log, hook := NewCaptureLogger()

	// WHEN a component logs at different levels
	log.Info("session started")
	log.WithField("scenario", "navigation").Warn("retrying")

	// THEN the lines are readable without draining
	assert.Equal(t, []string{"session started", "retrying"}, hook.Lines())
	assert.True(t, hook.Contains(logrus.WarnLevel, "retrying"))
	assert.False(t, hook.Contains(logrus.ErrorLevel, "retrying"))

	// AND draining hands the entries over exactly once
	entries := hook.Drain()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, logrus.WarnLevel, entries[1].Level)
	assert.Equal(t, "navigation", entries[1].Data["scenario"])
	assert.Empty(t, hook.Lines())
	assert.Empty(t, hook.Drain())
}

func TestCaptureHookHonoursLevelFilter(t *testing.T) {
	// GIVEN a hook recording warnings only
	log := logrus.New()
	log.SetOutput(io.Discard)
	hook := NewCaptureHook(logrus.WarnLevel)
	log.AddHook(hook)

	// WHEN info and warn lines are logged
	log.Info("ignored")
	log.Warn("captured")

	// THEN only the warning was recorded
	assert.Equal(t, []string{"captured"}, hook.Lines())
}
