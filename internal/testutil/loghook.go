package testutil

import (
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// CaptureHook implements the logrus.Hook interface and records every
// entry it sees, so tests can assert on what a component logged.
type CaptureHook struct {
	HookedLevels []logrus.Level
	mutex        sync.Mutex
	entries      []logrus.Entry
}

var _ logrus.Hook = &CaptureHook{}

// NewCaptureHook returns a hook recording the given levels, or all
// levels when none are specified.
func NewCaptureHook(levels ...logrus.Level) *CaptureHook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &CaptureHook{HookedLevels: levels}
}

// NewCaptureLogger returns a quiet logger with a capture hook attached
func NewCaptureLogger() (*logrus.Logger, *CaptureHook) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)
	hook := NewCaptureHook()
	log.AddHook(hook)
	return log, hook
}

// Levels returns the hooked levels
func (h *CaptureHook) Levels() []logrus.Level {
	return h.HookedLevels
}

// Fire stores the entry
func (h *CaptureHook) Fire(e *logrus.Entry) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.entries = append(h.entries, *e)
	return nil
}

// Drain returns the stored entries and clears the buffer
func (h *CaptureHook) Drain() []logrus.Entry {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	res := h.entries
	h.entries = nil
	return res
}

// Lines returns the messages of the stored entries without draining them
func (h *CaptureHook) Lines() []string {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	lines := make([]string, len(h.entries))
	for i, entry := range h.entries {
		lines[i] = entry.Message
	}
	return lines
}

// Contains reports whether an entry at the given level carries the
// given substring.
func (h *CaptureHook) Contains(level logrus.Level, contents string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, entry := range h.entries {
		if entry.Level == level && strings.Contains(entry.Message, contents) {
			return true
		}
	}
	return false
}
