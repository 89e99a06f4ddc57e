// Package artifacts names and creates the on-disk locations for a run's
// diagnostic output: failure screenshots, engine traces and video.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run is one suite execution's artifact space
type Run struct {
	ID  string
	Dir string
}

// NewRun creates a fresh artifact directory under baseDir. The directory
// name carries a UTC stamp plus a short random id so concurrent workers
// never collide.
func NewRun(baseDir string) (*Run, error) {
	id := uuid.NewString()[:8]
	dir := filepath.Join(baseDir, fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102-150405"), id))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory: %w", err)
	}
	return &Run{ID: id, Dir: dir}, nil
}

// ScreenshotPath names the failure screenshot for a test
func (r *Run) ScreenshotPath(test string) string {
	return filepath.Join(r.Dir, SanitizeName(test)+".png")
}

// TracePath names the engine trace archive for a test
func (r *Run) TracePath(test string) string {
	return filepath.Join(r.Dir, SanitizeName(test)+".trace.zip")
}

// VideoDir names the directory video recordings are written into
func (r *Run) VideoDir() string {
	return filepath.Join(r.Dir, "video")
}

// SanitizeName turns a Go test name into a safe file name. Subtest
// separators and spaces become underscores; other unusual runes are
// dropped.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '.', r == '_':
			b.WriteRune(r)
		case r == '/', r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}
