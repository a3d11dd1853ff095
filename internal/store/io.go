package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
)

const docMode = 0o600

// FileBackend stores each document as a file under dir.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a FileBackend rooted at dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Read returns the document body; a missing file is not an error.
func (b *FileBackend) Read(key string) ([]byte, bool, error) {
	body, err := os.ReadFile(filepath.Join(b.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

// Write replaces the document via a temp file and rename.
func (b *FileBackend) Write(key string, body []byte) error {
	path := filepath.Join(b.dir, key)
	if err := atomic.WriteFile(path, bytes.NewReader(body)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	// atomic.WriteFile doesn't set permissions for new files
	return os.Chmod(path, docMode)
}

// Delete removes the document; a missing file is not an error.
func (b *FileBackend) Delete(key string) error {
	err := os.Remove(filepath.Join(b.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that FileBackend implements domain.DocumentBackend.
var _ domain.DocumentBackend = (*FileBackend)(nil)

// readJSON decodes the document at key into out. A missing document leaves
// out untouched and reports false; undecodable content wraps ErrCorruptState.
func readJSON(b domain.DocumentBackend, key string, out any) (bool, error) {
	body, ok, err := b.Read(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrCorruptState, key, err)
	}
	return true, nil
}

// writeJSON encodes v with indentation and replaces the document at key.
func writeJSON(b domain.DocumentBackend, key string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return b.Write(key, buf.Bytes())
}

// readDate decodes a single YYYY-MM-DD document.
func readDate(b domain.DocumentBackend, key string) (time.Time, bool, error) {
	body, ok, err := b.Read(key)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	d, err := calendar.ParseDate(strings.TrimSpace(string(body)))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %s: %v", domain.ErrCorruptState, key, err)
	}
	return d, true, nil
}

func writeDate(b domain.DocumentBackend, key string, d time.Time) error {
	return b.Write(key, []byte(calendar.FormatDate(d)))
}

// recoverCorrupt turns ErrCorruptState into a logged warning.
func recoverCorrupt(logger *log.Logger, err error) error {
	if errors.Is(err, domain.ErrCorruptState) {
		logger.Warn("ignoring corrupt document, using default", "err", err)
		return nil
	}
	return err
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
