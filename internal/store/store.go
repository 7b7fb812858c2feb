// Package store is the file-system boundary: reading and atomically writing
// the task file, creating the starter file on first run, and loading/saving
// the sidecar state file. The in-memory document is never touched here; a
// failed write leaves both the file and the document as they were.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tend-cli/internal/model"
	"tend-cli/internal/taskfile"
)

// Read returns the task file content.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AtomicWrite writes content via a temp file in the same directory followed
// by a rename, so a crash mid-write never corrupts the target.
func AtomicWrite(path string, content string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// EnsureFile reads the task file, creating parent directories and a starter
// template when it does not exist yet. Returns the file content either way.
func EnsureFile(path string) (string, error) {
	content, err := Read(path)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	content = taskfile.Serialize(model.Template())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write template %s: %w", path, err)
	}
	return content, nil
}

// StatePath is the sidecar file co-located with the task file: same base
// name, `.state` extension.
func StatePath(filePath string) string {
	ext := filepath.Ext(filePath)
	return strings.TrimSuffix(filePath, ext) + ".state"
}

// LoadCollapseState reads the sidecar. Missing or unreadable sidecars yield
// a fresh state.
func LoadCollapseState(filePath string) *model.CollapseState {
	content, err := Read(StatePath(filePath))
	if err != nil {
		return model.NewCollapseState()
	}
	return model.DecodeCollapseState(content)
}

// SaveCollapseState writes the sidecar. Failure is reported but callers
// treat it as non-fatal.
func SaveCollapseState(filePath string, c *model.CollapseState) error {
	return os.WriteFile(StatePath(filePath), []byte(c.Encode()), 0o644)
}

// DefaultFilePath is ~/.tend/todo.md unless overridden by flag, environment
// or config file.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".tend", "todo.md"), nil
}
