// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/taskflow/internal/domain"
)

var errNullTask = errors.New("null task")

// Store implements domain.TaskRepository using a JSON file holding the
// task list as a top-level array.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads all tasks. A missing file is an empty list.
func (s *Store) Load() ([]*domain.Task, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*domain.Task{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	for i, t := range tasks {
		if t == nil {
			return nil, fmt.Errorf("parse store file: %w at index %d", errNullTask, i)
		}
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// Save overwrites the file with tasks.
func (s *Store) Save(tasks []*domain.Task) error {
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	content, err := Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	return WriteFile(s.path, content)
}

// Marshal renders v the way records are stored: two-space indented JSON.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// WriteFile writes content to path through a temp file and a rename, so a
// crash mid-write leaves the previous record intact.
func WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
