// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taibuivan/mhinfo/internal/platform/constants"
)

// Persister stores the settings blob.
//
// Load returns an empty blob, and no error, when nothing was saved yet.
type Persister interface {
	Load() (string, error)
	Save(blob string) error
}

// # File

// FilePersister keeps the blob in a single file.
type FilePersister struct {
	path string
}

// NewFilePersister returns a persister writing to path. An empty path
// resolves to [DefaultPath].
func NewFilePersister(path string) (*FilePersister, error) {
	if path == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return &FilePersister{path: path}, nil
}

// DefaultPath returns the settings file inside the user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: resolve config dir: %w", err)
	}
	return filepath.Join(dir, constants.AppName, constants.SettingsFileName), nil
}

// Path returns the file the blob is stored in.
func (persister *FilePersister) Path() string {
	return persister.path
}

// Load implements [Persister].
func (persister *FilePersister) Load() (string, error) {
	data, err := os.ReadFile(persister.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("settings: read %s: %w", persister.path, err)
	}
	return string(data), nil
}

// Save implements [Persister].
func (persister *FilePersister) Save(blob string) error {
	if err := os.MkdirAll(filepath.Dir(persister.path), 0o755); err != nil {
		return fmt.Errorf("settings: create dir: %w", err)
	}
	if err := os.WriteFile(persister.path, []byte(blob), 0o600); err != nil {
		return fmt.Errorf("settings: write %s: %w", persister.path, err)
	}
	return nil
}

// # Memory

// MemoryPersister keeps the blob in memory. Saves counts the writes.
type MemoryPersister struct {
	Blob  string
	Saves int
}

// Load implements [Persister].
func (persister *MemoryPersister) Load() (string, error) {
	return persister.Blob, nil
}

// Save implements [Persister].
func (persister *MemoryPersister) Save(blob string) error {
	persister.Blob = blob
	persister.Saves++
	return nil
}
