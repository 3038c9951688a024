// Package state manages the persistent preferences file. Only
// preferences live here; puzzle board state is never persisted.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Prefs represents the persistent application preferences.
type Prefs struct {
	DBPath      string `json:"db_path,omitempty"`
	GridSize    int    `json:"grid_size,omitempty"`
	ArtworkPath string `json:"artwork_path,omitempty"`
}

// File manages the preferences file.
type File struct {
	path  string
	prefs Prefs
}

// DefaultPath returns the default preferences file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".snapgrid")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// NewFile creates a preferences file manager.
func NewFile(path string) (*File, error) {
	f := &File{path: path}

	if err := f.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return f, nil
}

// NewDefaultFile creates a preferences file manager at the default path.
func NewDefaultFile() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewFile(path)
}

// Load loads the preferences from disk.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, &f.prefs)
}

// Save saves the preferences to disk.
func (f *File) Save() error {
	data, err := json.MarshalIndent(f.prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	return nil
}

// Prefs returns the current preferences.
func (f *File) Prefs() Prefs {
	return f.prefs
}

// SetDBPath sets the database path.
func (f *File) SetDBPath(path string) error {
	f.prefs.DBPath = path
	return f.Save()
}

// SetGridSize remembers the preferred grid size.
func (f *File) SetGridSize(n int) error {
	f.prefs.GridSize = n
	return f.Save()
}

// SetArtworkPath remembers the last image used for the tiles.
func (f *File) SetArtworkPath(path string) error {
	f.prefs.ArtworkPath = path
	return f.Save()
}

// GridSize returns the preferred grid size, or 0 when unset.
func (f *File) GridSize() int {
	return f.prefs.GridSize
}

// ArtworkPath returns the last artwork path, or "" when unset.
func (f *File) ArtworkPath() string {
	return f.prefs.ArtworkPath
}

// DBPath returns the database path, or "" when unset.
func (f *File) DBPath() string {
	return f.prefs.DBPath
}
