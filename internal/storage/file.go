package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/thenoetrevino/tramo/internal/models"
)

// WriteFile atomically replaces path with data. The bytes go to a temporary
// file in the same directory which is then renamed over the target, so a
// failed write never leaves a truncated file behind.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SaveFile writes p to path in the project file format
func SaveFile(path string, p *models.Project) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// LoadFile reads a project file from path
func LoadFile(path string) (*models.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return p, nil
}
