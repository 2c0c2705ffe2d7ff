// Package storage persists proof-of-attendance files on local disk and
// hands back stable references for the records that point at them.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
	"pdf":  true,
}

// LocalStorage writes files under a single upload directory.
type LocalStorage struct {
	Dir string
}

// NewLocalStorage returns an adapter rooted at dir, defaulting to
// ./uploads when dir is empty.
func NewLocalStorage(dir string) *LocalStorage {
	if dir == "" {
		dir = "uploads"
	}
	return &LocalStorage{Dir: dir}
}

// SaveFile writes data under a random name with the given extension and
// returns the file name usable as a stable reference. Unknown extensions
// fall back to .bin rather than being rejected; callers validate content
// before saving.
func (s *LocalStorage) SaveFile(data []byte, ext string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create upload dir: %w", err)
	}

	name := uuid.New().String() + "." + safeExt(ext)
	path := filepath.Join(s.Dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	return name, nil
}

// Path resolves a stored file name back to its on-disk location.
func (s *LocalStorage) Path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

func safeExt(ext string) string {
	e := strings.ToLower(strings.TrimPrefix(ext, "."))
	if e == "jpeg" {
		e = "jpg"
	}
	if !allowedExtensions[e] {
		return "bin"
	}
	return e
}
