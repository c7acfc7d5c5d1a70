package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type FileBackend struct {
	dir   string
	paths map[string]string
}

// NewFileBackend stores document name at <dir>/<name>.json unless paths
// names an explicit file for it.
func NewFileBackend(dir string, paths map[string]string) *FileBackend {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	clean := make(map[string]string, len(paths))
	for name, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			clean[name] = p
		}
	}
	return &FileBackend{dir: dir, paths: clean}
}

func (b *FileBackend) Path(name string) string {
	if p, ok := b.paths[name]; ok {
		return p
	}
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(b.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Write(_ context.Context, name string, data []byte) error {
	path := b.Path(name)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
