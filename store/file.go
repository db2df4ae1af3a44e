package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore keeps one pretty-printed JSON file per collection under a
// base directory. This is the default backend.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}

func (f *FileStore) Load(_ context.Context, collection string, dest any) error {
	data, err := os.ReadFile(f.path(collection))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (f *FileStore) Save(_ context.Context, collection string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	// Write-then-rename so a crash mid-write cannot truncate the collection.
	tmp := f.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, f.path(collection)); err != nil {
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	return nil
}
