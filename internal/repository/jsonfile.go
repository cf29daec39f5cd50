package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// readJSONFile decodes the whole entity array. A missing file reads as an
// empty collection.
func readJSONFile[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &model.StorageError{Op: "read " + filepath.Base(path), Err: err}
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &model.StorageError{Op: "decode " + filepath.Base(path), Err: err}
	}
	return out, nil
}

// writeJSONFile rewrites the whole entity array atomically: marshal, write a
// temp file, rename over the original. Readers never see a partial write.
func writeJSONFile[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &model.StorageError{Op: "encode " + filepath.Base(path), Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &model.StorageError{Op: "write " + filepath.Base(path), Err: err}
	}
	tmp := fmt.Sprintf("%s.tmp", path)
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &model.StorageError{Op: "write " + filepath.Base(path), Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &model.StorageError{Op: "write " + filepath.Base(path), Err: err}
	}
	return nil
}
