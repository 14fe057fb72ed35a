// Package storage persists uploaded files under category directories and
// hands out paths relative to the storage root. Only the relative path is
// ever stored in the database, keeping the root configurable.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload categories, one subdirectory each.
const (
	CategoryNews    = "news"
	CategorySports  = "sports"
	CategoryResults = "results"
	CategorySliders = "sliders"
)

var ErrNotFound = errors.New("file not found")

type MediaStore struct {
	root string
}

// New creates the storage root and its category subdirectories.
func New(root string) (*MediaStore, error) {
	for _, category := range []string{CategoryNews, CategorySports, CategoryResults, CategorySliders} {
		if err := os.MkdirAll(filepath.Join(root, category), 0o755); err != nil {
			return nil, fmt.Errorf("create upload directory: %w", err)
		}
	}
	return &MediaStore{root: root}, nil
}

// Save writes the upload under the category directory with a fresh uuid
// name, preserving the original extension, and returns the relative path.
func (s *MediaStore) Save(src io.Reader, originalName, category string) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	relPath := filepath.ToSlash(filepath.Join(category, name))

	dst, err := os.Create(filepath.Join(s.root, category, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return relPath, nil
}

// Delete removes a stored file. Deleting a path that does not exist is a
// no-op so record deletion never fails on already-missing media.
func (s *MediaStore) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Open returns the stored file for serving back over HTTP.
func (s *MediaStore) Open(relPath string) (*os.File, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return f, err
}

// resolve rejects paths that escape the storage root.
func (s *MediaStore) resolve(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrNotFound
	}
	return filepath.Join(s.root, clean), nil
}
