package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type idFile struct {
	IDs []string `json:"curriculosIds"`
}

// FileIDCache stores ids in a JSON file, oldest first.
type FileIDCache struct {
	path string
	mu   sync.Mutex
}

func NewFileIDCache(path string) (*FileIDCache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cache path is required")
	}
	return &FileIDCache{path: path}, nil
}

func (c *FileIDCache) List(_ context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.load()
	if err != nil {
		return nil, err
	}
	return f.IDs, nil
}

// Add appends id unless it is already cached.
func (c *FileIDCache) Add(_ context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.load()
	if err != nil {
		return err
	}

	for _, existing := range f.IDs {
		if existing == id {
			return nil
		}
	}

	f.IDs = append(f.IDs, id)
	return writeJSON(c.path, f)
}

func (c *FileIDCache) Remove(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.load()
	if err != nil {
		return err
	}

	kept := f.IDs[:0]
	for _, existing := range f.IDs {
		if existing != id {
			kept = append(kept, existing)
		}
	}

	if len(kept) == len(f.IDs) {
		return nil
	}

	f.IDs = kept
	return writeJSON(c.path, f)
}

func (c *FileIDCache) Close() error {
	return nil
}

func (c *FileIDCache) load() (*idFile, error) {
	f := &idFile{}
	if err := readJSON(c.path, f); err != nil {
		return nil, fmt.Errorf("reading résumé id cache: %w", err)
	}
	if f.IDs == nil {
		f.IDs = []string{}
	}
	return f, nil
}
