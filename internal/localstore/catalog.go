package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Catalog is an in-memory index of the download directory, kept current
// from filesystem events.
type Catalog struct {
	mu    sync.RWMutex
	files map[string]models.FileInfo
	ready bool
}

func NewCatalog() *Catalog {
	return &Catalog{files: make(map[string]models.FileInfo)}
}

// Rescan replaces the index with the current contents of dir.
func (c *Catalog) Rescan(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	files := make(map[string]models.FileInfo, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files[e.Name()] = toFileInfo(info)
	}

	c.mu.Lock()
	c.files = files
	c.ready = true
	c.mu.Unlock()
	return nil
}

// Apply records a change to path. Removed entries, and entries that can no
// longer be stat'ed, are dropped.
func (c *Catalog) Apply(path string, removed bool) {
	name := filepath.Base(path)

	var info os.FileInfo
	if !removed {
		var err error
		info, err = os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			removed = true
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if removed {
		delete(c.files, name)
		return
	}
	c.files[name] = toFileInfo(info)
}

// Ready reports whether an initial scan has completed.
func (c *Catalog) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Files returns a snapshot sorted by name.
func (c *Catalog) Files() []models.FileInfo {
	c.mu.RLock()
	files := make([]models.FileInfo, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	c.mu.RUnlock()

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files
}

func toFileInfo(info os.FileInfo) models.FileInfo {
	return models.FileInfo{
		Name:     info.Name(),
		Size:     info.Size(),
		Modified: info.ModTime(),
	}
}
