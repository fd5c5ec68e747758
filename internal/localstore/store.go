package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrNoDirectory  = errors.New("download directory does not exist")
)

// Store keeps downloadable artifacts in one flat directory.
type Store struct {
	BaseDir string
	catalog *Catalog
}

// New creates a Store rooted at baseDir. The directory is created lazily.
func New(baseDir string) *Store {
	return &Store{BaseDir: baseDir}
}

// UseCatalog makes List answer from c instead of reading the directory.
func (s *Store) UseCatalog(c *Catalog) {
	s.catalog = c
}

// Save writes data under name and returns the full path.
func (s *Store) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.BaseDir, 0755); err != nil {
		return "", fmt.Errorf("create download directory %s: %w", s.BaseDir, err)
	}

	path := filepath.Join(s.BaseDir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if s.catalog != nil {
		s.catalog.Apply(path, false)
	}
	return path, nil
}

// Path returns the location name would be stored at.
func (s *Store) Path(name string) string {
	return filepath.Join(s.BaseDir, filepath.Base(name))
}

// List returns the artifacts sorted by name.
func (s *Store) List() ([]models.FileInfo, error) {
	if s.catalog != nil && s.catalog.Ready() {
		return s.catalog.Files(), nil
	}

	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoDirectory
		}
		return nil, fmt.Errorf("read download directory: %w", err)
	}

	files := make([]models.FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, models.FileInfo{
			Name:     e.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Names returns the names of the stored artifacts.
func (s *Store) Names() []string {
	files, err := s.List()
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

// Resolve finds the file a download request refers to. requested is the
// URL-decoded name. Exact matches on the sanitized and the raw name come
// first, then the first directory entry containing either. Only plain
// names inside BaseDir are ever returned.
func (s *Store) Resolve(requested string) (path string, downloadName string, err error) {
	safe := SecureFilename(requested)

	var candidates []string
	if safe != "" {
		candidates = append(candidates, safe)
	}
	if isPlainName(requested) && requested != safe {
		candidates = append(candidates, requested)
	}

	for _, name := range candidates {
		p := filepath.Join(s.BaseDir, name)
		if isRegularFile(p) {
			return p, downloadNameFor(safe, name), nil
		}
	}

	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		return "", "", ErrFileNotFound
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, name := range candidates {
			if strings.Contains(e.Name(), name) {
				return filepath.Join(s.BaseDir, e.Name()), downloadNameFor(safe, e.Name()), nil
			}
		}
	}

	return "", "", ErrFileNotFound
}

func downloadNameFor(safe, fallback string) string {
	if safe != "" {
		return safe
	}
	return fallback
}

func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "\x00")
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
