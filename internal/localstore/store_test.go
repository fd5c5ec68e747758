package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My cool movie.mov", "My_cool_movie.mov"},
		{"../../../etc/passwd", "etc_passwd"},
		{"Café déjà vu.txt", "Cafe_deja_vu.txt"},
		{"Video_20240101_120000.txt", "Video_20240101_120000.txt"},
		{"..", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SecureFilename(tt.in); got != tt.want {
			t.Errorf("SecureFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveAndList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	s := New(dir)

	_, err := s.List()
	assert.ErrorIs(t, err, ErrNoDirectory)
	assert.Empty(t, s.Names())

	path, err := s.Save("b.txt", []byte("bravo"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.txt"), path)

	_, err = s.Save("a.txt", []byte("alpha!"))
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.Equal(t, int64(6), files[0].Size)
	assert.Equal(t, []string{"a.txt", "b.txt"}, s.Names())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bravo", string(data))
}

func TestSaveStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	path, err := s.Save("../escape.txt", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.txt"), path)
}

func TestListUsesReadyCatalog(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	c := NewCatalog()
	s.UseCatalog(c)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "disk.txt"), []byte("d"), 0644))

	// not ready yet, falls back to the directory
	assert.Equal(t, []string{"disk.txt"}, s.Names())

	require.NoError(t, c.Rescan(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "late.txt"), []byte("l"), 0644))
	assert.Equal(t, []string{"disk.txt"}, s.Names())

	c.Apply(filepath.Join(dir, "late.txt"), false)
	assert.Equal(t, []string{"disk.txt", "late.txt"}, s.Names())
}

func TestSaveIsListedImmediately(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	c := NewCatalog()
	require.NoError(t, c.Rescan(dir))
	s.UseCatalog(c)

	_, err := s.Save("fresh_20240309_140507.txt", []byte("new"))
	require.NoError(t, err)

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "fresh_20240309_140507.txt", files[0].Name)
	assert.Equal(t, int64(3), files[0].Size)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	for _, name := range []string{"Go_Interfaces_20240309_140507.txt", "Café_20240101_000000.txt"} {
		_, err := s.Save(name, []byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "secret.txt"), []byte("s"), 0644))
	t.Cleanup(func() { os.Remove(filepath.Join(filepath.Dir(dir), "secret.txt")) })

	tests := []struct {
		name         string
		requested    string
		wantFile     string
		wantDownload string
		wantErr      error
	}{
		{
			name:         "exact",
			requested:    "Go_Interfaces_20240309_140507.txt",
			wantFile:     "Go_Interfaces_20240309_140507.txt",
			wantDownload: "Go_Interfaces_20240309_140507.txt",
		},
		{
			name:         "raw name when sanitizing changes it",
			requested:    "Café_20240101_000000.txt",
			wantFile:     "Café_20240101_000000.txt",
			wantDownload: "Cafe_20240101_000000.txt",
		},
		{
			name:         "substring",
			requested:    "Go_Interfaces",
			wantFile:     "Go_Interfaces_20240309_140507.txt",
			wantDownload: "Go_Interfaces",
		},
		{
			name:      "traversal",
			requested: "../secret.txt",
			wantErr:   ErrFileNotFound,
		},
		{
			name:      "missing",
			requested: "nothing-here.txt",
			wantErr:   ErrFileNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, download, err := s.Resolve(tt.requested)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantFile), path)
			assert.Equal(t, tt.wantDownload, download)
		})
	}
}

func TestCatalogApply(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog()
	assert.False(t, c.Ready())

	require.NoError(t, c.Rescan(filepath.Join(dir, "missing")))
	assert.True(t, c.Ready())
	assert.Empty(t, c.Files())

	p := filepath.Join(dir, "one.txt")
	require.NoError(t, os.WriteFile(p, []byte("12345"), 0644))
	c.Apply(p, false)

	files := c.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "one.txt", files[0].Name)
	assert.Equal(t, int64(5), files[0].Size)

	require.NoError(t, os.Remove(p))
	c.Apply(p, false)
	assert.Empty(t, c.Files())

	c.Apply(filepath.Join(dir, "never.txt"), true)
	assert.Empty(t, c.Files())
}
