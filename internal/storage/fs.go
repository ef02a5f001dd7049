package storage

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/starford/billabong/internal/checksum"
)

// FS implements Provider on top of an afero file system.
type FS struct {
	fs   afero.Fs
	root string // absolute OS path, empty for in-memory roots
}

// NewFS creates a provider rooted at the given OS directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{fs: afero.NewBasePathFs(afero.NewOsFs(), abs), root: abs}, nil
}

// NewMemFS creates an empty in-memory provider.
func NewMemFS() *FS {
	return &FS{fs: afero.NewMemMapFs()}
}

// Root returns the absolute OS directory, or "" for in-memory providers.
func (f *FS) Root() string { return f.root }

// cleanPath normalises a relative path into an afero path and rejects
// absolute paths and any ".." segment.
func (f *FS) cleanPath(rel string) (string, error) {
	if rel == "" {
		return "/", nil
	}
	slashed := filepath.ToSlash(rel)
	if strings.HasPrefix(slashed, "/") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return "", fmt.Errorf("storage: path escapes root: %s", rel)
		}
	}
	return path.Clean("/" + slashed), nil
}

// Read returns the raw bytes of a file.
func (f *FS) Read(p string) ([]byte, error) {
	clean, err := f.cleanPath(p)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(f.fs, clean)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", p, err)
	}
	return data, nil
}

// Exists reports whether p names a regular file.
func (f *FS) Exists(p string) bool {
	clean, err := f.cleanPath(p)
	if err != nil {
		return false
	}
	info, err := f.fs.Stat(clean)
	return err == nil && !info.IsDir()
}

// List walks dir and returns metadata for every file ending with ext.
func (f *FS) List(dir, ext string) ([]FileMeta, error) {
	base, err := f.cleanPath(dir)
	if err != nil {
		return nil, err
	}
	var out []FileMeta
	err = afero.Walk(f.fs, base, func(p string, info fs.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ext) {
			return nil
		}
		data, err := afero.ReadFile(f.fs, p)
		if err != nil {
			return err
		}
		out = append(out, FileMeta{
			Path:      strings.TrimPrefix(filepath.ToSlash(p), "/"),
			Checksum:  checksum.Sum(data),
			UpdatedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	return out, nil
}

// Write atomically writes content: tmp file → sync → rename.
func (f *FS) Write(p string, content []byte) error {
	clean, err := f.cleanPath(p)
	if err != nil {
		return err
	}
	dir := path.Dir(clean)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := afero.TempFile(f.fs, dir, ".billabong-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = f.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := f.fs.Rename(tmpName, clean); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// HTTP exposes the root for http.FileServer.
func (f *FS) HTTP() http.FileSystem {
	return afero.NewHttpFs(f.fs)
}

var _ Provider = (*FS)(nil)
