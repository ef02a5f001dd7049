// Package storage defines the site-root file-system abstraction.
package storage

import (
	"net/http"
	"time"
)

// FileMeta describes one file under the site root.
type FileMeta struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provider is the interface for site-root file operations.
type Provider interface {
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Exists reports whether a regular file exists at path.
	Exists(path string) bool
	// List returns metadata for every file under dir whose name ends with ext.
	// An empty ext matches every file.
	List(dir, ext string) ([]FileMeta, error)
	// Write atomically writes content to path.
	Write(path string, content []byte) error
	// HTTP exposes the root as an http.FileSystem for asset serving.
	HTTP() http.FileSystem
}
