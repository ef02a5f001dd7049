// Package testutil provides shared test helpers: a fixture site root,
// temporary databases and HTML parsing for DOM assertions.
package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/starford/billabong/internal/index"
	"github.com/starford/billabong/internal/storage"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "billabong-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Site returns an in-memory site root populated with the fixture site.
func Site(t testing.TB) *storage.FS {
	t.Helper()
	s := storage.NewMemFS()
	WriteSite(t, s)
	return s
}

// DiskSite writes the fixture site into a temp directory.
func DiskSite(t testing.TB) *storage.FS {
	t.Helper()
	s, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	WriteSite(t, s)
	return s
}

// WriteSite writes every fixture file into p.
func WriteSite(t testing.TB, p storage.Provider) {
	t.Helper()
	for path, body := range Files {
		if err := p.Write(path, []byte(body)); err != nil {
			t.Fatalf("write fixture %s: %v", path, err)
		}
	}
}

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}
