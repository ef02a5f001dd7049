package content

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/starford/billabong/internal/testutil"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatch_DebouncesChanges(t *testing.T) {
	site := testutil.DiskSite(t)
	root := site.Root()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu     sync.Mutex
		bursts [][]string
	)
	go Watch(ctx, root, 100*time.Millisecond, discardLogger(), func(paths []string) {
		mu.Lock()
		bursts = append(bursts, paths)
		mu.Unlock()
	})
	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(root, "content", "shared", "theme.json"), []byte(`{}`), 0o644)
	_ = os.WriteFile(filepath.Join(root, "includes", "footer.html"), []byte(`<footer></footer>`), 0o644)
	_ = os.WriteFile(filepath.Join(root, "css", "site.css"), []byte(`body{}`), 0o644)

	eventually(t, 3*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(bursts) >= 1
	}, "expected a change burst")

	mu.Lock()
	defer mu.Unlock()
	seen := map[string]bool{}
	for _, b := range bursts {
		for _, p := range b {
			seen[p] = true
		}
	}
	if !seen["content/shared/theme.json"] || !seen["includes/footer.html"] {
		t.Errorf("paths = %v", seen)
	}
	if seen["css/site.css"] {
		t.Error("css changes should be ignored")
	}
}

func TestWatch_NewDirectory(t *testing.T) {
	site := testutil.DiskSite(t)
	root := site.Root()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu   sync.Mutex
		seen = map[string]bool{}
	)
	go Watch(ctx, root, 50*time.Millisecond, discardLogger(), func(paths []string) {
		mu.Lock()
		for _, p := range paths {
			seen[p] = true
		}
		mu.Unlock()
	})
	time.Sleep(100 * time.Millisecond)

	dir := filepath.Join(root, "de")
	_ = os.MkdirAll(dir, 0o755)
	time.Sleep(100 * time.Millisecond)
	_ = os.WriteFile(filepath.Join(dir, "index.html"), []byte(`<html></html>`), 0o644)

	eventually(t, 3*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen["de/index.html"]
	}, "file in new directory not reported")
}

func TestRelevant(t *testing.T) {
	cases := map[string]bool{
		"/x/content/shared/blog.json": true,
		"/x/hu/index.html":            true,
		"/x/.billabong-tmp-123":       false,
		"/x/index.html~":              false,
		"/x/images/a.png":             false,
	}
	for in, want := range cases {
		if got := relevant(in); got != want {
			t.Errorf("relevant(%q) = %v, want %v", in, got, want)
		}
	}
}
