// Package build renders every page of a site root into a static output
// tree for one runtime mode and copies the remaining files alongside.
package build

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/billabong/internal/checksum"
	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/hydrate"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/storage"
)

// Directories of the site root that are never written to the output:
// partials are inlined into every page.
var skipDirs = []string{"includes/"}

// Options configures a build.
type Options struct {
	Mode models.RuntimeMode
	// Workers bounds concurrent page renders; defaults to GOMAXPROCS.
	Workers int
	// Minify compacts HTML, CSS, JS and SVG output.
	Minify bool
	Logger *slog.Logger
}

// Stats summarizes a finished build.
type Stats struct {
	Pages     int           `json:"pages"`
	Assets    int           `json:"assets"`
	Unchanged int           `json:"unchanged"`
	Took      time.Duration `json:"took"`
}

// Builder writes hydrated pages from src into out.
type Builder struct {
	src    storage.Provider
	out    storage.Provider
	hyd    *hydrate.Hydrator
	opts   Options
	min    *minifier
	logger *slog.Logger
}

// New creates a Builder.
func New(src, out storage.Provider, hyd *hydrate.Hydrator, opts Options) *Builder {
	if opts.Mode == "" {
		opts.Mode = models.ModeLocalFile
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	b := &Builder{src: src, out: out, hyd: hyd, opts: opts, logger: logger}
	if opts.Minify {
		b.min = newMinifier()
	}
	return b
}

// job is one output file.
type job struct {
	src  string // file read from the site root
	dst  string // file written to the output
	page bool
}

// Run loads the content snapshot and writes the output tree. Any page that
// fails to hydrate fails the build.
func (b *Builder) Run(ctx context.Context) (Stats, error) {
	start := time.Now()

	st, err := content.Load(ctx, b.src)
	if err != nil {
		return Stats{}, err
	}
	if err := st.Validate(); err != nil {
		return Stats{}, fmt.Errorf("build: %w", err)
	}

	jobs, err := b.plan()
	if err != nil {
		return Stats{}, err
	}

	var pages, assets, unchanged atomic.Int64
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := b.src.Read(j.src)
			if err != nil {
				return err
			}
			if j.page {
				data, err = b.render(st, j, data)
				if err != nil {
					return err
				}
				pages.Add(1)
			} else {
				assets.Add(1)
			}
			if b.min != nil {
				if data, err = b.min.apply(j.dst, data); err != nil {
					return err
				}
			}
			wrote, err := b.write(j.dst, data)
			if err != nil {
				return err
			}
			if !wrote {
				unchanged.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Pages:     int(pages.Load()),
		Assets:    int(assets.Load()),
		Unchanged: int(unchanged.Load()),
		Took:      time.Since(start),
	}
	b.logger.Info("build: done",
		slog.String("mode", string(b.opts.Mode)),
		slog.Int("pages", stats.Pages),
		slog.Int("assets", stats.Assets),
		slog.Int("unchanged", stats.Unchanged),
		slog.Duration("took", stats.Took))
	return stats, nil
}

// plan lists the output files. Root pages without a Hungarian counterpart
// are also rendered under hu/ from the root markup.
func (b *Builder) plan() ([]job, error) {
	files, err := b.src.List("", "")
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(files))
	for _, f := range files {
		have[f.Path] = true
	}

	var jobs []job
	for _, f := range files {
		if skipped(f.Path) {
			continue
		}
		if path.Ext(f.Path) != ".html" || strings.HasPrefix(f.Path, "content/") {
			jobs = append(jobs, job{src: f.Path, dst: f.Path})
			continue
		}
		jobs = append(jobs, job{src: f.Path, dst: f.Path, page: true})
		if !strings.Contains(f.Path, "/") && !have["hu/"+f.Path] {
			jobs = append(jobs, job{src: f.Path, dst: "hu/" + f.Path, page: true})
		}
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].dst < jobs[k].dst })
	return jobs, nil
}

func skipped(p string) bool {
	if strings.HasPrefix(path.Base(p), ".") {
		return true
	}
	for _, d := range skipDirs {
		if strings.HasPrefix(p, d) {
			return true
		}
	}
	return false
}

func (b *Builder) render(st *content.Store, j job, raw []byte) ([]byte, error) {
	doc, err := hydrate.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build: %s: %w", j.dst, err)
	}
	p := hydrate.NewPage(PagePath(j.dst, b.opts.Mode), nil, b.opts.Mode)
	p.Static = true
	if _, err := b.hyd.Hydrate(doc, st, p); err != nil {
		return nil, fmt.Errorf("build: %s: %w", j.dst, err)
	}
	out, err := hydrate.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("build: %s: %w", j.dst, err)
	}
	return out, nil
}

// write stores data at p unless the output already holds identical bytes.
func (b *Builder) write(p string, data []byte) (bool, error) {
	if b.out.Exists(p) {
		if prev, err := b.out.Read(p); err == nil && checksum.Sum(prev) == checksum.Sum(data) {
			return false, nil
		}
	}
	if err := b.out.Write(p, data); err != nil {
		return false, fmt.Errorf("build: write %s: %w", p, err)
	}
	return true, nil
}

// PagePath returns the path a page at output file f is addressed by: the
// file itself when opened from disk, its clean URL when served.
func PagePath(f string, mode models.RuntimeMode) string {
	if mode == models.ModeLocalFile {
		return "/" + f
	}
	p := strings.TrimSuffix(f, ".html")
	switch {
	case p == "index":
		return "/"
	case strings.HasSuffix(p, "/index"):
		return "/" + strings.TrimSuffix(p, "index")
	}
	return "/" + p
}
