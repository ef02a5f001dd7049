package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/checksum"
	"github.com/starford/billabong/internal/storage"
)

// Resource locations relative to the site root.
const (
	ConfigPath     = "content/shared/config.json"
	ContactPath    = "content/shared/contact.json"
	ThemePath      = "content/shared/theme.json"
	NavigationPath = "content/shared/navigation.json"
	BlogPath       = "content/shared/blog.json"
	HeaderPath     = "includes/header.html"
	FooterPath     = "includes/footer.html"
)

// Load fetches every shared document concurrently and returns a complete
// Store. All JSON documents resolve before the partials are fetched. Any
// failure fails the whole batch: the error wraps apperr.ErrContentUnavailable
// and no Store is returned.
func Load(ctx context.Context, src storage.Provider) (*Store, error) {
	st := &Store{}

	docs := []struct {
		path   string
		target any
	}{
		{ConfigPath, &st.Config},
		{ContactPath, &st.Contact},
		{ThemePath, &st.Theme},
		{NavigationPath, &st.Navigation},
		{BlogPath, &st.Blog},
	}
	partials := []struct {
		path   string
		target *string
	}{
		{HeaderPath, &st.Header},
		{FooterPath, &st.Footer},
	}

	raw := make([][]byte, len(docs)+len(partials))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range docs {
		g.Go(func() error {
			data, err := fetch(gctx, src, d.path)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(data, d.target); err != nil {
				return fmt.Errorf("content: parse %s: %w", d.path, err)
			}
			raw[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrContentUnavailable, err)
	}

	g, gctx = errgroup.WithContext(ctx)
	for i, p := range partials {
		g.Go(func() error {
			data, err := fetch(gctx, src, p.path)
			if err != nil {
				return err
			}
			*p.target = string(data)
			raw[len(docs)+i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrContentUnavailable, err)
	}

	st.Fingerprint = checksum.Fingerprint(raw...)
	st.LoadedAt = time.Now()
	return st, nil
}

func fetch(ctx context.Context, src storage.Provider, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := src.Read(path)
	if err != nil {
		return nil, fmt.Errorf("content: fetch %s: %w", path, err)
	}
	return data, nil
}

// Reload loads a fresh snapshot and publishes it on success. On failure the
// previously published snapshot stays in place.
func Reload(ctx context.Context, src storage.Provider, h *Holder, logger *slog.Logger) error {
	st, err := Load(ctx, src)
	if err != nil {
		logger.Error("content: load failed, keeping previous snapshot", slog.String("error", err.Error()))
		return err
	}
	prev := h.Current()
	h.Set(st)
	if prev == nil || prev.Fingerprint != st.Fingerprint {
		logger.Info("content: snapshot published",
			slog.String("fingerprint", st.Fingerprint[:12]),
			slog.Int("articles", len(st.Blog.Articles)))
	}
	return nil
}
