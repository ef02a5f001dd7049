// Package hydrate fills a page's placeholder markup from the content
// snapshot: partials, navigation, footer, blog listings, article detail,
// favicon, consent banner and tracking.
package hydrate

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/markup"
	"github.com/starford/billabong/internal/models"
)

// DefaultSiteName is used when the site config carries no site.name.
const DefaultSiteName = "Sailing Billabong"

// Result reports what the caller must do after hydration.
type Result struct {
	// Redirect is set when the page must not be shown and the visitor is sent
	// elsewhere (article detail without a valid article).
	Redirect string
}

// Hydrator runs the hydration pipeline.
type Hydrator struct {
	md     *markup.Renderer
	logger *slog.Logger
}

// New creates a Hydrator.
func New(md *markup.Renderer, logger *slog.Logger) *Hydrator {
	if md == nil {
		md = markup.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hydrator{md: md, logger: logger}
}

// Markup returns the article body renderer.
func (h *Hydrator) Markup() *markup.Renderer { return h.md }

// Hydrate mutates doc in place. Partials are injected first since the
// navigation and footer targets live inside them.
func (h *Hydrator) Hydrate(doc *goquery.Document, st *content.Store, p Page) (Result, error) {
	InjectPartials(doc, st)
	Favicon(doc, p)
	Navigation(doc, st, p)
	Footer(doc, st)
	if err := Blog(doc, st, p); err != nil {
		return Result{}, err
	}
	if p.Slug == ArticleSlug && !p.Static {
		res, err := h.Article(doc, st, p)
		if err != nil || res.Redirect != "" {
			return res, err
		}
	}
	ContactForm(doc, p)
	LinkableHeaders(doc)
	if !p.Static {
		ConsentBanner(doc, p)
		Tracking(doc, st, p)
	}
	if p.LiveReload {
		LiveReload(doc, st.Fingerprint)
	}
	RebaseAssets(doc, p)
	return Result{}, nil
}

// Parse reads pre-hydration markup.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("hydrate: parse: %w", err)
	}
	return doc, nil
}

// Render serialises the hydrated document.
func Render(doc *goquery.Document) ([]byte, error) {
	out, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("hydrate: render: %w", err)
	}
	return []byte(out), nil
}

func siteName(cfg models.SiteConfig) string {
	if n := cfg.String("site", "name"); n != "" {
		return n
	}
	return DefaultSiteName
}
