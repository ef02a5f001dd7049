package hydrate

import (
	"net/url"
	"strings"

	"github.com/starford/billabong/internal/consent"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/urls"
)

// Page is the per-page context every hydrator reads. It is derived from the
// request (or output file) path and never from the content snapshot.
type Page struct {
	// Path is the request path in network mode, or the page's path relative
	// to the site root with a leading slash in local-file mode
	// ("/hu/tours.html").
	Path   string
	Query  url.Values
	Mode   models.RuntimeMode
	Locale models.Locale
	Slug   string
	// Depth is the number of directories between the page and the site root.
	Depth int

	// Consent is the visitor's stored decision; nil when none was made.
	Consent *consent.Record
	// Static pages are rendered ahead of any request: per-visitor and
	// per-query steps (article detail, consent banner, tracking) are skipped.
	Static     bool
	LiveReload bool
}

// NewPage derives locale, slug and depth from p.
func NewPage(p string, query url.Values, mode models.RuntimeMode) Page {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	pg := Page{
		Path:   p,
		Query:  query,
		Mode:   mode,
		Locale: urls.DetectLocale(p),
		Slug:   urls.PageSlug(p, mode),
	}
	if mode == models.ModeLocalFile {
		pg.Depth = strings.Count(strings.TrimPrefix(p, "/"), "/")
	}
	return pg
}

// Resolver returns the URL resolver for this page.
func (p Page) Resolver() urls.Resolver {
	return urls.Resolver{Mode: p.Mode, Locale: p.Locale, Depth: p.Depth}
}
