package hydrate

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/models"
)

// InjectPartials inserts the header and footer partials verbatim. Pages
// without a placeholder are left alone.
func InjectPartials(doc *goquery.Document, st *content.Store) {
	doc.Find("#header").First().SetHtml(st.Header)
	doc.Find("#footer").First().SetHtml(st.Footer)
}

const (
	favicon32 = "images/favicon-32x32.png"
	favicon16 = "images/favicon-16x16.png"
)

// Favicon replaces any existing icon links with the site icon set.
func Favicon(doc *goquery.Document, p Page) {
	head := doc.Find("head").First()
	if head.Length() == 0 {
		return
	}
	doc.Find(`link[rel*="icon"]`).Remove()

	href32 := html.EscapeString(assetHref(p, favicon32))
	href16 := html.EscapeString(assetHref(p, favicon16))
	head.AppendHtml(`<link rel="icon" type="image/png" sizes="32x32" href="` + href32 + `">` +
		`<link rel="icon" type="image/png" sizes="16x16" href="` + href16 + `">` +
		`<link rel="shortcut icon" href="` + href32 + `">`)
}

// AssetDirs are the site root directories holding the assets shared by
// both locales.
var AssetDirs = []string{"css", "js", "images"}

// RebaseAssets prefixes relative asset references with one "../" per
// directory level, so a local-file page written below the root (hu/) still
// reaches the shared assets. Page markup, partials and rendered blog cards
// all address assets relative to the root.
func RebaseAssets(doc *goquery.Document, p Page) {
	if p.Mode != models.ModeLocalFile || p.Depth == 0 {
		return
	}
	prefix := strings.Repeat("../", p.Depth)
	doc.Find("link, script, img, source, a").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range []string{"href", "src"} {
			if v, ok := s.Attr(attr); ok && isAssetRef(v) {
				s.SetAttr(attr, prefix+strings.TrimPrefix(v, "./"))
			}
		}
	})
}

func isAssetRef(v string) bool {
	dir, _, ok := strings.Cut(strings.TrimPrefix(v, "./"), "/")
	if !ok {
		return false
	}
	for _, d := range AssetDirs {
		if dir == d {
			return true
		}
	}
	return false
}

// assetHref links a static asset. Assets are shared by both locales, so
// they bypass the locale-aware resolver.
func assetHref(p Page, asset string) string {
	if p.Mode == models.ModeLocalFile {
		return strings.Repeat("../", p.Depth) + asset
	}
	return "/" + asset
}
