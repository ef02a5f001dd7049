package hydrate

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/starford/billabong/internal/blog"
	"github.com/starford/billabong/internal/content"
)

// Blog grid targets.
const (
	BlogGridSelector   = "#blog-grid"
	LatestGridSelector = "#latest-posts-grid"
)

// Blog renders the full listing into #blog-grid and the compact listing into
// #latest-posts-grid. Grids that are absent from the page are skipped.
func Blog(doc *goquery.Document, st *content.Store, p Page) error {
	targets := []struct {
		sel  string
		mode blog.Mode
	}{
		{BlogGridSelector, blog.ModeFull},
		{LatestGridSelector, blog.ModeCompact},
	}
	for _, t := range targets {
		grid := doc.Find(t.sel).First()
		if grid.Length() == 0 {
			continue
		}
		out, err := blog.Render(&st.Blog, t.mode, p.Resolver())
		if err != nil {
			return fmt.Errorf("hydrate: %s: %w", t.sel, err)
		}
		grid.SetHtml(string(out))
	}
	return nil
}
