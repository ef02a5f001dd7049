package hydrate

import (
	"fmt"
	"html/template"

	"github.com/PuerkitoBio/goquery"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/blog"
	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/models"
)

// ArticleSlug is the page slug of the article detail page.
const ArticleSlug = "blog-article"

var placeholderLead = map[models.Locale]string{
	models.LocaleEN: "This article is still being written:",
	models.LocaleHU: "Ez a cikk még készül:",
}

// Article fills the detail page for the article named by the id query
// parameter. A missing, unknown or unpublished article redirects to the
// blog index.
func (h *Hydrator) Article(doc *goquery.Document, st *content.Store, p Page) (Result, error) {
	r := p.Resolver()
	back := Result{Redirect: r.Resolve(blog.IndexPath)}

	id := p.Query.Get("id")
	if id == "" {
		return back, nil
	}
	a, ok := st.Blog.Find(id)
	if !ok || !a.Published {
		h.logger.Debug("article not shown", "id", id, "found", ok)
		return back, nil
	}
	cat, ok := st.Blog.Categories[a.Category]
	if !ok {
		return Result{}, fmt.Errorf("hydrate: article %s category %q: %w", a.ID, a.Category, apperr.ErrUnknownCategory)
	}
	created, err := a.Created()
	if err != nil {
		return Result{}, fmt.Errorf("hydrate: %w", err)
	}

	fullTitle := a.Title + " - " + siteName(st.Config)
	doc.Find("title").First().SetText(fullTitle)
	doc.Find("#article-title").SetAttr("content", fullTitle)
	doc.Find("#article-description").SetAttr("content", a.ShortDescription)
	doc.Find("#og-title").SetAttr("content", a.Title)
	doc.Find("#og-description").SetAttr("content", a.ShortDescription)
	doc.Find("#og-image").SetAttr("content", a.FeaturedImage)

	doc.Find("#breadcrumb-title").SetText(a.Title)
	doc.Find("#article-category-display").
		SetText(cat.Name).
		SetAttr("style", "background-color: "+cat.Color)
	doc.Find("#article-date-display").SetText(blog.FormatDate(created, p.Locale))
	doc.Find("#article-title-display").SetText(a.Title)
	doc.Find("#article-excerpt-display").SetText(a.ShortDescription)
	doc.Find("#article-featured-image").
		SetAttr("src", a.FeaturedImage).
		SetAttr("alt", a.Title)

	body, err := h.md.Render(a.Content)
	if err != nil {
		return Result{}, err
	}
	if body == "" {
		body = template.HTML(execute("placeholder", struct{ Lead, Title string }{placeholderLead[p.Locale], a.Title}))
	}
	doc.Find("#article-body").SetHtml(string(body))

	tags := doc.Find("#article-tags")
	if len(a.Tags) > 0 {
		tags.SetHtml(execute("tags", a.Tags))
	} else {
		tags.SetAttr("style", "display: none")
	}
	return Result{}, nil
}
