// Package blog selects and renders article summaries from the blog index.
package blog

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"sort"
	"time"

	"github.com/goodsign/monday"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/urls"
)

// Mode selects how many articles are rendered and which card layout is used.
type Mode string

// Render modes.
const (
	ModeFull    Mode = "full"
	ModeCompact Mode = "compact"
)

// CompactLimit is the number of articles shown in compact mode.
const CompactLimit = 3

// ArticlePath is the logical path of the article detail page.
const ArticlePath = "/blog-article"

// IndexPath is the logical path of the blog listing page.
const IndexPath = "/blog"

// ParseMode parses a render mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModeCompact:
		return Mode(s), nil
	case "":
		return ModeFull, nil
	}
	return "", fmt.Errorf("%w: blog mode %q", apperr.ErrInvalid, s)
}

// Select returns the published articles, newest first. Articles with equal
// dates keep their source order. Compact mode keeps the first CompactLimit.
func Select(idx *models.BlogIndex, mode Mode) ([]models.Article, error) {
	type dated struct {
		a models.Article
		t time.Time
	}
	var pub []dated
	for _, a := range idx.Articles {
		if !a.Published {
			continue
		}
		t, err := a.Created()
		if err != nil {
			return nil, fmt.Errorf("blog: %w", err)
		}
		pub = append(pub, dated{a: a, t: t})
	}
	sort.SliceStable(pub, func(i, j int) bool { return pub[i].t.After(pub[j].t) })

	if mode == ModeCompact && len(pub) > CompactLimit {
		pub = pub[:CompactLimit]
	}
	out := make([]models.Article, len(pub))
	for i, d := range pub {
		out[i] = d.a
	}
	return out, nil
}

// FormatDate formats t as a long date in the locale's conventions.
func FormatDate(t time.Time, locale models.Locale) string {
	if locale == models.LocaleHU {
		return monday.Format(t, "2006. January 2.", monday.LocaleHuHU)
	}
	return monday.Format(t, "January 2, 2006", monday.LocaleEnUS)
}

// ArticleHref returns the detail-page link for an article id.
func ArticleHref(r urls.Resolver, id string) string {
	return r.Resolve(ArticlePath + "?id=" + url.QueryEscape(id))
}

// Card is the view model of one article summary.
type Card struct {
	Article  models.Article
	Category models.Category
	Date     string
	Href     string
	ReadMore string
}

// Cards builds the card view models for mode. An article whose category is
// missing from the index fails the whole call with apperr.ErrUnknownCategory.
func Cards(idx *models.BlogIndex, mode Mode, r urls.Resolver) ([]Card, error) {
	articles, err := Select(idx, mode)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(articles))
	for _, a := range articles {
		cat, ok := idx.Categories[a.Category]
		if !ok {
			return nil, fmt.Errorf("blog: article %s category %q: %w", a.ID, a.Category, apperr.ErrUnknownCategory)
		}
		t, _ := a.Created()
		cards = append(cards, Card{
			Article:  a,
			Category: cat,
			Date:     FormatDate(t, r.Locale),
			Href:     ArticleHref(r, a.ID),
			ReadMore: readMore[r.Locale],
		})
	}
	return cards, nil
}

var readMore = map[models.Locale]string{
	models.LocaleEN: "Read More →",
	models.LocaleHU: "Tovább →",
}

var cardTemplates = template.Must(template.New("cards").Parse(`
{{- define "full" -}}
{{range .}}<div class="blog-card" data-href="{{.Href}}">
<img src="{{.Article.FeaturedImage}}" alt="{{.Article.Title}}" class="blog-card-image" loading="lazy">
<div class="blog-card-content">
<span class="blog-category" style="background-color: {{.Category.Color}}">{{.Category.Name}}</span>
<h3>{{.Article.Title}}</h3>
<div class="blog-date">{{.Date}}</div>
<p>{{.Article.ShortDescription}}</p>
<a href="{{.Href}}" class="blog-read-more">{{.ReadMore}}</a>
</div>
</div>
{{end}}
{{- end -}}
{{- define "compact" -}}
{{range .}}<a class="latest-post-card" href="{{.Href}}">
<img src="{{.Article.FeaturedImage}}" alt="{{.Article.Title}}" class="latest-post-image" loading="lazy">
<div class="latest-post-content">
<div class="latest-post-meta">
<span class="latest-post-category" style="background-color: {{.Category.Color}}">{{.Category.Name}}</span>
<span class="latest-post-date">{{.Date}}</span>
</div>
<h3>{{.Article.Title}}</h3>
<p>{{.Article.ShortDescription}}</p>
</div>
</a>
{{end}}
{{- end -}}
`))

// Render returns the card markup for mode.
func Render(idx *models.BlogIndex, mode Mode, r urls.Resolver) (template.HTML, error) {
	cards, err := Cards(idx, mode, r)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := cardTemplates.ExecuteTemplate(&buf, string(mode), cards); err != nil {
		return "", fmt.Errorf("blog: render %s: %w", mode, err)
	}
	return template.HTML(buf.String()), nil
}
