// Package siteservice coordinates the content snapshot, the article index
// and page hydration for the HTTP, MCP and build front ends.
package siteservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/blog"
	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/hydrate"
	"github.com/starford/billabong/internal/index"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/storage"
	"github.com/starford/billabong/internal/urls"
)

// ArticleSummary is a lightweight item in a listing response.
type ArticleSummary struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Category         string   `json:"category"`
	CategoryColor    string   `json:"category_color"`
	Date             string   `json:"date"`
	CreationDate     string   `json:"creation_date"`
	FeaturedImage    string   `json:"featured_image"`
	Tags             []string `json:"tags"`
	Href             string   `json:"href"`
}

// ArticleDetail is the full representation of a published article.
type ArticleDetail struct {
	ArticleSummary
	Content string `json:"content"`
	HTML    string `json:"html"`
}

// Service coordinates content, index and hydration.
type Service struct {
	src    storage.Provider
	holder *content.Holder
	db     *index.DB
	hyd    *hydrate.Hydrator
	logger *slog.Logger
}

// New creates a service. db may be nil, in which case search is unavailable.
func New(src storage.Provider, holder *content.Holder, db *index.DB, hyd *hydrate.Hydrator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{src: src, holder: holder, db: db, hyd: hyd, logger: logger}
}

// Source returns the site root.
func (s *Service) Source() storage.Provider { return s.src }

// DB returns the article and submission index, or nil.
func (s *Service) DB() *index.DB { return s.db }

// Ready reports whether a content snapshot is published.
func (s *Service) Ready() bool { return s.holder.Ready() }

// Store returns the current snapshot.
func (s *Service) Store() (*content.Store, error) {
	st := s.holder.Current()
	if st == nil {
		return nil, apperr.ErrContentUnavailable
	}
	return st, nil
}

// Reload loads a fresh snapshot, publishes it and re-syncs the article
// index. changed reports whether the published content differs from the
// previous snapshot.
func (s *Service) Reload(ctx context.Context) (changed bool, err error) {
	prev := s.holder.Current()
	if err := content.Reload(ctx, s.src, s.holder, s.logger); err != nil {
		return false, err
	}
	cur := s.holder.Current()
	changed = prev == nil || prev.Fingerprint != cur.Fingerprint
	if changed && s.db != nil {
		stats, err := index.Sync(s.db, &cur.Blog, s.logger)
		if err != nil {
			return changed, fmt.Errorf("siteservice: sync index: %w", err)
		}
		s.logger.Info("index synced",
			slog.Int("indexed", stats.Indexed),
			slog.Int("removed", stats.Removed))
	}
	return changed, nil
}

// ListArticles returns the published articles for mode, newest first, with
// links for locale.
func (s *Service) ListArticles(_ context.Context, mode blog.Mode, locale models.Locale) ([]ArticleSummary, error) {
	st, err := s.Store()
	if err != nil {
		return nil, err
	}
	cards, err := blog.Cards(&st.Blog, mode, urls.Resolver{Mode: models.ModeNetwork, Locale: locale})
	if err != nil {
		return nil, err
	}
	out := make([]ArticleSummary, len(cards))
	for i, c := range cards {
		out[i] = summary(c)
	}
	return out, nil
}

// GetArticle returns a published article by exact id.
func (s *Service) GetArticle(_ context.Context, id string, locale models.Locale) (*ArticleDetail, error) {
	st, err := s.Store()
	if err != nil {
		return nil, err
	}
	a, ok := st.Blog.Find(id)
	if !ok || !a.Published {
		return nil, apperr.ErrNotFound
	}
	cat, ok := st.Blog.Categories[a.Category]
	if !ok {
		return nil, fmt.Errorf("siteservice: article %s: %w", a.ID, apperr.ErrUnknownCategory)
	}
	created, err := a.Created()
	if err != nil {
		return nil, err
	}
	r := urls.Resolver{Mode: models.ModeNetwork, Locale: locale}
	html, err := s.hyd.Markup().Render(a.Content)
	if err != nil {
		return nil, err
	}
	return &ArticleDetail{
		ArticleSummary: summary(blog.Card{
			Article:  a,
			Category: cat,
			Date:     blog.FormatDate(created, locale),
			Href:     blog.ArticleHref(r, a.ID),
		}),
		Content: a.Content,
		HTML:    string(html),
	}, nil
}

// Search runs a full-text query over published articles.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	if s.db == nil {
		return nil, apperr.ErrServiceNotReady
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", apperr.ErrInvalid)
	}
	res, err := s.db.Search(query, limit)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(res), nil
}

// Navigation returns the main navigation of locale.
func (s *Service) Navigation(_ context.Context, locale models.Locale) ([]models.NavItem, error) {
	st, err := s.Store()
	if err != nil {
		return nil, err
	}
	items := st.MainNav(locale)
	if items == nil {
		return nil, apperr.ErrNotFound
	}
	return items, nil
}

// PageFile maps a clean request path to the page markup file under the site
// root. Hungarian pages without their own markup use the root page.
func (s *Service) PageFile(urlPath string) (string, error) {
	p := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	switch {
	case p == "":
		p = "index.html"
	case p == "hu":
		p = "hu/index.html"
	case strings.HasSuffix(urlPath, "/"):
		p += "/index.html"
	}
	switch path.Ext(p) {
	case "":
		p += ".html"
	case ".html":
	default:
		return "", apperr.ErrNotFound
	}
	if !servable(p) {
		return "", apperr.ErrNotFound
	}

	if s.src.Exists(p) {
		return p, nil
	}
	rest, isHU := strings.CutPrefix(p, "hu/")
	if isHU && servable(rest) && !strings.HasPrefix(rest, "hu/") && s.src.Exists(rest) {
		return rest, nil
	}
	return "", apperr.ErrNotFound
}

// servable reports whether a markup file may be rendered as a page.
// Partials and content documents never are.
func servable(p string) bool {
	return !strings.HasPrefix(p, "includes/") && !strings.HasPrefix(p, "content/")
}

// RenderPage hydrates the markup file for page.
func (s *Service) RenderPage(_ context.Context, file string, page hydrate.Page) ([]byte, hydrate.Result, error) {
	st, err := s.Store()
	if err != nil {
		return nil, hydrate.Result{}, err
	}
	raw, err := s.src.Read(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, hydrate.Result{}, apperr.ErrNotFound
		}
		return nil, hydrate.Result{}, err
	}
	doc, err := hydrate.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, hydrate.Result{}, err
	}

	start := time.Now()
	res, err := s.hyd.Hydrate(doc, st, page)
	if err != nil || res.Redirect != "" {
		return nil, res, err
	}
	out, err := hydrate.Render(doc)
	if err != nil {
		return nil, res, err
	}
	s.logger.Debug("page hydrated",
		slog.String("file", file),
		slog.String("locale", string(page.Locale)),
		slog.Duration("took", time.Since(start)))
	return out, res, nil
}

func summary(c blog.Card) ArticleSummary {
	return ArticleSummary{
		ID:               c.Article.ID,
		Title:            c.Article.Title,
		ShortDescription: c.Article.ShortDescription,
		Category:         c.Category.Name,
		CategoryColor:    c.Category.Color,
		Date:             c.Date,
		CreationDate:     c.Article.CreationDate,
		FeaturedImage:    c.Article.FeaturedImage,
		Tags:             nonNilSlice(c.Article.Tags),
		Href:             c.Href,
	}
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
