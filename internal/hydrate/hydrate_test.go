package hydrate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/consent"
	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/markup"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/testutil"
)

func loadStore(t *testing.T) *content.Store {
	t.Helper()
	st, err := content.Load(context.Background(), testutil.Site(t))
	require.NoError(t, err)
	return st
}

func newHydrator() *Hydrator {
	return New(markup.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func parseFixture(t *testing.T, file string) *goquery.Document {
	t.Helper()
	body, ok := testutil.Files[file]
	require.True(t, ok, "fixture %s", file)
	doc, err := Parse(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func hydrate(t *testing.T, st *content.Store, file string, p Page) (*goquery.Document, Result) {
	t.Helper()
	doc := parseFixture(t, file)
	res, err := newHydrator().Hydrate(doc, st, p)
	require.NoError(t, err)
	return doc, res
}

func attrs(sel *goquery.Selection, name string) []string {
	return sel.Map(func(_ int, s *goquery.Selection) string {
		v, _ := s.Attr(name)
		return v
	})
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	p := NewPage("hu/tours.html", nil, models.ModeLocalFile)
	require.Equal(t, "/hu/tours.html", p.Path)
	require.Equal(t, models.LocaleHU, p.Locale)
	require.Equal(t, "tours", p.Slug)
	require.Equal(t, 1, p.Depth)

	p = NewPage("/hu/tours", nil, models.ModeNetwork)
	require.Equal(t, models.LocaleHU, p.Locale)
	require.Equal(t, "tours", p.Slug)
	require.Zero(t, p.Depth)

	p = NewPage("/", nil, models.ModeNetwork)
	require.Equal(t, models.LocaleEN, p.Locale)
	require.Equal(t, "index", p.Slug)
}

func TestHydrate_InjectsPartials(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "tours.html", NewPage("/tours", nil, models.ModeNetwork))

	require.Equal(t, 1, doc.Find("#header .logo-container").Length())
	require.Equal(t, 1, doc.Find("#footer .social-links").Length())
}

func TestHydrate_PageWithoutPlaceholders(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, res := hydrate(t, st, "plain.html", NewPage("/plain", nil, models.ModeNetwork))
	require.Empty(t, res.Redirect)
	require.Equal(t, "static", doc.Find("p").First().Text())
	require.Zero(t, doc.Find(".nav").Length())
}

func TestNavigation_OrderAndDropdownActive(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "tours.html", NewPage("/tours", nil, models.ModeNetwork))

	require.Equal(t,
		[]string{"nav-home", "nav-tours", "nav-blog", "nav-contact"},
		attrs(doc.Find(".nav > .nav-dropdown > a.nav-dropdown-toggle"), "id"))
	require.Equal(t,
		[]string{"/", "/tours", "/blog", "/contact"},
		attrs(doc.Find(".nav > .nav-dropdown > a.nav-dropdown-toggle"), "href"))
	require.Equal(t,
		[]string{"/tours#day", "/tours#sunset"},
		attrs(doc.Find("#nav-tours").Parent().Find(".nav-dropdown-menu a"), "href"))

	// Dropdown items mark their container, not the toggle.
	active := doc.Find(".nav .active")
	require.Equal(t, 1, active.Length())
	require.True(t, active.Is(".nav-dropdown"))
	require.Equal(t, 1, active.Find("#nav-tours").Length())
	require.False(t, doc.Find("#nav-tours").HasClass("active"))

	require.True(t, doc.Find("#mobile-nav-tours").HasClass("active"))
	require.Equal(t, 1, doc.Find(".mobile-nav .active").Length())
}

func TestNavigation_MobileMenu(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "index.html", NewPage("/", nil, models.ModeNetwork))

	links := doc.Find(".mobile-nav > a")
	require.Equal(t, 6, links.Length())
	require.Equal(t, "mobile-nav-tours", attrs(links.Eq(1), "id")[0])
	require.Equal(t, "• Day trips", links.Eq(2).Text())
	require.Equal(t, "/tours#day", attrs(links.Eq(2), "href")[0])
	require.True(t, doc.Find("#mobile-nav-home").HasClass("active"))
	require.True(t, doc.Find("#nav-home").HasClass("active"))
}

func TestNavigation_NoMatchLeavesNothingActive(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "tours.html", NewPage("/gallery", nil, models.ModeNetwork))
	require.Zero(t, doc.Find(".nav .active, .mobile-nav .active").Length())
}

func TestNavigation_FirstMatchWins(t *testing.T) {
	t.Parallel()

	items := []models.NavItem{
		{ID: "a", ActivePages: []string{"x"}},
		{ID: "b", ActivePages: []string{"y", "x"}},
	}
	require.Equal(t, 0, ActiveIndex(items, "x"))
	require.Equal(t, 1, ActiveIndex(items, "y"))
	require.Equal(t, -1, ActiveIndex(items, "z"))
	require.Equal(t, -1, ActiveIndex(nil, "x"))
}

func TestNavigation_MissingContainerSkipsMenus(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	cp := *st
	cp.Header = `<nav class="nav"></nav><a id="lang-hu" href="#">HU</a>`
	doc, _ := hydrate(t, &cp, "tours.html", NewPage("/tours", nil, models.ModeNetwork))

	require.Zero(t, doc.Find(".nav a").Length())
	href, _ := doc.Find("#lang-hu").Attr("href")
	require.Equal(t, "/hu/tours", href)
}

func TestNavigation_HungarianNetwork(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "hu/tours.html", NewPage("/hu/tours", nil, models.ModeNetwork))

	require.Equal(t, "Túrák", doc.Find("#nav-tours").Text())
	require.Equal(t, "/hu/tours", attrs(doc.Find("#nav-tours"), "href")[0])
	require.Equal(t, "/hu/", attrs(doc.Find(".logo-container"), "href")[0])

	require.True(t, doc.Find("#lang-hu").HasClass("active"))
	require.False(t, doc.Find("#lang-en").HasClass("active"))
	require.Equal(t, "/tours", attrs(doc.Find("#lang-en"), "href")[0])
	require.Equal(t, "/hu/tours", attrs(doc.Find("#lang-hu"), "href")[0])
}

func TestNavigation_LocalFileBelowRoot(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "hu/tours.html", NewPage("/hu/tours.html", nil, models.ModeLocalFile))

	require.Equal(t,
		[]string{"../hu/index.html", "../hu/tours.html", "../hu/blog.html", "../hu/contact.html"},
		attrs(doc.Find(".nav a.nav-dropdown-toggle"), "href"))
	require.Equal(t, "../hu/tours.html#day", attrs(doc.Find(".nav-dropdown-menu a").First(), "href")[0])
	require.Equal(t, "../hu/index.html", attrs(doc.Find(".logo-container"), "href")[0])
	require.Equal(t, "../tours.html", attrs(doc.Find("#lang-en"), "href")[0])
	require.Equal(t, "../hu/tours.html", attrs(doc.Find("#lang-hu"), "href")[0])
}

func TestNavigation_LocalFileRoot(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "index.html", NewPage("/index.html", nil, models.ModeLocalFile))

	require.Equal(t,
		[]string{"index.html", "tours.html", "blog.html", "contact.html"},
		attrs(doc.Find(".nav a.nav-dropdown-toggle"), "href"))
	require.Equal(t, "index.html", attrs(doc.Find(".logo-container"), "href")[0])
	require.Equal(t, "hu/index.html", attrs(doc.Find("#lang-hu"), "href")[0])
}

func TestFooter(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "tours.html", NewPage("/tours", nil, models.ModeNetwork))

	email := doc.Find(`[data-contact="email"]`)
	require.Equal(t, "Email: contact@sailingbillabong.com", email.Text())
	require.Equal(t, "mailto:contact@sailingbillabong.com", attrs(email, "href")[0])

	phone := doc.Find(`[data-contact="phone"]`)
	require.Equal(t, "Phone: +36 30 123 4567", phone.Text())
	_, hasHref := phone.Attr("href")
	require.False(t, hasHref)

	social := doc.Find(".social-links a.social-link")
	require.Equal(t, []string{"FB", "IG"}, social.Map(func(_ int, s *goquery.Selection) string { return s.Text() }))
	require.Equal(t, []string{"_blank", "_blank"}, attrs(social, "target"))
	require.Equal(t, "noopener noreferrer", attrs(social, "rel")[0])
	require.Equal(t, "Sailing Billabong", attrs(social, "title")[0])
}

func TestBlog_FullGrid(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "blog.html", NewPage("/blog", nil, models.ModeNetwork))

	cards := doc.Find("#blog-grid .blog-card")
	require.Equal(t, 4, cards.Length())
	require.Equal(t,
		[]string{"Five Knots", "Balaton Sunsets", "Our First Sail", "Winter Storage"},
		cards.Find("h3").Map(func(_ int, s *goquery.Selection) string { return s.Text() }))
	require.Equal(t, "/blog-article?id=knots", attrs(cards.First().Find("a.blog-read-more"), "href")[0])
	require.Equal(t, "May 10, 2024", cards.First().Find(".blog-date").Text())
	require.True(t, doc.Find("#nav-blog").HasClass("active"))
}

func TestBlog_CompactGridHungarian(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "hu/index.html", NewPage("/hu/", nil, models.ModeNetwork))

	cards := doc.Find("#latest-posts-grid a.latest-post-card")
	require.Equal(t, 3, cards.Length())
	require.Equal(t, "/hu/blog-article?id=knots", attrs(cards.First(), "href")[0])
	require.Contains(t, cards.First().Find(".latest-post-date").Text(), "2024.")
}

func TestBlog_UnknownCategoryFails(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	cp := *st
	cp.Blog.Articles = append([]models.Article(nil), st.Blog.Articles...)
	cp.Blog.Articles[0].Category = "racing"

	doc := parseFixture(t, "blog.html")
	_, err := newHydrator().Hydrate(doc, &cp, NewPage("/blog", nil, models.ModeNetwork))
	require.True(t, errors.Is(err, apperr.ErrUnknownCategory), "err = %v", err)
}

func TestArticle_Detail(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	q := url.Values{"id": {"knots"}}
	doc, res := hydrate(t, st, "blog-article.html", NewPage("/blog-article", q, models.ModeNetwork))
	require.Empty(t, res.Redirect)

	require.Equal(t, "Five Knots - Sailing Billabong", doc.Find("title").Text())
	require.Equal(t, "Five Knots - Sailing Billabong", attrs(doc.Find("#article-title"), "content")[0])
	require.Equal(t, "Knots every sailor needs.", attrs(doc.Find("#og-description"), "content")[0])
	require.Equal(t, "images/knots.jpg", attrs(doc.Find("#og-image"), "content")[0])
	require.Equal(t, "Five Knots", doc.Find("#breadcrumb-title").Text())
	require.Equal(t, "Sailing Tips", doc.Find("#article-category-display").Text())
	require.Contains(t, attrs(doc.Find("#article-category-display"), "style")[0], "#43a047")
	require.Equal(t, "May 10, 2024", doc.Find("#article-date-display").Text())
	require.Equal(t, "Five Knots", attrs(doc.Find("#article-featured-image"), "alt")[0])

	body := doc.Find("#article-body")
	require.Equal(t, 1, body.Find("h2#bowline").Length())
	require.Equal(t, LinkableTitle, attrs(body.Find("h2#bowline"), "title")[0])
	require.Zero(t, body.Find("script").Length())

	require.Equal(t, []string{"#knots", "#basics"},
		doc.Find("#article-tags .article-tag").Map(func(_ int, s *goquery.Selection) string { return s.Text() }))
}

func TestArticle_PlaceholderAndNoTags(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	cp := *st
	cp.Blog.Articles = append([]models.Article(nil), st.Blog.Articles...)
	cp.Blog.Articles[0].Tags = nil

	q := url.Values{"id": {"first-sail"}}
	doc, _ := hydrate(t, &cp, "blog-article.html", NewPage("/hu/blog-article", q, models.ModeNetwork))

	require.Contains(t, doc.Find("#article-body").Text(), "Our First Sail")
	require.Contains(t, doc.Find("#article-body").Text(), "készül")
	require.Equal(t, "display: none", attrs(doc.Find("#article-tags"), "style")[0])
}

func TestArticle_Redirects(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	cases := []struct {
		name string
		path string
		q    url.Values
		want string
	}{
		{"missing id", "/blog-article", nil, "/blog"},
		{"unknown id", "/blog-article", url.Values{"id": {"nope"}}, "/blog"},
		{"unpublished", "/blog-article", url.Values{"id": {"draft"}}, "/blog"},
		{"prefix is not a match", "/blog-article", url.Values{"id": {"knot"}}, "/blog"},
		{"hungarian", "/hu/blog-article", url.Values{"id": {"draft"}}, "/hu/blog"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, res := hydrate(t, st, "blog-article.html", NewPage(tc.path, tc.q, models.ModeNetwork))
			require.Equal(t, tc.want, res.Redirect)
		})
	}
}

func TestArticle_StaticPageIsNotRedirected(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	p := NewPage("/blog-article.html", nil, models.ModeLocalFile)
	p.Static = true
	doc, res := hydrate(t, st, "blog-article.html", p)
	require.Empty(t, res.Redirect)
	require.Equal(t, 4, doc.Find(".nav .nav-dropdown").Length())
	require.True(t, doc.Find("#nav-blog").HasClass("active"))
}

func TestFavicon(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "tours.html", NewPage("/hu/tours", nil, models.ModeNetwork))

	require.Zero(t, doc.Find(`link[href="old.ico"]`).Length())
	require.Equal(t,
		[]string{"/images/favicon-32x32.png", "/images/favicon-16x16.png", "/images/favicon-32x32.png"},
		attrs(doc.Find(`link[rel*="icon"]`), "href"))
	require.Equal(t, "32x32", attrs(doc.Find(`link[rel="icon"]`).First(), "sizes")[0])

	doc, _ = hydrate(t, st, "hu/tours.html", NewPage("/hu/tours.html", nil, models.ModeLocalFile))
	require.Equal(t, "../images/favicon-16x16.png", attrs(doc.Find(`link[sizes="16x16"]`), "href")[0])
}

func TestRebaseAssets(t *testing.T) {
	t.Parallel()

	const page = `<html><head><link rel="stylesheet" href="css/site.css"><script src="./js/main.js"></script></head>
<body><img src="images/a.jpg"><img src="https://cdn.example/images/b.jpg"><a href="../hu/blog.html">x</a>
<a href="images">y</a><img src="../images/c.jpg"></body></html>`
	parse := func() *goquery.Document {
		doc, err := Parse(strings.NewReader(page))
		require.NoError(t, err)
		return doc
	}

	doc := parse()
	RebaseAssets(doc, NewPage("/hu/contact.html", nil, models.ModeLocalFile))
	require.Equal(t, []string{"../css/site.css"}, attrs(doc.Find("link"), "href"))
	require.Equal(t, []string{"../js/main.js"}, attrs(doc.Find("script"), "src"))
	require.Equal(t, []string{"../images/a.jpg", "https://cdn.example/images/b.jpg", "../images/c.jpg"}, attrs(doc.Find("img"), "src"))
	require.Equal(t, []string{"../hu/blog.html", "images"}, attrs(doc.Find("a"), "href"))

	for _, p := range []Page{
		NewPage("/contact.html", nil, models.ModeLocalFile),
		NewPage("/hu/contact", nil, models.ModeNetwork),
	} {
		doc = parse()
		RebaseAssets(doc, p)
		require.Equal(t, []string{"css/site.css"}, attrs(doc.Find("link"), "href"), p.Path)
	}
}

func TestConsentBanner(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "tours.html", NewPage("/tours", nil, models.ModeNetwork))

	banner := doc.Find("body > #cookie-consent-banner")
	require.Equal(t, 1, banner.Length())
	require.Equal(t, ConsentPath, attrs(banner.Find("form"), "action")[0])
	require.Equal(t, "/tours", attrs(banner.Find(`input[name="from"]`), "value")[0])
	require.Zero(t, doc.Find("#billabong-gtag, #billabong-pixel").Length())

	ConsentBanner(doc, NewPage("/tours", nil, models.ModeNetwork))
	require.Equal(t, 1, doc.Find("#cookie-consent-banner").Length())

	q := url.Values{"id": {"knots"}}
	doc, _ = hydrate(t, st, "blog-article.html", NewPage("/hu/blog-article", q, models.ModeNetwork))
	require.Equal(t, "/hu/blog-article?id=knots", attrs(doc.Find(`#cookie-consent-banner input[name="from"]`), "value")[0])
}

func TestTracking(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	now := time.Now()

	t.Run("marketing accepted", func(t *testing.T) {
		p := NewPage("/tours", nil, models.ModeNetwork)
		rec := consent.NewRecord(true, now)
		p.Consent = &rec
		doc, _ := hydrate(t, st, "tours.html", p)

		require.Zero(t, doc.Find("#cookie-consent-banner").Length())
		require.Equal(t, 1, doc.Find("head #billabong-gtag").Length())
		require.Equal(t, 1, doc.Find("body #billabong-pixel").Length())
		require.Contains(t, doc.Find("#billabong-gtag").Text(), "G-TEST123")
		require.Contains(t, doc.Find("#billabong-pixel").Text(), "424242")

		gtag := doc.Find("#billabong-gtag").Text()
		require.Contains(t, gtag, `content_group1: "tours"`)
		require.Contains(t, gtag, `gtag('event', "view_tours"`)
		require.Contains(t, gtag, `"event_label":"tours_page"`)
		require.Contains(t, gtag, `"value":1`)
		pixel := doc.Find("#billabong-pixel").Text()
		require.Contains(t, pixel, `fbq('track', 'ViewContent', {content_type: "tours", content_name: "Sailing Tours"})`)

		Tracking(doc, st, p)
		require.Equal(t, 1, doc.Find("#billabong-gtag").Length())
		require.Equal(t, 1, doc.Find("#billabong-pixel").Length())
	})

	t.Run("per page events", func(t *testing.T) {
		rec := consent.NewRecord(true, now)
		cases := []struct {
			file, path, group, gaEvent, contentType string
		}{
			{"index.html", "/", "home", "", "homepage"},
			{"contact.html", "/contact", "contact", "view_contact", "contact"},
			{"blog.html", "/hu/blog", "blog", "view_blog", "blog"},
			{"plain.html", "/plain", "other", "", ""},
		}
		for _, tc := range cases {
			p := NewPage(tc.path, nil, models.ModeNetwork)
			p.Consent = &rec
			doc, _ := hydrate(t, st, tc.file, p)
			gtag := doc.Find("#billabong-gtag").Text()
			pixel := doc.Find("#billabong-pixel").Text()
			require.Contains(t, gtag, `content_group1: "`+tc.group+`"`, tc.path)
			if tc.gaEvent != "" {
				require.Contains(t, gtag, `"`+tc.gaEvent+`"`, tc.path)
			} else {
				require.NotContains(t, gtag, "view_", tc.path)
			}
			if tc.contentType != "" {
				require.Contains(t, pixel, `content_type: "`+tc.contentType+`"`, tc.path)
			} else {
				require.NotContains(t, pixel, "ViewContent", tc.path)
			}
		}

		q := url.Values{"id": {"knots"}}
		p := NewPage("/blog-article", q, models.ModeNetwork)
		p.Consent = &rec
		doc, _ := hydrate(t, st, "blog-article.html", p)
		require.Contains(t, doc.Find("#billabong-pixel").Text(), `content_type: "blog_post", content_name: "Five Knots - Sailing Billabong"`)
	})

	t.Run("marketing refused", func(t *testing.T) {
		p := NewPage("/tours", nil, models.ModeNetwork)
		rec := consent.NewRecord(false, now)
		p.Consent = &rec
		doc, _ := hydrate(t, st, "tours.html", p)

		require.Zero(t, doc.Find("#cookie-consent-banner").Length())
		require.Zero(t, doc.Find("#billabong-gtag, #billabong-pixel").Length())
	})

	t.Run("fallback ids", func(t *testing.T) {
		cp := *st
		cp.Config = models.SiteConfig{}
		p := NewPage("/tours", nil, models.ModeNetwork)
		rec := consent.NewRecord(true, now)
		p.Consent = &rec
		doc, _ := hydrate(t, &cp, "tours.html", p)
		require.Contains(t, doc.Find("#billabong-gtag").Text(), FallbackGtagID)
		require.Contains(t, doc.Find("#billabong-pixel").Text(), FallbackPixelID)
	})

	t.Run("static pages carry neither", func(t *testing.T) {
		p := NewPage("/tours.html", nil, models.ModeLocalFile)
		p.Static = true
		doc, _ := hydrate(t, st, "tours.html", p)
		require.Zero(t, doc.Find("#cookie-consent-banner, #billabong-gtag, #billabong-pixel").Length())
	})
}

func TestContactFormAndLiveReload(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	p := NewPage("/contact", nil, models.ModeNetwork)
	p.LiveReload = true
	doc, _ := hydrate(t, st, "contact.html", p)

	require.Equal(t, ContactPath, attrs(doc.Find("#contact-form"), "action")[0])
	require.Equal(t, 1, doc.Find("#billabong-live-reload").Length())
	require.Equal(t, EventsPath, attrs(doc.Find("#billabong-live-reload"), "data-events")[0])
	require.Equal(t, st.Fingerprint, attrs(doc.Find("#billabong-live-reload"), "data-fingerprint")[0])

	doc, _ = hydrate(t, st, "contact.html", NewPage("/contact.html", nil, models.ModeLocalFile))
	_, ok := doc.Find("#contact-form").Attr("action")
	require.False(t, ok)
	require.Zero(t, doc.Find("#billabong-live-reload").Length())
}

func TestLinkableHeaders(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "tours.html", NewPage("/tours", nil, models.ModeNetwork))
	h := doc.Find("h2#day-trips")
	require.Equal(t, LinkableTitle, attrs(h, "title")[0])
	require.True(t, h.HasClass("linkable-header"))
}

func TestRender(t *testing.T) {
	t.Parallel()

	st := loadStore(t)
	doc, _ := hydrate(t, st, "tours.html", NewPage("/tours", nil, models.ModeNetwork))
	out, err := Render(doc)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(strings.ToLower(string(out)), "<!doctype html>"))
	require.Contains(t, string(out), `id="nav-tours"`)
}
