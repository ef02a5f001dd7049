package urls

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starford/billabong/internal/models"
)

func TestResolve_ExternalPassThrough(t *testing.T) {
	t.Parallel()

	external := []string{
		"https://example.com/tours",
		"http://example.com",
		"//cdn.example.com/x.js",
		"mailto:contact@example.com",
		"tel:+3612345678",
		"#features",
	}
	for _, mode := range []models.RuntimeMode{models.ModeNetwork, models.ModeLocalFile} {
		for _, locale := range models.Locales {
			for _, u := range external {
				require.Equal(t, u, Resolve(u, mode, locale), "mode=%s locale=%s", mode, locale)
			}
		}
	}
}

func TestResolve_LocalFile(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/tours":             "tours.html",
		"/":                  "index.html",
		"":                   "",
		"/hu/contact":        "hu/contact.html",
		"/hu/":               "hu/index.html",
		"/hu":                "hu/index.html",
		"/blog/":             "blog/index.html",
		"/images/logo.png":   "images/logo.png",
		"/blog-article?id=7": "blog-article.html?id=7",
		"/tours?x=1#prices":  "tours.html?x=1#prices",
		"about.html#team":    "about.html#team",
	}
	for in, want := range cases {
		require.Equal(t, want, Resolve(in, models.ModeLocalFile, models.LocaleEN), "input %q", in)
	}
}

func TestResolve_LocalFileHungarian(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hu/tours.html", Resolve("/tours", models.ModeLocalFile, models.LocaleHU))
	require.Equal(t, "hu/contact.html", Resolve("/hu/contact", models.ModeLocalFile, models.LocaleHU))
	require.Equal(t, "hu/index.html", Resolve("/", models.ModeLocalFile, models.LocaleHU))

	r := Resolver{Mode: models.ModeLocalFile, Locale: models.LocaleHU, Depth: 1}
	require.Equal(t, "../hu/tours.html", r.Resolve("/tours"))
	require.Equal(t, "https://x.test", r.Resolve("https://x.test"))
}

func TestResolve_Network(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/tours", Resolve("/tours", models.ModeNetwork, models.LocaleEN))
	require.Equal(t, "/hu/tours", Resolve("/tours", models.ModeNetwork, models.LocaleHU))
	require.Equal(t, "/hu/tours", Resolve("/hu/tours", models.ModeNetwork, models.LocaleHU))
	require.Equal(t, "/hu/", Resolve("/", models.ModeNetwork, models.LocaleHU))
	require.Equal(t, "/hungary", Resolve("/hungary", models.ModeNetwork, models.LocaleEN))
	require.Equal(t, "/hu/hungary", Resolve("/hungary", models.ModeNetwork, models.LocaleHU))
	require.Equal(t, "blog.html", Resolve("blog.html", models.ModeNetwork, models.LocaleHU))

	// Depth only applies to files on disk.
	r := Resolver{Mode: models.ModeNetwork, Locale: models.LocaleEN, Depth: 2}
	require.Equal(t, "/tours", r.Resolve("/tours"))
}

func TestSwitchLocale_Network(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/tours", SwitchLocale("/hu/tours", models.ModeNetwork, models.LocaleEN))
	require.Equal(t, "/hu/", SwitchLocale("/", models.ModeNetwork, models.LocaleHU))
	require.Equal(t, "/hu/contact", SwitchLocale("/contact", models.ModeNetwork, models.LocaleHU))
	require.Equal(t, "/", SwitchLocale("/hu/", models.ModeNetwork, models.LocaleEN))
	require.Equal(t, "/", SwitchLocale("/hu", models.ModeNetwork, models.LocaleEN))
	require.Equal(t, "/", SwitchLocale("", models.ModeNetwork, models.LocaleEN))
	require.Equal(t, "/hu/", SwitchLocale("", models.ModeNetwork, models.LocaleHU))
}

func TestSwitchLocale_LocalFile(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hu/tours.html", SwitchLocale("/site/tours.html", models.ModeLocalFile, models.LocaleHU))
	require.Equal(t, "tours.html", SwitchLocale("/site/hu/tours.html", models.ModeLocalFile, models.LocaleEN))
	require.Equal(t, "hu/index.html", SwitchLocale("/site/", models.ModeLocalFile, models.LocaleHU))
	require.Equal(t, "index.html", SwitchLocale("/site/index.html", models.ModeLocalFile, models.LocaleEN))

	r := Resolver{Mode: models.ModeLocalFile, Depth: 1}
	require.Equal(t, "../tours.html", r.LocaleLink("/site/hu/tours.html", models.LocaleEN))
}

func TestPageSlug(t *testing.T) {
	t.Parallel()

	network := map[string]string{
		"/":             "index",
		"":              "index",
		"/hu/":          "index",
		"/hu":           "index",
		"/tours":        "tours",
		"/hu/tours":     "tours",
		"/blog/post-1":  "blog",
		"/contact.html": "contact",
		"/hungary":      "hungary",
	}
	for in, want := range network {
		require.Equal(t, want, PageSlug(in, models.ModeNetwork), "network %q", in)
	}

	local := map[string]string{
		"/home/u/site/index.html":    "index",
		"/home/u/site/":              "index",
		"/home/u/site/hu/tours.html": "tours",
		"/home/u/site/Blog.HTML":     "Blog",
	}
	for in, want := range local {
		require.Equal(t, want, PageSlug(in, models.ModeLocalFile), "local %q", in)
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	require.Equal(t, models.LocaleHU, DetectLocale("/hu/tours"))
	require.Equal(t, models.LocaleHU, DetectLocale("/hu"))
	require.Equal(t, models.LocaleEN, DetectLocale("/hungary"))
	require.Equal(t, models.LocaleEN, DetectLocale("/"))

	require.Equal(t, models.ModeLocalFile, DetectMode("file:"))
	require.Equal(t, models.ModeLocalFile, DetectMode("FILE"))
	require.Equal(t, models.ModeNetwork, DetectMode("https"))
}
