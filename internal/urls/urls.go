// Package urls computes link targets for the two runtime modes and locales.
//
// Served pages use clean root-relative paths ("/tours", "/hu/tours"). Pages
// opened from disk have no server to rewrite clean paths, so links become
// relative file names with an explicit extension ("tours.html").
package urls

import (
	"regexp"
	"strings"

	"github.com/starford/billabong/internal/models"
)

var (
	externalRe = regexp.MustCompile(`(?i)^(https?:)?//`)
	extRe      = regexp.MustCompile(`(?i)\.[a-z0-9]+$`)
	htmlExtRe  = regexp.MustCompile(`(?i)\.html$`)
)

const huPrefix = "/hu"

// IsExternal reports whether u must pass through unchanged: absolute and
// protocol-relative URLs, mailto:, tel: and fragment-only links.
func IsExternal(u string) bool {
	return externalRe.MatchString(u) ||
		strings.HasPrefix(u, "mailto:") ||
		strings.HasPrefix(u, "tel:") ||
		strings.HasPrefix(u, "#")
}

// Resolver resolves logical link targets for one page.
type Resolver struct {
	Mode   models.RuntimeMode
	Locale models.Locale
	// Depth is the number of directories between the page and the site root.
	// Only used in local-file mode.
	Depth int
}

// Resolve returns the href for u in the given mode and locale.
func Resolve(u string, mode models.RuntimeMode, locale models.Locale) string {
	return Resolver{Mode: mode, Locale: locale}.Resolve(u)
}

// Resolve returns the href for u.
func (r Resolver) Resolve(u string) string {
	if u == "" || IsExternal(u) {
		return u
	}
	if r.Mode == models.ModeLocalFile {
		return r.up() + r.localFile(u)
	}
	return r.network(u)
}

func (r Resolver) up() string {
	if r.Mode != models.ModeLocalFile || r.Depth <= 0 {
		return ""
	}
	return strings.Repeat("../", r.Depth)
}

func (r Resolver) network(u string) string {
	if r.Locale != models.LocaleHU || !strings.HasPrefix(u, "/") || underHU(u) {
		return u
	}
	return huPrefix + u
}

// underHU reports whether a root-relative path already carries the /hu prefix.
func underHU(u string) bool {
	if !strings.HasPrefix(u, huPrefix) {
		return false
	}
	rest := u[len(huPrefix):]
	return rest == "" || strings.ContainsAny(rest[:1], "/?#")
}

func (r Resolver) localFile(u string) string {
	base, fragment, _ := strings.Cut(u, "#")
	p, query, _ := strings.Cut(base, "?")

	p = strings.TrimPrefix(p, "/")
	if p == "hu" {
		p = "hu/"
	}
	if r.Locale == models.LocaleHU && !strings.HasPrefix(p, "hu/") {
		p = "hu/" + p
	}
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index.html"
	}
	last := p[strings.LastIndex(p, "/")+1:]
	if last != "" && !extRe.MatchString(last) {
		p += ".html"
	}

	if query != "" {
		p += "?" + query
	}
	if fragment != "" {
		p += "#" + fragment
	}
	return p
}

// LocaleLink returns the href that switches the page at currentPath to target.
func (r Resolver) LocaleLink(currentPath string, target models.Locale) string {
	return r.up() + SwitchLocale(currentPath, r.Mode, target)
}

// DetectMode derives the runtime mode from a URL scheme.
func DetectMode(scheme string) models.RuntimeMode {
	if strings.EqualFold(strings.TrimSuffix(scheme, ":"), "file") {
		return models.ModeLocalFile
	}
	return models.ModeNetwork
}

// DetectLocale derives the locale from a page path: any /hu/ segment means
// Hungarian.
func DetectLocale(p string) models.Locale {
	if p == huPrefix || strings.Contains(p, huPrefix+"/") {
		return models.LocaleHU
	}
	return models.LocaleEN
}

// PageSlug derives the logical page name used for active-state matching.
func PageSlug(p string, mode models.RuntimeMode) string {
	p, _, _ = strings.Cut(p, "#")
	p, _, _ = strings.Cut(p, "?")

	if mode == models.ModeLocalFile {
		name := htmlExtRe.ReplaceAllString(p[strings.LastIndex(p, "/")+1:], "")
		if name == "" {
			return "index"
		}
		return name
	}

	if underHU(p) {
		p = p[len(huPrefix):]
	}
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			return htmlExtRe.ReplaceAllString(seg, "")
		}
	}
	return "index"
}

// SwitchLocale returns the navigation target that shows the page at
// currentPath in the target locale. The result is never empty.
func SwitchLocale(currentPath string, mode models.RuntimeMode, target models.Locale) string {
	if mode == models.ModeLocalFile {
		slug := PageSlug(currentPath, mode)
		if target == models.LocaleHU {
			return "hu/" + slug + ".html"
		}
		return slug + ".html"
	}

	tail := currentPath
	if underHU(tail) {
		tail = tail[len(huPrefix):]
	}
	if tail == "" {
		tail = "/"
	}
	if target == models.LocaleHU {
		if tail == "/" {
			return "/hu/"
		}
		return huPrefix + tail
	}
	return tail
}
