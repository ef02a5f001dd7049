package hydrate

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/models"
)

// LinkableTitle is the hint set on headings that carry an anchor id.
const LinkableTitle = "Click to copy link to this section"

// LinkableHeaders marks every heading with an id as linkable.
func LinkableHeaders(doc *goquery.Document) {
	doc.Find("h1[id], h2[id], h3[id], h4[id], h5[id], h6[id]").
		AddClass("linkable-header").
		SetAttr("title", LinkableTitle)
}

// ContactPath is the endpoint that accepts contact form submissions.
const ContactPath = "/api/contact"

// ContactForm points the contact form at the submission endpoint. Pages
// opened from disk have no server, so the form is left untouched there.
func ContactForm(doc *goquery.Document, p Page) {
	if p.Mode != models.ModeNetwork {
		return
	}
	doc.Find("#contact-form").
		SetAttr("action", ContactPath).
		SetAttr("method", "post").
		SetAttr("data-status", "#form-status")
}

// ConsentPath is the endpoint that stores the consent decision.
const ConsentPath = "/api/consent"

type bannerView struct {
	Heading, Text, LearnMore  string
	Accept, Necessary         string
	PrivacyHref, Action, From string
}

var bannerText = map[models.Locale]bannerView{
	models.LocaleEN: {
		Heading:   "Cookie Notice",
		Text:      "This website uses cookies to improve user experience and for marketing data collection.",
		LearnMore: "Learn more",
		Accept:    "Understood",
		Necessary: "Necessary only",
	},
	models.LocaleHU: {
		Heading:   "Süti tájékoztató",
		Text:      "Ez a weboldal sütiket használ a felhasználói élmény javítására és marketing adatgyűjtésre.",
		LearnMore: "További információ",
		Accept:    "Értem",
		Necessary: "Csak a szükségesek",
	},
}

// ConsentBanner appends the consent banner when the visitor has not decided
// yet. An existing banner is kept as is.
func ConsentBanner(doc *goquery.Document, p Page) {
	if p.Consent != nil || doc.Find("#cookie-consent-banner").Length() > 0 {
		return
	}
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return
	}
	v := bannerText[p.Locale]
	v.PrivacyHref = p.Resolver().Resolve("/privacy-policy")
	v.Action = ConsentPath
	v.From = p.Path
	if q := p.Query.Encode(); q != "" {
		v.From += "?" + q
	}
	body.AppendHtml(execute("banner", v))
}

// Fallback tracking identifiers used when the site config names none.
const (
	FallbackGtagID  = "G-XXXXXXXXXX"
	FallbackPixelID = "YOUR_PIXEL_ID_HERE"
)

// Tracking injects the analytics and pixel snippets when the visitor agreed
// to marketing cookies. Each snippet is injected at most once.
func Tracking(doc *goquery.Document, st *content.Store, p Page) {
	if p.Consent == nil || !p.Consent.Consent.Marketing {
		return
	}
	ids := st.Config.Tracking()
	if ids.GtagID == "" {
		ids.GtagID = FallbackGtagID
	}
	if ids.PixelID == "" {
		ids.PixelID = FallbackPixelID
	}

	ev := trackingEvent(p.Slug, doc.Find("title").First().Text())

	if head := doc.Find("head").First(); head.Length() > 0 && doc.Find("#billabong-gtag").Length() == 0 {
		head.AppendHtml(execute("gtag", struct {
			GtagID string
			Event  pageEvent
		}{ids.GtagID, ev}))
	}
	if body := doc.Find("body").First(); body.Length() > 0 && doc.Find("#billabong-pixel").Length() == 0 {
		body.AppendHtml(execute("pixel", struct {
			PixelID string
			Event   pageEvent
		}{ids.PixelID, ev}))
	}
}

// pageEvent is what a page reports besides the page view: its content group,
// the pixel ViewContent details and an optional GA engagement event.
type pageEvent struct {
	Group       string
	ContentType string
	ContentName string
	GAEvent     string
	GAParams    map[string]any
}

var pageEvents = map[string]pageEvent{
	"index": {Group: "home", ContentType: "homepage", ContentName: "Homepage - Sailing Billabong"},
	"about": {Group: "about", ContentType: "about", ContentName: "About & Gallery",
		GAEvent: "view_about", GAParams: map[string]any{"event_category": "engagement", "event_label": "about_page"}},
	"tours": {Group: "tours", ContentType: "tours", ContentName: "Sailing Tours",
		GAEvent: "view_tours", GAParams: map[string]any{"event_category": "engagement", "event_label": "tours_page", "value": 1}},
	"contact": {Group: "contact", ContentType: "contact", ContentName: "Contact & Booking",
		GAEvent: "view_contact", GAParams: map[string]any{"event_category": "engagement", "event_label": "contact_page", "value": 2}},
	"blog": {Group: "blog", ContentType: "blog", ContentName: "Blog",
		GAEvent: "view_blog", GAParams: map[string]any{"event_category": "engagement", "event_label": "blog_page"}},
}

// trackingEvent picks the events for slug. Article pages report a blog
// post view named after the page title.
func trackingEvent(slug, title string) pageEvent {
	if ev, ok := pageEvents[slug]; ok {
		return ev
	}
	if slug == ArticleSlug {
		return pageEvent{Group: "other", ContentType: "blog_post", ContentName: title}
	}
	return pageEvent{Group: "other"}
}

// EventsPath is the server-sent events stream announcing content reloads.
const EventsPath = "/api/events"

// LiveReload appends a script that reloads the page when content changes
// or when the stream reports a snapshot other than fingerprint, the one the
// page was rendered from.
func LiveReload(doc *goquery.Document, fingerprint string) {
	if doc.Find("#billabong-live-reload").Length() > 0 {
		return
	}
	doc.Find("body").First().AppendHtml(execute("livereload", struct {
		Events      string
		Fingerprint string
	}{EventsPath, fingerprint}))
}
