// Package models defines the domain types for the site content.
package models

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale is one of the two supported UI languages.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocaleHU Locale = "hu"
)

// Locales lists the supported locales, default first.
var Locales = []Locale{LocaleEN, LocaleHU}

// ParseLocale returns the locale for s, reporting whether it is supported.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleEN:
		return LocaleEN, true
	case LocaleHU:
		return LocaleHU, true
	}
	return LocaleEN, false
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == LocaleHU {
		return language.Hungarian
	}
	return language.English
}

var localeMatcher = language.NewMatcher([]language.Tag{language.English, language.Hungarian})

// NegotiateLocale picks the supported locale best matching an
// Accept-Language header. Anything unparseable yields English.
func NegotiateLocale(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LocaleEN
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if idx == 1 && conf != language.No {
		return LocaleHU
	}
	return LocaleEN
}

// RuntimeMode says whether pages are served over a network origin or opened
// straight from disk.
type RuntimeMode string

// Runtime modes.
const (
	ModeNetwork   RuntimeMode = "network"
	ModeLocalFile RuntimeMode = "local-file"
)

// ParseMode parses a runtime mode name.
func ParseMode(s string) (RuntimeMode, error) {
	switch RuntimeMode(s) {
	case ModeNetwork, ModeLocalFile:
		return RuntimeMode(s), nil
	}
	return "", fmt.Errorf("unknown runtime mode %q", s)
}

// SiteConfig is the opaque site configuration document.
type SiteConfig map[string]any

// String returns config[section][key] when it is a string.
func (c SiteConfig) String(section, key string) string {
	sec, ok := c[section].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := sec[key].(string)
	return s
}

// EmailJSConfig holds the mail service identifiers from the site config.
type EmailJSConfig struct {
	PublicKey   string
	ServiceID   string
	TemplateID  string
	WebsiteName string
}

// EmailJS extracts the "emailjs" section.
func (c SiteConfig) EmailJS() EmailJSConfig {
	return EmailJSConfig{
		PublicKey:   c.String("emailjs", "public_key"),
		ServiceID:   c.String("emailjs", "service_id"),
		TemplateID:  c.String("emailjs", "template_id"),
		WebsiteName: c.String("emailjs", "website_name"),
	}
}

// TrackingConfig holds analytics and pixel identifiers.
type TrackingConfig struct {
	GtagID  string
	PixelID string
}

// Tracking extracts the "tracking" section.
func (c SiteConfig) Tracking() TrackingConfig {
	return TrackingConfig{
		GtagID:  c.String("tracking", "gtag_config"),
		PixelID: c.String("tracking", "facebook_pixel"),
	}
}

// ContactInfo is the contact.json document.
type ContactInfo struct {
	Contact ContactDetails        `json:"contact"`
	Social  map[string]SocialLink `json:"social"`
}

// ContactDetails holds the public email and phone.
type ContactDetails struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SocialLink is one social platform entry.
type SocialLink struct {
	URL    string `json:"url"`
	Icon   string `json:"icon"`
	Handle string `json:"handle"`
}

// Theme is the opaque theme document.
type Theme map[string]any

// NavigationTree maps each locale to its navigation.
type NavigationTree map[Locale]LocaleNavigation

// LocaleNavigation is the navigation of one locale.
type LocaleNavigation struct {
	MainNav          []NavItem      `json:"main_nav"`
	LanguageSwitcher map[string]any `json:"language_switcher,omitempty"`
}

// NavItem is one entry of the primary navigation.
type NavItem struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	URL         string         `json:"url"`
	ActivePages []string       `json:"active_pages"`
	Dropdown    []DropdownItem `json:"dropdown,omitempty"`
}

// DropdownItem is a nested link under a NavItem.
type DropdownItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// HasDropdown reports whether the item renders as a dropdown.
func (n NavItem) HasDropdown() bool { return len(n.Dropdown) > 0 }

// ActiveOn reports whether slug is one of the item's active pages.
func (n NavItem) ActiveOn(slug string) bool {
	for _, p := range n.ActivePages {
		if p == slug {
			return true
		}
	}
	return false
}

// BlogIndex is the blog.json document.
type BlogIndex struct {
	Categories map[string]Category `json:"categories"`
	Articles   []Article           `json:"articles"`
}

// Category is a blog category.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Article is one blog entry.
type Article struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Content          string   `json:"content,omitempty"`
	FeaturedImage    string   `json:"featured_image"`
	CreationDate     string   `json:"creation_date"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	Published        bool     `json:"published"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// Created parses CreationDate as an ISO date or datetime.
func (a Article) Created() (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, a.CreationDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("article %s: invalid creation_date %q", a.ID, a.CreationDate)
}

// Find returns the article with exactly the given id.
func (b *BlogIndex) Find(id string) (Article, bool) {
	for _, a := range b.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}
