package hydrate

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/models"
)

type navLink struct {
	ID       string
	Label    string
	Href     string
	Active   bool
	Dropdown []navLink
}

// ActiveIndex returns the index of the first item whose active pages contain
// slug, or -1 when none does.
func ActiveIndex(items []models.NavItem, slug string) int {
	for i, it := range items {
		if it.ActiveOn(slug) {
			return i
		}
	}
	return -1
}

// Navigation builds the desktop and mobile menus, the logo link and the
// language buttons. The menus are only built when both containers exist.
func Navigation(doc *goquery.Document, st *content.Store, p Page) {
	r := p.Resolver()

	doc.Find(".logo-container").SetAttr("href", r.Resolve("/"))
	languageButtons(doc, p)

	desktop := doc.Find(".nav").First()
	mobile := doc.Find(".mobile-nav").First()
	if desktop.Length() == 0 || mobile.Length() == 0 {
		return
	}

	items := st.MainNav(p.Locale)
	active := ActiveIndex(items, p.Slug)

	links := make([]navLink, len(items))
	for i, it := range items {
		l := navLink{ID: it.ID, Label: it.Label, Href: r.Resolve(it.URL), Active: i == active}
		for _, d := range it.Dropdown {
			l.Dropdown = append(l.Dropdown, navLink{Label: d.Label, Href: r.Resolve(d.URL)})
		}
		links[i] = l
	}

	desktop.SetHtml(execute("desktop", links))
	mobile.SetHtml(execute("mobile", links))
}

func languageButtons(doc *goquery.Document, p Page) {
	r := p.Resolver()
	for _, l := range models.Locales {
		btn := doc.Find("#lang-" + string(l))
		if btn.Length() == 0 {
			continue
		}
		btn.SetAttr("href", r.LocaleLink(p.Path, l))
		if l == p.Locale {
			btn.AddClass("active")
		} else {
			btn.RemoveClass("active")
		}
	}
}
