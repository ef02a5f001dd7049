package hydrate

import (
	"sort"

	"github.com/PuerkitoBio/goquery"

	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/models"
)

// Footer fills contact details and rebuilds the social links. Platforms are
// rendered in key order.
func Footer(doc *goquery.Document, st *content.Store) {
	c := st.Contact.Contact

	doc.Find(`[data-contact="email"]`).Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "a" {
			s.SetAttr("href", "mailto:"+c.Email)
		}
		s.SetText("Email: " + c.Email)
	})
	doc.Find(`[data-contact="phone"]`).Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "a" {
			s.SetAttr("href", "tel:"+c.Phone)
		}
		s.SetText("Phone: " + c.Phone)
	})

	container := doc.Find(".social-links").First()
	if container.Length() == 0 || st.Contact.Social == nil {
		return
	}
	keys := make([]string, 0, len(st.Contact.Social))
	for k := range st.Contact.Social {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	links := make([]models.SocialLink, len(keys))
	for i, k := range keys {
		links[i] = st.Contact.Social[k]
	}
	container.SetHtml(execute("social", links))
}
