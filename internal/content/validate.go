package content

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/billabong/internal/models"
)

// navIDRe restricts NavItem ids to fragments that are safe inside DOM ids.
var navIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validate checks data-integrity rules the hydrators rely on: every locale
// has navigation, nav ids are safe and unique per locale, and every article
// has an id, a parseable date and a known category.
func (s *Store) Validate() error {
	errs := validation.Errors{}

	for _, locale := range models.Locales {
		nav, ok := s.Navigation[locale]
		if !ok {
			errs[fmt.Sprintf("navigation.%s", locale)] = fmt.Errorf("missing locale")
			continue
		}
		seen := make(map[string]struct{}, len(nav.MainNav))
		for i, item := range nav.MainNav {
			key := fmt.Sprintf("navigation.%s[%d].id", locale, i)
			if err := validation.Validate(item.ID, validation.Required, validation.Match(navIDRe)); err != nil {
				errs[key] = err
				continue
			}
			if _, dup := seen[item.ID]; dup {
				errs[key] = fmt.Errorf("duplicate id %q", item.ID)
			}
			seen[item.ID] = struct{}{}
		}
	}

	ids := make(map[string]struct{}, len(s.Blog.Articles))
	for i, a := range s.Blog.Articles {
		prefix := fmt.Sprintf("blog.articles[%d]", i)
		if err := validation.Validate(a.ID, validation.Required); err != nil {
			errs[prefix+".id"] = err
		} else if _, dup := ids[a.ID]; dup {
			errs[prefix+".id"] = fmt.Errorf("duplicate id %q", a.ID)
		}
		ids[a.ID] = struct{}{}

		if _, err := a.Created(); err != nil {
			errs[prefix+".creation_date"] = err
		}
		if _, ok := s.Blog.Categories[a.Category]; !ok {
			errs[prefix+".category"] = fmt.Errorf("unknown category %q", a.Category)
		}
	}

	return errs.Filter()
}
