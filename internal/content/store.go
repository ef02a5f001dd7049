// Package content loads the shared site documents and partials into an
// immutable Store snapshot.
package content

import (
	"sync/atomic"
	"time"

	"github.com/starford/billabong/internal/models"
)

// Store is one fully loaded snapshot of the shared site content. A Store is
// built by Load and never mutated afterwards; hydrators only read from it.
type Store struct {
	Config     models.SiteConfig
	Contact    models.ContactInfo
	Theme      models.Theme
	Navigation models.NavigationTree
	Blog       models.BlogIndex

	Header string
	Footer string

	Fingerprint string
	LoadedAt    time.Time
}

// MainNav returns the navigation items of a locale, or nil.
func (s *Store) MainNav(locale models.Locale) []models.NavItem {
	nav, ok := s.Navigation[locale]
	if !ok {
		return nil
	}
	return nav.MainNav
}

// Holder publishes the current snapshot. Readers always see a complete
// Store; a reload swaps the pointer only after the new snapshot loaded.
type Holder struct {
	cur atomic.Pointer[Store]
}

// NewHolder returns a holder seeded with s (which may be nil).
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	if s != nil {
		h.cur.Store(s)
	}
	return h
}

// Current returns the published snapshot, or nil before the first load.
func (h *Holder) Current() *Store { return h.cur.Load() }

// Set publishes s.
func (h *Holder) Set(s *Store) { h.cur.Store(s) }

// Ready reports whether a snapshot has been published.
func (h *Holder) Ready() bool { return h.cur.Load() != nil }
