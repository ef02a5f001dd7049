// Package api implements the billabong HTTP surface using chi: hydrated
// pages, static assets and the JSON API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/starford/billabong/internal/consent"
	"github.com/starford/billabong/internal/hydrate"
	"github.com/starford/billabong/internal/mail"
	"github.com/starford/billabong/internal/siteservice"
)

// AssetDirs are the site root directories served verbatim.
var AssetDirs = hydrate.AssetDirs

// Options wires the router's collaborators.
type Options struct {
	Service *siteservice.Service
	Mail    *mail.Dispatcher
	Consent consent.Jar
	// Events, if non-nil, is mounted at GET /api/events.
	Events http.Handler
	// CORSOrigins may call /api cross-origin; empty disables CORS.
	CORSOrigins []string

	// AuthEnabled protects the submission log with a Bearer token.
	AuthEnabled bool
	Token       string

	LiveReload bool
	AutoLocale bool
	Logger     *slog.Logger
}

// NewRouter creates a chi router with all page, asset and API routes mounted.
func NewRouter(opts Options) chi.Router {
	h := NewHandler(opts)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		if len(opts.CORSOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: opts.CORSOrigins,
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
				MaxAge:         300,
			}))
		}
		r.Get("/articles", h.ListArticles)
		r.Get("/articles/{id}", h.GetArticle)
		r.Get("/search", h.Search)
		r.Get("/navigation", h.Navigation)
		r.Post("/contact", h.Contact)
		r.Post("/consent", h.Consent)

		if opts.Events != nil {
			r.Get("/events", opts.Events.ServeHTTP)
		}

		r.With(AuthMiddleware(opts.AuthEnabled, opts.Token)).Get("/submissions", h.Submissions)
	})

	r.Get("/switch-locale", h.SwitchLocale)

	// Hungarian pages reference the same assets with relative paths.
	assets := http.FileServer(opts.Service.Source().HTTP())
	for _, dir := range AssetDirs {
		r.Handle("/"+dir+"/*", assets)
		r.Handle("/hu/"+dir+"/*", http.StripPrefix("/hu", assets))
	}

	r.Get("/*", h.Page)
	return r
}
