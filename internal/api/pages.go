package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/checksum"
	"github.com/starford/billabong/internal/hydrate"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/urls"
)

// Page serves a hydrated page for a clean path.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" && h.autoLocale && r.URL.RawQuery == "" {
		if models.NegotiateLocale(r.Header.Get("Accept-Language")) == models.LocaleHU {
			http.Redirect(w, r, "/hu/", http.StatusFound)
			return
		}
	}

	file, err := h.svc.PageFile(r.URL.Path)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page := hydrate.NewPage(r.URL.Path, r.URL.Query(), models.ModeNetwork)
	page.Consent = h.jar.Read(r)
	page.LiveReload = h.liveReload

	out, res, err := h.svc.RenderPage(r.Context(), file, page)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, apperr.ErrContentUnavailable):
		http.Error(w, "content unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("page render failed",
			slog.String("path", r.URL.Path),
			slog.String("file", file),
			slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if res.Redirect != "" {
		http.Redirect(w, r, res.Redirect, http.StatusFound)
		return
	}

	etag := `"` + checksum.Sum(out)[:16] + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// SwitchLocale handles GET /switch-locale?lang=hu&from=/tours with a full
// navigation to the counterpart page.
func (h *Handler) SwitchLocale(w http.ResponseWriter, r *http.Request) {
	target, ok := models.ParseLocale(r.URL.Query().Get("lang"))
	if !ok {
		http.Error(w, "unsupported lang", http.StatusBadRequest)
		return
	}
	from := localPath(r.URL.Query().Get("from"))
	if from == "/" {
		if ref := r.Referer(); ref != "" {
			if u, err := r.URL.Parse(ref); err == nil && u.Host == r.Host {
				from = localPath(u.Path)
			}
		}
	}
	http.Redirect(w, r, urls.SwitchLocale(from, models.ModeNetwork, target), http.StatusFound)
}
