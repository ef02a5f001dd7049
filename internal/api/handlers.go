package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-chi/chi/v5"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/blog"
	"github.com/starford/billabong/internal/consent"
	"github.com/starford/billabong/internal/mail"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/siteservice"
)

const (
	maxBodyBytes      = 64 << 10
	defaultSearchSize = 10
	maxSearchSize     = 50
	submissionsLimit  = 100
)

// Handler holds API and page route handlers.
type Handler struct {
	svc        *siteservice.Service
	mail       *mail.Dispatcher
	jar        consent.Jar
	liveReload bool
	autoLocale bool
	logger     *slog.Logger
	now        func() time.Time
}

// NewHandler creates a new Handler.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	jar := opts.Consent
	if jar.Name == "" {
		jar = consent.NewJar(consent.DefaultCookieName)
	}
	return &Handler{
		svc:        opts.Service,
		mail:       opts.Mail,
		jar:        jar,
		liveReload: opts.LiveReload,
		autoLocale: opts.AutoLocale,
		logger:     logger,
		now:        time.Now,
	}
}

// requestLocale reads ?lang=, defaulting to English.
func requestLocale(r *http.Request) (models.Locale, error) {
	raw := r.URL.Query().Get("lang")
	if raw == "" {
		return models.LocaleEN, nil
	}
	l, ok := models.ParseLocale(raw)
	if !ok {
		return "", errors.New("unsupported lang: " + raw)
	}
	return l, nil
}

// ListArticles handles GET /api/articles.
//
//	@Summary		List published articles, newest first
//	@Tags			articles
//	@Produce		json
//	@Param			mode	query		string	false	"Listing mode"	Enums(full, compact)
//	@Param			lang	query		string	false	"Locale for dates and links"	Enums(en, hu)
//	@Success		200		{object}	ArticleListResponse
//	@Failure		400		{object}	errResponse
//	@Failure		503		{object}	errResponse
//	@Router			/articles [get]
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	locale, err := requestLocale(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	mode, err := blog.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	items, err := h.svc.ListArticles(r.Context(), mode, locale)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ArticleListResponse{Articles: items, Total: len(items)})
}

// GetArticle handles GET /api/articles/{id}.
//
//	@Summary		Get a published article
//	@Tags			articles
//	@Produce		json
//	@Param			id		path		string	true	"Article id"
//	@Param			lang	query		string	false	"Locale"	Enums(en, hu)
//	@Success		200		{object}	ArticleDetail
//	@Failure		404		{object}	errResponse
//	@Router			/articles/{id} [get]
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	locale, err := requestLocale(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	a, err := h.svc.GetArticle(r.Context(), chi.URLParam(r, "id"), locale)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Search handles GET /api/search.
//
//	@Summary		Full-text search over published articles
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("missing q parameter"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultSearchSize
	}
	limit = min(limit, maxSearchSize)

	results, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// Navigation handles GET /api/navigation.
//
//	@Summary		Main navigation of a locale
//	@Tags			navigation
//	@Produce		json
//	@Param			lang	query		string	false	"Locale"	Enums(en, hu)
//	@Success		200		{object}	NavigationResponse
//	@Router			/navigation [get]
func (h *Handler) Navigation(w http.ResponseWriter, r *http.Request) {
	locale, err := requestLocale(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	items, err := h.svc.Navigation(r.Context(), locale)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, NavigationResponse{Locale: locale, Items: items})
}

// Contact handles POST /api/contact. The body is JSON or a regular form post.
//
//	@Summary		Send a contact form submission
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ContactRequest	true	"Submission"
//	@Success		200		{object}	ContactResponse
//	@Failure		400		{object}	ContactResponse
//	@Failure		502		{object}	ContactResponse
//	@Failure		503		{object}	ContactResponse
//	@Router			/contact [post]
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var f mail.Form
	if isJSON(r) {
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&f); err != nil {
			writeJSON(w, http.StatusBadRequest, ContactResponse{Status: mail.StatusFor(err)})
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, ContactResponse{Status: mail.StatusFor(err)})
			return
		}
		f = mail.Form{
			FromName:  r.PostForm.Get("from_name"),
			FromEmail: r.PostForm.Get("from_email"),
			Subject:   r.PostForm.Get("subject"),
			Message:   r.PostForm.Get("message"),
		}
	}

	st, err := h.svc.Store()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ContactResponse{Status: mail.StatusFor(err)})
		return
	}

	id, err := h.mail.Send(r.Context(), st.Config.EmailJS(), f)
	resp := ContactResponse{Status: mail.StatusFor(err), ID: id}
	if err != nil {
		var verr validation.Errors
		if errors.As(err, &verr) {
			resp.Fields = verr
		}
		writeJSON(w, statusFor(err), resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Consent handles POST /api/consent. Form posts from the banner are
// redirected back to the page named by "from"; JSON callers get the record.
//
//	@Summary		Store the visitor's cookie consent
//	@Tags			consent
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ConsentRequest	true	"Decision"
//	@Success		200		{object}	ConsentResponse
//	@Success		303
//	@Router			/consent [post]
func (h *Handler) Consent(w http.ResponseWriter, r *http.Request) {
	var (
		marketing bool
		from      string
		form      = !isJSON(r)
	)
	if form {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid form"))
			return
		}
		switch r.PostForm.Get("choice") {
		case "accept_all":
			marketing = true
		case "necessary":
		default:
			writeJSON(w, http.StatusBadRequest, errorBody("choice must be accept_all or necessary"))
			return
		}
		from = localPath(r.PostForm.Get("from"))
	} else {
		var req ConsentRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON"))
			return
		}
		marketing = req.AcceptAll || req.Marketing
	}

	rec := consent.NewRecord(marketing, h.now())
	if err := h.jar.Write(w, rec); err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.logger.Debug("consent stored", slog.Bool("marketing", marketing))

	if form {
		http.Redirect(w, r, from, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Submissions handles GET /api/submissions.
//
//	@Summary		Recent contact submission attempts
//	@Tags			contact
//	@Produce		json
//	@Success		200	{object}	SubmissionListResponse
//	@Failure		401	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/submissions [get]
func (h *Handler) Submissions(w http.ResponseWriter, r *http.Request) {
	db := h.svc.DB()
	if db == nil {
		writeError(w, h.logger, apperr.ErrServiceNotReady)
		return
	}
	subs, err := db.ListSubmissions(r.Context(), submissionsLimit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, SubmissionListResponse{Submissions: subs})
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
