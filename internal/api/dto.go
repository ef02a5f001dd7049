package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/billabong/internal/consent"
	"github.com/starford/billabong/internal/index"
	"github.com/starford/billabong/internal/mail"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/siteservice"
)

// ArticleSummary is a listing item (aliased from the domain layer).
type ArticleSummary = siteservice.ArticleSummary

// ArticleDetail is the full article response (aliased from the domain layer).
type ArticleDetail = siteservice.ArticleDetail

// ArticleListResponse wraps article listings.
type ArticleListResponse struct {
	Articles []ArticleSummary `json:"articles" validate:"required"`
	Total    int              `json:"total" example:"3" validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []index.SearchResult `json:"results" validate:"required"`
}

// NavigationResponse is the main navigation of one locale.
type NavigationResponse struct {
	Locale models.Locale    `json:"locale" example:"en"`
	Items  []models.NavItem `json:"items" validate:"required"`
}

// ContactRequest is the JSON body of a contact submission.
type ContactRequest = mail.Form

// ContactResponse is the status banner payload plus the submission id.
type ContactResponse struct {
	mail.Status
	ID     string            `json:"id,omitempty" example:"7f6c1c0e-5d7b-4c55-9b55-3c4f0c0b3d9e"`
	Fields validation.Errors `json:"fields,omitempty"`
}

// ConsentRequest is the JSON body of a consent decision. AcceptAll wins
// over Marketing.
type ConsentRequest struct {
	AcceptAll bool `json:"accept_all"`
	Marketing bool `json:"marketing"`
}

// ConsentResponse echoes the stored record.
type ConsentResponse = consent.Record

// SubmissionListResponse wraps the submission log.
type SubmissionListResponse struct {
	Submissions []index.Submission `json:"submissions" validate:"required"`
}
