// Package mail dispatches contact form submissions to the mail service.
package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/index"
	"github.com/starford/billabong/internal/models"
)

// Defaults applied to every submission.
const (
	DefaultRecipient = "contact@sailingbillabong.com"
	DefaultSubject   = "Contact Form Submission"
	DefaultWebsite   = "Sailing Billabong"
	DefaultReadyWait = 5 * time.Second
)

// Status banner texts and timing.
const (
	MessageSent       = "Message sent successfully! We'll get back to you soon."
	MessageFailed     = "Failed to send message. Please try again or contact us directly."
	StatusHideAfterMS = 5000
)

const (
	maxMessageLen = 5000
	maxFieldLen   = 200
)

// Form is a contact form submission.
type Form struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Validate checks the required fields.
func (f Form) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FromName, validation.Required, validation.Length(1, maxFieldLen)),
		validation.Field(&f.FromEmail, validation.Required, is.EmailFormat),
		validation.Field(&f.Subject, validation.Length(0, maxFieldLen)),
		validation.Field(&f.Message, validation.Required, validation.Length(1, maxMessageLen)),
	)
}

// BuildParams assembles the template parameters, including the aliased keys
// older templates read.
func BuildParams(f Form, website, recipient string) Params {
	subject := strings.TrimSpace(f.Subject)
	if subject == "" {
		subject = DefaultSubject
	}
	if website == "" {
		website = DefaultWebsite
	}
	return Params{
		"from_name":    f.FromName,
		"from_email":   f.FromEmail,
		"name":         f.FromName,
		"email":        f.FromEmail,
		"subject":      subject,
		"message":      f.Message,
		"website":      website,
		"to_email":     recipient,
		"contactEmail": recipient,
	}
}

// Status is the banner payload shown after a submission.
type Status struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	HideAfterMS   int    `json:"hide_after_ms"`
	SubmitEnabled bool   `json:"submit_enabled"`
}

// StatusFor maps a dispatch result to the banner payload. The submit
// control is re-enabled on every outcome.
func StatusFor(err error) Status {
	s := Status{Status: "success", Message: MessageSent, HideAfterMS: StatusHideAfterMS, SubmitEnabled: true}
	if err != nil {
		s.Status = "error"
		s.Message = MessageFailed
	}
	return s
}

// Dispatcher sends validated submissions once the transport is ready.
type Dispatcher struct {
	ready     *Readiness
	wait      time.Duration
	recipient string
	log       index.SubmissionLog
	logger    *slog.Logger
	now       func() time.Time
}

// Options configures a Dispatcher.
type Options struct {
	ReadyTimeout time.Duration
	Recipient    string
	Log          index.SubmissionLog
	Logger       *slog.Logger
}

// NewDispatcher creates a Dispatcher waiting on ready.
func NewDispatcher(ready *Readiness, opts Options) *Dispatcher {
	if opts.ReadyTimeout <= 0 {
		opts.ReadyTimeout = DefaultReadyWait
	}
	if opts.Recipient == "" {
		opts.Recipient = DefaultRecipient
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Dispatcher{
		ready:     ready,
		wait:      opts.ReadyTimeout,
		recipient: opts.Recipient,
		log:       opts.Log,
		logger:    opts.Logger,
		now:       time.Now,
	}
}

// Send validates f, waits for the transport and performs exactly one send
// attempt. Errors wrap apperr.ErrInvalid, apperr.ErrServiceNotReady or
// apperr.ErrSendFailed.
func (d *Dispatcher) Send(ctx context.Context, cfg models.EmailJSConfig, f Form) (string, error) {
	f.FromName = strings.TrimSpace(f.FromName)
	f.FromEmail = strings.TrimSpace(f.FromEmail)
	if err := f.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", apperr.ErrInvalid, err)
	}

	id := uuid.NewString()
	params := BuildParams(f, cfg.WebsiteName, d.recipient)

	sender, err := d.ready.Wait(ctx, d.wait)
	if err != nil {
		d.logger.Warn("mail: service not ready", slog.String("submission", id))
		d.record(ctx, id, f, params["subject"], index.StatusNotReady, err)
		return id, err
	}

	if err := sender.Send(ctx, cfg, params); err != nil {
		d.logger.Error("mail: send failed", slog.String("submission", id), slog.String("error", err.Error()))
		d.record(ctx, id, f, params["subject"], index.StatusFailed, err)
		return id, fmt.Errorf("%w: %w", apperr.ErrSendFailed, err)
	}

	d.logger.Info("mail: sent", slog.String("submission", id))
	d.record(ctx, id, f, params["subject"], index.StatusSent, nil)
	return id, nil
}

func (d *Dispatcher) record(ctx context.Context, id string, f Form, subject, status string, cause error) {
	if d.log == nil {
		return
	}
	s := index.Submission{
		ID:        id,
		CreatedAt: d.now().UTC(),
		FromName:  f.FromName,
		FromEmail: f.FromEmail,
		Subject:   subject,
		Status:    status,
	}
	if cause != nil {
		s.Error = cause.Error()
	}
	// The request context may already be done after a not-ready timeout.
	if err := d.log.RecordSubmission(context.WithoutCancel(ctx), s); err != nil {
		d.logger.Warn("mail: record submission", slog.String("submission", id), slog.String("error", err.Error()))
	}
}

// Init resolves ready with a client once cfg carries the account
// identifiers. It reports whether the transport became ready. The client
// holds no account keys, so later snapshots with other keys need no new
// client.
func Init(ready *Readiness, endpoint, privateKey string, cfg models.EmailJSConfig) bool {
	if cfg.PublicKey == "" || cfg.ServiceID == "" || cfg.TemplateID == "" {
		return false
	}
	ready.Resolve(NewClient(endpoint, privateKey))
	return true
}

// IsValidation reports whether err is a form validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, apperr.ErrInvalid)
}
