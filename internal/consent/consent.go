// Package consent stores the visitor's cookie consent decision.
package consent

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultCookieName is the cookie that carries the consent record.
const DefaultCookieName = "billabong_consent"

// Choice is the set of cookie categories the visitor agreed to.
// Necessary cookies cannot be refused.
type Choice struct {
	Necessary bool `json:"necessary"`
	Marketing bool `json:"marketing"`
}

// Record is the persisted consent decision.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Consent   Choice    `json:"consent"`
}

// NewRecord returns a record for the given marketing choice taken at now.
func NewRecord(marketing bool, now time.Time) Record {
	return Record{
		Timestamp: now.UTC(),
		Consent:   Choice{Necessary: true, Marketing: marketing},
	}
}

// Encode serialises r into a cookie-safe value.
func Encode(r Record) (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("consent: encode: %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// Decode parses a value produced by Encode.
func Decode(v string) (Record, error) {
	raw, err := url.QueryUnescape(v)
	if err != nil {
		return Record{}, fmt.Errorf("consent: unescape: %w", err)
	}
	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Record{}, fmt.Errorf("consent: decode: %w", err)
	}
	return r, nil
}

// Jar reads and writes the consent cookie.
type Jar struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// NewJar returns a jar for the named cookie kept for one year.
func NewJar(name string) Jar {
	if name == "" {
		name = DefaultCookieName
	}
	return Jar{Name: name, MaxAge: 365 * 24 * time.Hour}
}

// Read returns the stored decision. A missing or unreadable cookie means no
// decision has been made yet.
func (j Jar) Read(r *http.Request) *Record {
	c, err := r.Cookie(j.Name)
	if err != nil {
		return nil
	}
	rec, err := Decode(c.Value)
	if err != nil {
		return nil
	}
	return &rec
}

// Write stores rec on the response.
func (j Jar) Write(w http.ResponseWriter, rec Record) error {
	v, err := Encode(rec)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     j.Name,
		Value:    v,
		Path:     "/",
		MaxAge:   int(j.MaxAge / time.Second),
		HttpOnly: false,
		Secure:   j.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
