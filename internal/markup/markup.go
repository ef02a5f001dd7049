// Package markup renders article bodies to safe HTML.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var headingIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Renderer converts Markdown (with embedded HTML) into sanitised HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New returns a Renderer with GFM, automatic heading ids and a UGC policy
// that keeps heading anchors.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").Matching(headingIDRe).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("loading").Matching(regexp.MustCompile(`^(lazy|eager)$`)).OnElements("img")

	return &Renderer{md: md, policy: policy}
}

// Render converts src. Raw HTML is allowed through goldmark and then
// sanitised, so legacy HTML article bodies keep working.
func (r *Renderer) Render(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markup: convert: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Sanitize cleans an HTML fragment with the same policy.
func (r *Renderer) Sanitize(fragment string) template.HTML {
	return template.HTML(r.policy.Sanitize(fragment))
}
