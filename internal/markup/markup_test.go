package markup

import (
	"strings"
	"testing"
)

func TestRender_MarkdownWithHeadingIDs(t *testing.T) {
	r := New()
	out, err := r.Render("## Bowline knot\n\nThe *king* of knots.\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `<h2 id="bowline-knot">Bowline knot</h2>`) {
		t.Errorf("heading id missing: %q", s)
	}
	if !strings.Contains(s, "<em>king</em>") {
		t.Errorf("emphasis missing: %q", s)
	}
}

func TestRender_StripsScripts(t *testing.T) {
	r := New()
	out, err := r.Render("<p onclick=\"x()\">Hi</p>\n\n<script>alert(1)</script>\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if strings.Contains(s, "<script") || strings.Contains(s, "onclick") {
		t.Errorf("unsafe markup survived: %q", s)
	}
	if !strings.Contains(s, "Hi") {
		t.Errorf("text lost: %q", s)
	}
}

func TestRender_LegacyHTML(t *testing.T) {
	r := New()
	out, err := r.Render("<h3 id=\"expect\">What to Expect</h3>\n<ul>\n<li>Crew</li>\n</ul>\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), `id="expect"`) || !strings.Contains(string(out), "<li>Crew</li>") {
		t.Errorf("legacy html mangled: %q", out)
	}
}

func TestRender_Empty(t *testing.T) {
	out, err := New().Render("  \n")
	if err != nil || out != "" {
		t.Errorf("Render(blank) = %q, %v", out, err)
	}
}

func TestSanitize(t *testing.T) {
	got := New().Sanitize(`<a href="javascript:alert(1)">x</a><b>ok</b>`)
	if strings.Contains(string(got), "javascript:") {
		t.Errorf("javascript href kept: %q", got)
	}
}
