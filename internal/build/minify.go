package build

import (
	"fmt"
	"path"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
)

// minifiedTypes maps output extensions to the media types minified.
// Content JSON stays readable.
var minifiedTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".svg":  "image/svg+xml",
}

type minifier struct {
	m *minify.M
}

func newMinifier() *minifier {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	return &minifier{m: m}
}

// apply minifies data when p has a minified type and returns it unchanged
// otherwise.
func (mf *minifier) apply(p string, data []byte) ([]byte, error) {
	mt, ok := minifiedTypes[path.Ext(p)]
	if !ok {
		return data, nil
	}
	out, err := mf.m.Bytes(mt, data)
	if err != nil {
		return nil, fmt.Errorf("build: minify %s: %w", p, err)
	}
	return out, nil
}
