package hydrate

import (
	"bytes"
	"html/template"
)

var views = template.Must(template.New("views").Parse(`
{{- define "desktop" -}}
{{range .}}<div class="nav-dropdown{{if and .Active .Dropdown}} active{{end}}"><a href="{{.Href}}" id="nav-{{.ID}}" class="nav-dropdown-toggle{{if and .Active (not .Dropdown)}} active{{end}}">{{.Label}}</a>
{{- if .Dropdown}}<div class="nav-dropdown-menu">{{range .Dropdown}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</div>{{end -}}
</div>{{end}}
{{- end -}}

{{- define "mobile" -}}
{{range .}}<a href="{{.Href}}" id="mobile-nav-{{.ID}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
{{- range .Dropdown}}<a href="{{.Href}}" class="mobile-nav-sub" style="padding-left: 2rem; font-size: 0.9rem">• {{.Label}}</a>{{end}}
{{- end}}
{{- end -}}

{{- define "social" -}}
{{range .}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="social-link" title="{{.Handle}}">{{.Icon}}</a>{{end}}
{{- end -}}

{{- define "tags" -}}
{{range .}}<span class="article-tag">#{{.}}</span>{{end}}
{{- end -}}

{{- define "placeholder" -}}
<p>{{.Lead}} <strong>{{.Title}}</strong>.</p>
{{- end -}}

{{- define "banner" -}}
<div id="cookie-consent-banner" class="cookie-consent-banner show">
<div class="cookie-consent-content">
<div class="cookie-consent-text">
<h3>{{.Heading}}</h3>
<p>{{.Text}} <a href="{{.PrivacyHref}}">{{.LearnMore}}</a></p>
</div>
<form class="cookie-consent-buttons" method="post" action="{{.Action}}">
<input type="hidden" name="from" value="{{.From}}">
<button id="cookie-accept" class="btn btn-primary" name="choice" value="accept_all">{{.Accept}}</button>
<button id="cookie-necessary" class="btn btn-secondary" name="choice" value="necessary">{{.Necessary}}</button>
</form>
</div>
</div>
{{- end -}}

{{- define "gtag" -}}
<script id="billabong-gtag-loader" async src="https://www.googletagmanager.com/gtag/js?id={{.GtagID}}"></script>
<script id="billabong-gtag">
window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
gtag('js', new Date());
gtag('config', {{.GtagID}}, {anonymize_ip: true, cookie_flags: 'SameSite=None;Secure'});
gtag('event', 'page_view', {page_title: document.title, page_location: location.href, page_path: location.pathname, content_group1: {{.Event.Group}}});
{{- if .Event.GAEvent}}
gtag('event', {{.Event.GAEvent}}, {{.Event.GAParams}});
{{- end}}
</script>
{{- end -}}

{{- define "pixel" -}}
<script id="billabong-pixel">
!function(f,b,e,v,n,t,s){if(f.fbq)return;n=f.fbq=function(){n.callMethod?
n.callMethod.apply(n,arguments):n.queue.push(arguments)};if(!f._fbq)f._fbq=n;
n.push=n;n.loaded=!0;n.version='2.0';n.queue=[];t=b.createElement(e);t.async=!0;
t.src=v;s=b.getElementsByTagName(e)[0];s.parentNode.insertBefore(t,s)}(window,
document,'script','https://connect.facebook.net/en_US/fbevents.js');
fbq('init', {{.PixelID}});
fbq('track', 'PageView');
{{- if .Event.ContentType}}
fbq('track', 'ViewContent', {content_type: {{.Event.ContentType}}, content_name: {{.Event.ContentName}}});
{{- end}}
</script>
<noscript id="billabong-pixel-noscript"><img height="1" width="1" style="display:none" src="https://www.facebook.com/tr?id={{.PixelID}}&amp;ev=PageView&amp;noscript=1"></noscript>
{{- end -}}

{{- define "livereload" -}}
<script id="billabong-live-reload" data-events="{{.Events}}" data-fingerprint="{{.Fingerprint}}">
(function (d) {
  var es = new EventSource(d.events);
  es.addEventListener('content.reloaded', function () { location.reload(); });
  es.addEventListener('content.current', function (e) {
    if (JSON.parse(e.data).fingerprint !== d.fingerprint) location.reload();
  });
})(document.currentScript.dataset);
</script>
{{- end -}}
`))

// execute renders a named view. The views only read plain view structs, so
// an execution error is a programming error and yields empty markup.
func execute(name string, data any) string {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return ""
	}
	return buf.String()
}
