package mcpserver

// ContentSchema describes the shared content documents that every page is
// hydrated from.
const ContentSchema = `# Billabong Content Schema

All shared content lives under ` + "`content/shared/`" + ` in the site root. Partials live
under ` + "`includes/`" + `. Every file is UTF-8; JSON documents must parse as a whole or the
whole content load fails and the previous snapshot stays live.

## config.json

Opaque sections read by key:

` + "```" + `json
{
  "site":     {"name": "Sailing Billabong", "url": "https://sailingbillabong.com"},
  "emailjs":  {"public_key": "...", "service_id": "...", "template_id": "...", "website_name": "..."},
  "tracking": {"gtag_config": "G-XXXXXXXXXX", "facebook_pixel": "1234567890"}
}
` + "```" + `

## contact.json

` + "```" + `json
{
  "contact": {"email": "contact@example.com", "phone": "+36 30 123 4567"},
  "social":  {"instagram": {"url": "https://...", "icon": "IG", "handle": "@handle"}}
}
` + "```" + `

Social links render in key order.

## navigation.json

One entry per locale (` + "`en`" + `, ` + "`hu`" + `), each with ` + "`main_nav`" + `:

` + "```" + `json
{"id": "tours", "label": "Tours", "url": "/tours", "active_pages": ["tours"],
 "dropdown": [{"label": "Day trips", "url": "/tours#day"}]}
` + "```" + `

Rules:

1. ` + "`id`" + ` is unique per locale and matches ` + "`[A-Za-z0-9_-]+`" + `.
2. ` + "`active_pages`" + ` lists page slugs (file name without .html, ` + "`index`" + ` for the root).
   The first item listing the current slug is marked active.
3. URLs are written root-relative without locale prefix or .html; the server and the
   static builder rewrite them per locale and runtime mode.

## blog.json

` + "```" + `json
{
  "categories": {"tips": {"name": "Sailing Tips", "color": "#43a047"}},
  "articles": [{
    "id": "knots", "title": "Five Knots", "short_description": "...",
    "content": "Markdown body", "featured_image": "images/blog/knots.jpg",
    "creation_date": "2024-05-10", "category": "tips", "tags": ["knots"],
    "published": true
  }]
}
` + "```" + `

Rules:

1. ` + "`category`" + ` must name a key of ` + "`categories`" + `; an unknown category fails the page.
2. ` + "`creation_date`" + ` is an ISO date or datetime. Listings sort newest first.
3. Only ` + "`published: true`" + ` articles are listed, searchable or reachable.
4. Upload featured images with the ` + "`upload_image`" + ` tool and paste the returned
   ` + "`featured_image`" + ` value.

## theme.json

Opaque; loaded and exposed but not interpreted by the hydrators.
`
