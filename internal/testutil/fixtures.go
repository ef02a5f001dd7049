package testutil

// Files is the fixture site root, keyed by path.
var Files = map[string]string{
	"content/shared/config.json": `{
  "site": {"name": "Sailing Billabong", "url": "https://sailingbillabong.com"},
  "emailjs": {"public_key": "pk_test", "service_id": "svc_test", "template_id": "tpl_test", "website_name": "Sailing Billabong"},
  "tracking": {"gtag_config": "G-TEST123", "facebook_pixel": "424242"}
}`,
	"content/shared/contact.json": `{
  "contact": {"email": "contact@sailingbillabong.com", "phone": "+36 30 123 4567"},
  "social": {
    "instagram": {"url": "https://instagram.com/sailingbillabong", "icon": "IG", "handle": "@sailingbillabong"},
    "facebook": {"url": "https://facebook.com/sailingbillabong", "icon": "FB", "handle": "Sailing Billabong"}
  }
}`,
	"content/shared/theme.json": `{"colors": {"navy": "#0a2342", "sand": "#f4e9d8"}}`,
	"content/shared/navigation.json": `{
  "en": {
    "main_nav": [
      {"id": "home", "label": "Home", "url": "/", "active_pages": ["index"]},
      {"id": "tours", "label": "Tours", "url": "/tours", "active_pages": ["tours"],
       "dropdown": [{"label": "Day trips", "url": "/tours#day"}, {"label": "Sunset sail", "url": "/tours#sunset"}]},
      {"id": "blog", "label": "Blog", "url": "/blog", "active_pages": ["blog", "blog-article"]},
      {"id": "contact", "label": "Contact", "url": "/contact", "active_pages": ["contact"]}
    ],
    "language_switcher": {"en": "English", "hu": "Magyar"}
  },
  "hu": {
    "main_nav": [
      {"id": "home", "label": "Főoldal", "url": "/hu/", "active_pages": ["index"]},
      {"id": "tours", "label": "Túrák", "url": "/hu/tours", "active_pages": ["tours"],
       "dropdown": [{"label": "Napi túrák", "url": "/hu/tours#day"}, {"label": "Naplemente", "url": "/hu/tours#sunset"}]},
      {"id": "blog", "label": "Blog", "url": "/hu/blog", "active_pages": ["blog", "blog-article"]},
      {"id": "contact", "label": "Kapcsolat", "url": "/hu/contact", "active_pages": ["contact"]}
    ]
  }
}`,
	"content/shared/blog.json": `{
  "categories": {
    "adventure": {"name": "Adventure", "color": "#1e88e5"},
    "tips": {"name": "Sailing Tips", "color": "#43a047"}
  },
  "articles": [
    {"id": "first-sail", "title": "Our First Sail", "short_description": "How it all began.",
     "featured_image": "images/first.jpg", "creation_date": "2024-03-01", "category": "adventure",
     "tags": ["history"], "published": true},
    {"id": "knots", "title": "Five Knots", "short_description": "Knots every sailor needs.",
     "content": "## Bowline\n\nThe king of knots.\n\n<script>alert(1)</script>",
     "featured_image": "images/knots.jpg", "creation_date": "2024-05-10", "category": "tips",
     "tags": ["knots", "basics"], "published": true},
    {"id": "draft", "title": "Draft Post", "short_description": "Not ready.",
     "featured_image": "images/draft.jpg", "creation_date": "2024-06-01", "category": "tips",
     "tags": [], "published": false},
    {"id": "winter", "title": "Winter Storage", "short_description": "Preparing the boat.",
     "featured_image": "images/winter.jpg", "creation_date": "2024-01-15", "category": "tips",
     "tags": ["maintenance"], "published": true},
    {"id": "sunsets", "title": "Balaton Sunsets", "short_description": "Golden hour on the lake.",
     "featured_image": "images/sunset.jpg", "creation_date": "2024-05-10", "category": "adventure",
     "tags": ["balaton"], "published": true}
  ]
}`,
	"includes/header.html": `<header class="header">
  <a class="logo-container" href="#">Sailing Billabong</a>
  <nav class="nav"></nav>
  <div class="lang-switch">
    <a id="lang-en" class="lang-btn" data-lang="en" href="#">EN</a>
    <a id="lang-hu" class="lang-btn" data-lang="hu" href="#">HU</a>
  </div>
  <button class="mobile-menu-btn">☰</button>
  <div class="mobile-nav"></div>
</header>`,
	"includes/footer.html": `<footer class="footer">
  <a data-contact="email" href="#"></a>
  <span data-contact="phone"></span>
  <div class="social-links"></div>
</footer>`,
	"index.html":        page("Home", `<section id="latest"><div id="latest-posts-grid"></div></section>`),
	"tours.html":        page("Tours", `<section id="day"><h2 id="day-trips">Day trips</h2></section>`),
	"blog.html":         page("Blog", `<div id="blog-grid"></div>`),
	"contact.html":      page("Contact", `<form id="contact-form"><button id="submit-btn">Send Message</button></form><div id="form-status"></div><img id="hero" src="images/hero.jpg" alt="">`),
	"blog-article.html": articlePage,
	"hu/index.html":     page("Főoldal", `<div id="latest-posts-grid"></div>`),
	"hu/tours.html":     page("Túrák", `<section id="day"></section>`),
	"hu/blog.html":      page("Blog", `<div id="blog-grid"></div>`),
	"css/site.css":      `body { color: #0a2342; }`,
	"js/main.js":        `document.documentElement.classList.add("js");`,
	"images/hero.jpg":   "jpeg",
	"plain.html":        `<!DOCTYPE html><html><head><title>Plain</title></head><body><p>static</p></body></html>`,
}

func page(title, body string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>` + title + `</title><link rel="icon" href="old.ico"><link rel="stylesheet" href="css/site.css"><script src="js/main.js"></script></head>
<body>
<div id="header"></div>
<main>` + body + `</main>
<div id="footer"></div>
</body>
</html>`
}

const articlePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Article</title>
<meta id="article-title" name="title" content="">
<meta id="article-description" name="description" content="">
<meta id="og-title" property="og:title" content="">
<meta id="og-description" property="og:description" content="">
<meta id="og-image" property="og:image" content="">
</head>
<body>
<div id="header"></div>
<nav class="breadcrumb"><span id="breadcrumb-title"></span></nav>
<article>
<span id="article-category-display"></span>
<span id="article-date-display"></span>
<h1 id="article-title-display"></h1>
<p id="article-excerpt-display"></p>
<img id="article-featured-image" src="" alt="">
<div id="article-body"></div>
<div id="article-tags"></div>
</article>
<div id="footer"></div>
</body>
</html>`
