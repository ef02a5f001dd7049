// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the site's content tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/blog"
	"github.com/starford/billabong/internal/hydrate"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/siteservice"
	"github.com/starford/billabong/internal/urls"
)

const schemaURI = "billabong://content-schema"

// Server wraps the MCP server with the site tools.
type Server struct {
	mcp *server.MCPServer
	svc *siteservice.Service
}

// New creates a new MCP server with all tools registered.
func New(svc *siteservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Billabong",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_articles",
		mcp.WithDescription("List published blog articles, newest first."),
		mcp.WithString("mode", mcp.Description("full (all) or compact (latest 3)"), mcp.Enum("full", "compact")),
		mcp.WithString("lang", mcp.Description("Locale for dates and links"), mcp.Enum("en", "hu")),
	), s.listArticles)

	s.mcp.AddTool(mcp.NewTool("read_article",
		mcp.WithDescription("Read a published article including its rendered HTML body."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Article id as used in blog-article?id=")),
		mcp.WithString("lang", mcp.Enum("en", "hu")),
	), s.readArticle)

	s.mcp.AddTool(mcp.NewTool("search_articles",
		mcp.WithDescription("Full-text search over published article titles, descriptions, tags and bodies."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithNumber("limit", mcp.Description("Max results (default 20)")),
	), s.searchArticles)

	s.mcp.AddTool(mcp.NewTool("get_navigation",
		mcp.WithDescription("Return the main navigation of a locale."),
		mcp.WithString("lang", mcp.Enum("en", "hu")),
	), s.getNavigation)

	s.mcp.AddTool(mcp.NewTool("resolve_url",
		mcp.WithDescription("Resolve a site-relative URL the way page links are rewritten for a runtime mode and locale."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL as written in content, e.g. /tours#day")),
		mcp.WithString("mode", mcp.Enum(string(models.ModeNetwork), string(models.ModeLocalFile))),
		mcp.WithString("lang", mcp.Enum("en", "hu")),
		mcp.WithNumber("depth", mcp.Description("Directory depth of the page in local-file mode")),
	), s.resolveURL)

	s.mcp.AddTool(mcp.NewTool("switch_locale",
		mcp.WithDescription("Return the counterpart of a page in the other locale."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Current page path, e.g. /hu/tours")),
		mcp.WithString("lang", mcp.Required(), mcp.Enum("en", "hu")),
		mcp.WithString("mode", mcp.Enum(string(models.ModeNetwork), string(models.ModeLocalFile))),
	), s.switchLocale)

	s.mcp.AddTool(mcp.NewTool("render_page",
		mcp.WithDescription("Render a page as the server would serve it to a visitor without consent."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Clean request path, e.g. /hu/blog")),
	), s.renderPage)

	s.mcp.AddTool(mcp.NewTool("upload_image",
		mcp.WithDescription("Store an image for a blog article under images/blog/. "+
			"Returns the featured_image value to put into blog.json."),
		mcp.WithString("url", mcp.Required(), mcp.Description("http(s) URL or base64 data URI of the image")),
		mcp.WithString("filename", mcp.Description("Optional target file name")),
	), s.uploadImage)

	s.mcp.AddTool(mcp.NewTool("get_content_schema",
		mcp.WithDescription("Returns the content document schema. Read before editing content/shared/*.json."),
	), s.getContentSchema)

	s.mcp.AddResource(
		mcp.NewResource(schemaURI, "Content Schema",
			mcp.WithResourceDescription("Structure of the shared content documents."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSchemaResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func errResult(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError("not found"), nil
	}
	return mcp.NewToolResultError(err.Error()), nil
}

func locale(req mcp.CallToolRequest) (models.Locale, error) {
	raw := req.GetString("lang", "")
	if raw == "" {
		return models.LocaleEN, nil
	}
	l, ok := models.ParseLocale(raw)
	if !ok {
		return "", fmt.Errorf("unsupported lang: %s", raw)
	}
	return l, nil
}

func runtimeMode(req mcp.CallToolRequest) (models.RuntimeMode, error) {
	return models.ParseMode(req.GetString("mode", string(models.ModeNetwork)))
}

func (s *Server) listArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l, err := locale(req)
	if err != nil {
		return errResult(err)
	}
	mode, err := blog.ParseMode(req.GetString("mode", ""))
	if err != nil {
		return errResult(err)
	}
	items, err := s.svc.ListArticles(ctx, mode, l)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(items)
}

func (s *Server) readArticle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return errResult(err)
	}
	l, err := locale(req)
	if err != nil {
		return errResult(err)
	}
	a, err := s.svc.GetArticle(ctx, id, l)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(a)
}

func (s *Server) searchArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return errResult(err)
	}
	results, err := s.svc.Search(ctx, query, req.GetInt("limit", 20))
	if err != nil {
		return errResult(err)
	}
	return jsonResult(results)
}

func (s *Server) getNavigation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l, err := locale(req)
	if err != nil {
		return errResult(err)
	}
	items, err := s.svc.Navigation(ctx, l)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(items)
}

func (s *Server) resolveURL(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u, err := req.RequireString("url")
	if err != nil {
		return errResult(err)
	}
	mode, err := runtimeMode(req)
	if err != nil {
		return errResult(err)
	}
	l, err := locale(req)
	if err != nil {
		return errResult(err)
	}
	r := urls.Resolver{Mode: mode, Locale: l, Depth: req.GetInt("depth", 0)}
	return mcp.NewToolResultText(r.Resolve(u)), nil
}

func (s *Server) switchLocale(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return errResult(err)
	}
	mode, err := runtimeMode(req)
	if err != nil {
		return errResult(err)
	}
	l, err := locale(req)
	if err != nil {
		return errResult(err)
	}
	return mcp.NewToolResultText(urls.SwitchLocale(p, mode, l)), nil
}

func (s *Server) renderPage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return errResult(err)
	}
	file, err := s.svc.PageFile(p)
	if err != nil {
		return errResult(err)
	}
	page := hydrate.NewPage(p, nil, models.ModeNetwork)
	out, res, err := s.svc.RenderPage(ctx, file, page)
	if err != nil {
		return errResult(err)
	}
	if res.Redirect != "" {
		return mcp.NewToolResultText("redirect: " + res.Redirect), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getContentSchema(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ContentSchema), nil
}

func (s *Server) readSchemaResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      schemaURI,
			MIMEType: "text/markdown",
			Text:     ContentSchema,
		},
	}, nil
}
