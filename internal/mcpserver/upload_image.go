package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	maxImageSize = 5 << 20
	imageDir     = "images/blog"
)

var (
	imageExts = map[string]string{
		"image/png":     ".png",
		"image/jpeg":    ".jpg",
		"image/gif":     ".gif",
		"image/webp":    ".webp",
		"image/svg+xml": ".svg",
	}

	unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
)

type imageResult struct {
	Path          string `json:"path"`
	FeaturedImage string `json:"featured_image"`
	Bytes         int    `json:"bytes"`
}

func (s *Server) uploadImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("url")
	if err != nil {
		return errResult(err)
	}

	var (
		data []byte
		ext  string
	)
	if strings.HasPrefix(raw, "data:") {
		data, ext, err = decodeDataURI(raw)
	} else {
		data, ext, err = download(ctx, raw)
	}
	if err != nil {
		return errResult(err)
	}

	name := imageName(req.GetString("filename", ""), raw, ext)
	if err := checkImage(data, path.Ext(name)); err != nil {
		return errResult(err)
	}

	src := s.svc.Source()
	rel := imageDir + "/" + name
	if src.Exists(rel) {
		return mcp.NewToolResultError(fmt.Sprintf("image already exists: %s", rel)), nil
	}
	if err := src.Write(rel, data); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save image: %v", err)), nil
	}

	out, _ := json.Marshal(imageResult{Path: "/" + rel, FeaturedImage: rel, Bytes: len(data)})
	return mcp.NewToolResultText(string(out)), nil
}

// decodeDataURI parses a base64 data:[<mediatype>];base64,<data> URI.
func decodeDataURI(uri string) ([]byte, string, error) {
	meta, encoded, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, "", fmt.Errorf("invalid data URI: missing comma separator")
	}
	mime, isB64 := strings.CutSuffix(meta, ";base64")
	if !isB64 {
		return nil, "", fmt.Errorf("only base64 data URIs are supported")
	}
	ext := imageExts[mime]
	if ext == "" {
		return nil, "", fmt.Errorf("unsupported image type: %s", mime)
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(encoded); err != nil {
			return nil, "", fmt.Errorf("invalid base64 data: %w", err)
		}
	}
	if len(data) > maxImageSize {
		return nil, "", fmt.Errorf("image too large: %d bytes (max %d)", len(data), maxImageSize)
	}
	return data, ext, nil
}

// download fetches an image over http(s), refusing loopback and cloud
// metadata hosts.
func download(ctx context.Context, raw string) ([]byte, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, "", fmt.Errorf("unsupported scheme: %s (only http/https)", u.Scheme)
	}
	if err := checkHost(u.Hostname()); err != nil {
		return nil, "", err
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
		CheckRedirect: func(r *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("too many redirects (max 5)")
			}
			return checkHost(r.URL.Hostname())
		},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body failed: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, "", fmt.Errorf("image too large: exceeds %d bytes", maxImageSize)
	}
	ct, _, _ := strings.Cut(resp.Header.Get("Content-Type"), ";")
	return data, imageExts[strings.TrimSpace(ct)], nil
}

func checkHost(host string) error {
	if host == "metadata.google.internal" {
		return fmt.Errorf("blocked host: %s", host)
	}
	ips := []net.IP{net.ParseIP(host)}
	if ips[0] == nil {
		var err error
		ips, err = net.LookupIP(host)
		if err != nil || len(ips) == 0 {
			return nil //nolint:nilerr // let http.Client report DNS failures
		}
	}
	for _, ip := range ips {
		if internalIP(ip) {
			return fmt.Errorf("blocked host: %s", host)
		}
	}
	return nil
}

// internalIP reports addresses that must not be fetched on a caller's
// behalf: loopback, private ranges, link-local (cloud metadata included)
// and the unspecified address.
func internalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsInterfaceLocalMulticast()
}

// imageName picks a safe file name: the requested one, the URL's base name,
// or a fresh uuid with the detected extension.
func imageName(requested, raw, ext string) string {
	name := requested
	if name == "" && !strings.HasPrefix(raw, "data:") {
		if u, err := url.Parse(raw); err == nil {
			if base := path.Base(u.Path); strings.Contains(base, ".") {
				name = base
			}
		}
	}
	name = unsafeNameRe.ReplaceAllString(path.Base(name), "_")
	if name == "" || name == "." || name == "_" {
		if ext == "" {
			ext = ".bin"
		}
		name = uuid.NewString() + ext
	}
	if path.Ext(name) == "" && ext != "" {
		name += ext
	}
	return strings.ToLower(name)
}

// checkImage verifies the bytes match an allowed image extension.
func checkImage(data []byte, ext string) error {
	ext = strings.ToLower(ext)
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	if ext == ".svg" {
		head := data[:min(len(data), 1024)]
		if !bytes.Contains(head, []byte("<svg")) {
			return fmt.Errorf("content does not appear to be an SVG image")
		}
		return nil
	}
	allowed := false
	for _, e := range imageExts {
		allowed = allowed || e == ext
	}
	if !allowed {
		return fmt.Errorf("unsupported file extension: %q (allowed: png, jpg, gif, webp, svg)", ext)
	}
	mime, _, _ := strings.Cut(http.DetectContentType(data), ";")
	if imageExts[mime] != ext {
		return fmt.Errorf("content does not match extension %s (detected: %s)", ext, mime)
	}
	return nil
}
