package httpd

import (
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// StaticFiles serves files from a configured root directory. It refuses any
// path that would resolve outside the root.
type StaticFiles struct {
	root string
}

func NewStaticFiles(root string) *StaticFiles {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &StaticFiles{root: abs}
}

// Serve returns the file behind reqPath, or false if it cannot be served.
// "/" maps to index.html.
func (s *StaticFiles) Serve(reqPath string) (*Response, bool) {
	rel := strings.TrimPrefix(reqPath, "/")
	if rel == "" {
		rel = "index.html"
	}

	// Join cleans the path; anything that still escapes the root is refused.
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if full != s.root && !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return nil, false
	}

	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, false
	}

	resp := NewResponse()
	resp.ContentType = mimeType(full)
	resp.Body = data
	resp.SetHeader("Cache-Control", "no-cache")
	return resp, true
}

func mimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".json":
		return "application/json; charset=utf-8"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "text/plain; charset=utf-8"
}
