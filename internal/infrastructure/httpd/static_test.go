package httpd

import (
	"os"
	"path/filepath"
	"testing"
)

func newStaticFixture(t *testing.T) *StaticFiles {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"index.html":   "<html>home</html>",
		"app.js":       "console.log(1)",
		"notes.xyzext": "plain",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return NewStaticFiles(root)
}

func TestStatic_RootServesIndex(t *testing.T) {
	s := newStaticFixture(t)
	resp, ok := s.Serve("/")
	if !ok {
		t.Fatalf("expected index.html to be served")
	}
	if resp.ContentType != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", resp.ContentType)
	}
	if string(resp.Body) != "<html>home</html>" {
		t.Fatalf("body = %q", resp.Body)
	}
	found := false
	for _, h := range resp.extra {
		if h[0] == "Cache-Control" && h[1] == "no-cache" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing Cache-Control header")
	}
}

func TestStatic_MimeTypes(t *testing.T) {
	s := newStaticFixture(t)
	resp, ok := s.Serve("/app.js")
	if !ok {
		t.Fatalf("expected app.js to be served")
	}
	if resp.ContentType != "application/javascript; charset=utf-8" {
		t.Fatalf("content type = %q", resp.ContentType)
	}

	resp, ok = s.Serve("/notes.xyzext")
	if !ok {
		t.Fatalf("expected notes.xyzext to be served")
	}
	if resp.ContentType != "text/plain; charset=utf-8" {
		t.Fatalf("fallback content type = %q", resp.ContentType)
	}
}

func TestStatic_Refusals(t *testing.T) {
	s := newStaticFixture(t)
	for _, path := range []string{
		"/missing.html",
		"/sub",                // directory, not a regular file
		"/../outside.txt",     // escapes the root
		"/sub/../../etc/passwd",
	} {
		if _, ok := s.Serve(path); ok {
			t.Fatalf("expected %q to be refused", path)
		}
	}
}
