// Package fs saves rendered previews to disk.
package fs

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/adgen"
)

// URLToPath converts a page URL to a relative file path under its host.
// Example: https://example.com/blog/post, ".html" → example.com/blog/post.html
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", adgen.Errorf(adgen.EINVALID, "invalid URL: %v", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", adgen.Errorf(adgen.EINVALID, "URL has no host: %q", rawURL)
	}

	p := u.Path
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	}
	p = path.Clean("/" + p)

	return filepath.FromSlash(host + p + ext), nil
}

// Writer saves previews below a base directory, one file per page URL.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write stores content for rawURL and returns the file path. The file is
// written to a temporary name and renamed so readers never see a partial
// preview.
func (w *Writer) Write(rawURL, ext string, content []byte) (string, error) {
	rel, err := URLToPath(rawURL, ext)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(w.baseDir, rel)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".preview-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}
