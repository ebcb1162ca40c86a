package diagnostic

import (
	"net/url"
	"path/filepath"
	"strings"
)

// URIToPath resolves a file:// URI to a filesystem path. URIs with another
// scheme are returned untouched so they still work as link targets.
func URIToPath(uri string) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	if parsed.Scheme == "" {
		return filepath.FromSlash(uri)
	}
	if parsed.Scheme != "file" {
		return uri
	}
	// Path is already decoded
	path := parsed.Path
	// file:///c:/dir -> c:/dir
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	if parsed.Host != "" && parsed.Host != "localhost" {
		path = "//" + parsed.Host + path
	}
	return filepath.FromSlash(strings.TrimSpace(path))
}
