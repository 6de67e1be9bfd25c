// Package videoid extracts and validates YouTube video identifiers.
package videoid

import (
	"net/url"
	"strings"
)

// Length of every YouTube video identifier.
const Length = 11

// Valid reports whether id has the shape of a YouTube video identifier.
func Valid(id string) bool {
	if len(id) != Length {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

var pathPrefixes = []string{"embed/", "v/", "shorts/", "live/"}

// Extract returns the video identifier contained in s, which may be a
// watch, short, embed or legacy URL, with or without a scheme, or a bare
// identifier.
func Extract(s string) (id string, ok bool) {
	s = strings.TrimSpace(s)
	if Valid(s) {
		return s, true
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")
	path := strings.TrimPrefix(u.Path, "/")
	switch host {
	case "youtu.be":
		id, _, _ = strings.Cut(path, "/")
	case "youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}
		for _, prefix := range pathPrefixes {
			if rest, found := strings.CutPrefix(path, prefix); found {
				id, _, _ = strings.Cut(rest, "/")
				break
			}
		}
		if id == "" {
			// youtube.com/<id>
			id, _, _ = strings.Cut(path, "/")
		}
	}
	if !Valid(id) {
		return "", false
	}
	return id, true
}
