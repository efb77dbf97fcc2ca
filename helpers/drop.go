package helpers

import (
	"net/url"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitDroppedPaths splits the text a terminal pastes when files are dragged onto it.
// Paths may be quoted, backslash-escaped or given as file:// URIs, separated by whitespace or newlines.
// Text that already names an existing file is returned as is, so unquoted Windows paths keep their backslashes.
func SplitDroppedPaths(s string) []string {
	raw := strings.TrimSpace(newlines.Replace(s))
	if raw == "" {
		return nil
	}
	if _, err := os.Stat(raw); err == nil {
		return []string{raw}
	}

	words, err := shellquote.Split(raw)
	if err != nil {
		// unterminated quote or trailing backslash
		return []string{fromFileURI(raw)}
	}
	if len(words) == 0 {
		return nil
	}

	paths := make([]string, 0, len(words))
	for _, w := range words {
		paths = append(paths, fromFileURI(w))
	}
	return paths
}

// FirstDroppedPath returns the first dropped path and how many were dropped in total
func FirstDroppedPath(s string) (string, int) {
	paths := SplitDroppedPaths(s)
	if len(paths) == 0 {
		return "", 0
	}
	return paths[0], len(paths)
}

func fromFileURI(p string) string {
	if !strings.HasPrefix(p, "file://") {
		return p
	}
	u, err := url.Parse(p)
	if err != nil || u.Path == "" {
		return strings.TrimPrefix(p, "file://")
	}
	return u.Path
}
