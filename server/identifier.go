// Package server implements the HTTP front door for extraction runs.
package server

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var watchPathPattern = regexp.MustCompile(`/watch/(\d+)`)

// ParseIdentifier resolves a raw request parameter into an Anilist numeric
// identifier. It accepts a bare positive integer or a watch page URL whose
// path carries the identifier, e.g. https://www.miruro.to/watch/21/episode-1.
func ParseIdentifier(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty identifier")
	}

	if id, err := strconv.Atoi(raw); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("identifier must be positive, got %d", id)
		}
		return id, nil
	}

	if match := watchPathPattern.FindStringSubmatch(raw); match != nil {
		id, err := strconv.Atoi(match[1])
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("invalid identifier in url %q", raw)
		}
		return id, nil
	}

	return 0, fmt.Errorf("cannot derive an identifier from %q", raw)
}
