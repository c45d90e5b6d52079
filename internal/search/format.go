package search

import (
	"regexp"
	"strings"

	"github.com/L8ton-crypto/appian-cheat/internal/store"
)

// Result is one formatted search hit.
type Result struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Content    string  `json:"content"`
	Similarity float32 `json:"similarity"`
}

// Stored content leads with a "Name (Category)" header line.
var headerRe = regexp.MustCompile(`^(.+?)\s*\((.+)\)$`)

// parseHeader extracts name and category from the first line of content.
// Content that doesn't follow the header convention degrades to the raw first
// line with an empty category; this never fails.
func parseHeader(content string) (name, category string) {
	if content == "" {
		return "", ""
	}
	line := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		line = content[:i]
	}
	m := headerRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return line, ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

func formatMatch(m store.Match) Result {
	name, category := parseHeader(m.Content)
	return Result{
		Name:       name,
		Category:   category,
		Content:    m.Content,
		Similarity: m.Similarity,
	}
}
