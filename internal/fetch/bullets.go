package fetch

import (
	"html"
	"regexp"
	"strings"
)

var (
	breakRe  = regexp.MustCompile(`(?i)<\s*(?:br|/li|/p|/div|/tr)\s*/?\s*>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	bulletRe = regexp.MustCompile(`^[-*•]\s*|^\d+[.)]\s*`)
)

// Bullets turns a rich-text field into one plain statement per line.
// Block-level tag boundaries become line breaks, all remaining markup is
// stripped, entities are decoded and list markers are trimmed.
func Bullets(richText string) []string {
	if strings.TrimSpace(richText) == "" {
		return nil
	}
	text := breakRe.ReplaceAllString(richText, "\n")
	text = tagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = bulletRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
