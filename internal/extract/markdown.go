package extract

import (
	"regexp"
	"strings"
)

var (
	mdImage   = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	mdLink    = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	mdHeading = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdStar    = regexp.MustCompile(`(\*\*|\*)([^*]+)(\*\*|\*)`)
	// Underscore emphasis must open and close at word boundaries so
	// snake_case identifiers pass through untouched.
	mdUnder = regexp.MustCompile(`\b(__|_)([^_]+)(__|_)\b`)
	mdCode  = regexp.MustCompile("`([^`]*)`")
)

// markdownExtractor strips markdown syntax, producing readable prose:
// heading and emphasis markers are removed, links resolve to their link
// text, and code fence lines are dropped.
type markdownExtractor struct{}

func (e *markdownExtractor) Extract(data []byte) (string, error) {
	text, err := (&textExtractor{}).Extract(data)
	if err != nil {
		return "", err
	}

	text = stripFences(text)
	text = mdImage.ReplaceAllString(text, "$1")
	text = mdLink.ReplaceAllString(text, "$1")
	text = mdHeading.ReplaceAllString(text, "")
	text = mdStar.ReplaceAllString(text, "$2")
	text = mdUnder.ReplaceAllString(text, "$2")
	text = mdCode.ReplaceAllString(text, "$1")

	return strings.TrimSpace(text), nil
}

// stripFences removes code fence delimiter lines while keeping the
// fenced content itself.
func stripFences(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
