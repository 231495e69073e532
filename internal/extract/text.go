package extract

import (
	"strings"
	"unicode/utf8"
)

// textExtractor decodes plain text content. Valid UTF-8 passes through
// unchanged; anything else is decoded byte-for-byte as Latin-1 so no
// upload is rejected for its encoding.
type textExtractor struct{}

func (e *textExtractor) Extract(data []byte) (string, error) {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data)), nil
	}

	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}

	return strings.TrimSpace(string(runes)), nil
}
