// Package extract converts uploaded file content into plain text. Each
// supported format has a dedicated extractor registered at construction;
// dispatch never inspects content at runtime.
package extract

import "strings"

// Format identifies a supported source file format.
type Format string

// Supported formats.
const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Extractor converts raw file bytes of a single format into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// System dispatches extraction requests to the extractor registered for
// the declared format.
type System interface {
	Extract(data []byte, format Format) (string, error)
}

type registry struct {
	extractors map[Format]Extractor
}

// New creates an extraction system with all built-in format extractors.
func New() System {
	return &registry{
		extractors: map[Format]Extractor{
			FormatPDF:      &pdfExtractor{},
			FormatMarkdown: &markdownExtractor{},
			FormatText:     &textExtractor{},
		},
	}
}

func (r *registry) Extract(data []byte, format Format) (string, error) {
	extractor, ok := r.extractors[format]
	if !ok {
		return "", ErrUnsupportedFormat
	}
	return extractor.Extract(data)
}

// DetectFormat determines the format from a filename extension. Unknown
// extensions fall back to plain text, matching upload behavior where any
// readable file is accepted.
func DetectFormat(filename string) Format {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return FormatText
	}

	switch strings.ToLower(filename[idx:]) {
	case ".pdf":
		return FormatPDF
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatText
	}
}
