package extract

import "errors"

// Extraction errors.
var (
	// ErrUnsupportedFormat indicates no extractor is registered for the
	// declared format.
	ErrUnsupportedFormat = errors.New("extract: unsupported format")

	// ErrExtractionFailed indicates the file could not be processed at all.
	// Partial failures (individual pages) are contained and never surface
	// as this error.
	ErrExtractionFailed = errors.New("extract: extraction failed")
)
