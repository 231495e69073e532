package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pageSeparator joins extracted page texts in document order.
const pageSeparator = "\n\n"

// pdfExtractor extracts text from PDF documents page by page. A page that
// yields no text (scanned images, decode errors) contributes an empty
// segment; only a document that cannot be opened fails extraction.
type pdfExtractor struct{}

func (e *pdfExtractor) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for num := 1; num <= reader.NumPage(); num++ {
		pages = append(pages, extractPage(reader, num))
	}

	return strings.TrimSpace(strings.Join(pages, pageSeparator)), nil
}

func extractPage(reader *pdf.Reader, num int) (text string) {
	// The underlying parser can panic on malformed content streams;
	// a broken page must not abort the remaining pages.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(content)
}
