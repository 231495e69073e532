package resources

import (
	"bytes"

	"github.com/agentdesk/agentdesk/internal/extract"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// countPages returns the page count for PDF uploads and nil for every
// other format. A count failure is not an upload failure.
func countPages(data []byte, format extract.Format) *int {
	if format != extract.FormatPDF {
		return nil
	}

	count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil
	}

	return &count
}
