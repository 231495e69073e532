// Package resources provides the domain system for uploaded reference
// documents: binary storage, synchronous text extraction, and the
// metadata that lets executions pull document text into a prompt.
package resources

import (
	"time"

	"github.com/agentdesk/agentdesk/internal/extract"
	"github.com/google/uuid"
)

// Status describes the extraction state of a resource.
type Status string

// Extraction states. Uploads resolve to Extracted or Failed before the
// record is returned; Pending only appears transiently during a file
// replacement.
const (
	StatusPending   Status = "pending"
	StatusExtracted Status = "extracted"
	StatusFailed    Status = "failed"
)

// Resource represents an uploaded document. ExtractedText is nil until
// extraction succeeds and is immutable afterward unless the file is
// replaced. PageCount is only populated for PDF uploads.
type Resource struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Filename      string         `json:"filename"`
	StorageKey    string         `json:"storage_key"`
	ContentType   string         `json:"content_type"`
	Format        extract.Format `json:"format"`
	SizeBytes     int64          `json:"size_bytes"`
	Status        Status         `json:"status"`
	ExtractedText *string        `json:"extracted_text,omitempty"`
	PageCount     *int           `json:"page_count,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Usable reports whether the resource can contribute text to an
// execution context.
func (r *Resource) Usable() bool {
	return r.Status == StatusExtracted && r.ExtractedText != nil
}

// UploadCommand contains the data required to create a resource from an
// uploaded file.
type UploadCommand struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Data        []byte
}

// UpdateCommand contains the data for a resource update. When Data is
// nil only the metadata fields change; when a replacement file is
// provided the resource is re-extracted and its status reset.
type UpdateCommand struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Data        []byte
}
