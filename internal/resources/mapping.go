package resources

import (
	"net/url"

	"github.com/agentdesk/agentdesk/pkg/query"
	"github.com/agentdesk/agentdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "resources", "r").
	Project("id", "Id").
	Project("title", "Title").
	Project("description", "Description").
	Project("filename", "Filename").
	Project("storage_key", "StorageKey").
	Project("content_type", "ContentType").
	Project("format", "Format").
	Project("size_bytes", "SizeBytes").
	Project("status", "Status").
	Project("extracted_text", "ExtractedText").
	Project("page_count", "PageCount").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Title"}

func scanResource(s repository.Scanner) (Resource, error) {
	var r Resource
	err := s.Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.Filename,
		&r.StorageKey,
		&r.ContentType,
		&r.Format,
		&r.SizeBytes,
		&r.Status,
		&r.ExtractedText,
		&r.PageCount,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

// Filters contains optional filtering criteria for resource queries.
type Filters struct {
	Title  *string
	Status *string
	Format *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("title"); t != "" {
		f.Title = &t
	}
	if s := values.Get("status"); s != "" {
		f.Status = &s
	}
	if fm := values.Get("format"); fm != "" {
		f.Format = &fm
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Title", f.Title)
	if f.Status != nil {
		b.WhereEquals("Status", *f.Status)
	}
	if f.Format != nil {
		b.WhereEquals("Format", *f.Format)
	}
	return b
}
