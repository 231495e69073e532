package agents

import (
	"net/url"

	"github.com/agentdesk/agentdesk/pkg/query"
	"github.com/agentdesk/agentdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "agents", "a").
	Project("id", "Id").
	Project("name", "Name").
	Project("description", "Description").
	Project("icon", "Icon").
	Project("category", "Category").
	Project("color", "Color").
	Project("system_prompt", "SystemPrompt").
	Project("model", "Model").
	Project("temperature", "Temperature").
	Project("max_tokens", "MaxTokens").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

func scanAgent(s repository.Scanner) (Agent, error) {
	var a Agent
	err := s.Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.Icon,
		&a.Category,
		&a.Color,
		&a.SystemPrompt,
		&a.Model,
		&a.Temperature,
		&a.MaxTokens,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Filters contains optional filtering criteria for agent queries.
type Filters struct {
	Name     *string
	Category *string
	Model    *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}
	if c := values.Get("category"); c != "" {
		f.Category = &c
	}
	if m := values.Get("model"); m != "" {
		f.Model = &m
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name)
	if f.Category != nil {
		b.WhereEquals("Category", *f.Category)
	}
	if f.Model != nil {
		b.WhereEquals("Model", *f.Model)
	}
	return b
}
