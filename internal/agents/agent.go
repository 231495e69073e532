// Package agents provides the domain system for managing reusable AI
// personas: a system prompt, a model choice, and generation parameters,
// plus presentation metadata for client display.
package agents

import (
	"time"

	"github.com/google/uuid"
)

// Agent represents a persisted AI persona. Icon, Category, and Color are
// presentation-only and have no behavioral effect.
type Agent struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	Category     string    `json:"category"`
	Color        string    `json:"color"`
	SystemPrompt string    `json:"system_prompt"`
	Model        string    `json:"model"`
	Temperature  float64   `json:"temperature"`
	MaxTokens    int       `json:"max_tokens"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Command contains the data required to create or replace an agent.
// Model, Temperature, and MaxTokens fall back to configured defaults
// when omitted.
type Command struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Category     string   `json:"category"`
	Color        string   `json:"color"`
	SystemPrompt string   `json:"system_prompt"`
	Model        string   `json:"model"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"max_tokens,omitempty"`
}

// Defaults supplies generation parameter fallbacks for omitted command fields.
type Defaults struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// resolve applies defaults to omitted fields and returns the effective
// generation parameters.
func (c Command) resolve(d Defaults) (model string, temperature float64, maxTokens int) {
	model = c.Model
	if model == "" {
		model = d.Model
	}

	temperature = d.Temperature
	if c.Temperature != nil {
		temperature = *c.Temperature
	}

	maxTokens = d.MaxTokens
	if c.MaxTokens != nil {
		maxTokens = *c.MaxTokens
	}

	return model, temperature, maxTokens
}
