// Package provider abstracts chat completion generation behind a single
// System capability with two implementations: a live OpenAI-backed client
// and a deterministic offline mock. The variant is chosen once at
// construction from credential presence; callers never branch on it.
package provider

import (
	"context"
	"log/slog"
)

// Request carries one completion invocation. Prompt holds the fully
// assembled user content; prompt assembly is the caller's concern.
type Request struct {
	SystemPrompt string
	Prompt       string
	Model        string
	Temperature  float64
	MaxTokens    int
}

// Response holds the generated completion.
type Response struct {
	Output           string `json:"output"`
	Model            string `json:"model"`
	CompletionTokens int    `json:"completion_tokens,omitempty"`
}

// System defines the completion capability.
type System interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Mock() bool
	Models() []Model
}

// Model describes an accepted completion model.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxTokens   int    `json:"max_tokens"`
	Description string `json:"description"`
}

// catalog is the closed set of models accepted at agent creation.
var catalog = []Model{
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", MaxTokens: 4000, Description: "Fast and efficient model"},
	{ID: "gpt-4o", Name: "GPT-4o", MaxTokens: 8000, Description: "Most powerful model"},
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", MaxTokens: 128000, Description: "Compact GPT-4o model"},
}

// Catalog returns the accepted model set.
func Catalog() []Model {
	models := make([]Model, len(catalog))
	copy(models, catalog)
	return models
}

// Accepts reports whether a model id is part of the accepted set.
func Accepts(id string) bool {
	for _, m := range catalog {
		if m.ID == id {
			return true
		}
	}
	return false
}

// New selects the completion variant from credential presence: a live
// OpenAI client when an API key is configured, otherwise the offline mock.
func New(cfg *Config, logger *slog.Logger) System {
	if cfg.Configured() {
		return newOpenAI(cfg, logger)
	}

	logger.Warn("no completion credential configured, using mock provider")
	return newMock(logger)
}
