package agents

import (
	"fmt"
	"strings"

	"github.com/agentdesk/agentdesk/internal/provider"
)

// temperature bounds accepted by the completion endpoints.
const (
	minTemperature = 0.0
	maxTemperature = 2.0
)

// validate enforces the agent invariants. Unknown models are rejected
// here, at persistence time, never at execution time.
func validate(name, systemPrompt, model string, temperature float64, maxTokens int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(systemPrompt) == "" {
		return fmt.Errorf("%w: system_prompt is required", ErrValidation)
	}
	if !provider.Accepts(model) {
		return fmt.Errorf("%w: unknown model %q", ErrValidation, model)
	}
	if temperature < minTemperature || temperature > maxTemperature {
		return fmt.Errorf("%w: temperature %.2f outside [%.1f, %.1f]", ErrValidation, temperature, minTemperature, maxTemperature)
	}
	if maxTokens <= 0 {
		return fmt.Errorf("%w: max_tokens must be positive", ErrValidation)
	}
	return nil
}
