// Package execution orchestrates a single agent run: it resolves the
// agent, gathers extracted resource text into a context block, and calls
// the completion provider. Provider failures are contained in the result
// rather than surfaced as errors.
package execution

import (
	"context"

	"github.com/google/uuid"
)

// Request describes one execution: the agent to run, the user input, and
// an ordered list of resources to include as context.
type Request struct {
	AgentID     uuid.UUID   `json:"agent_id"`
	Input       string      `json:"input"`
	ResourceIDs []uuid.UUID `json:"resource_ids,omitempty"`
}

// Result carries the outcome of an execution. Output is nil when the
// provider failed, in which case Error holds the failure. Warnings list
// resources that were requested but could not contribute context.
type Result struct {
	Output   *string  `json:"output"`
	Model    string   `json:"model"`
	Mock     bool     `json:"mock"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// System defines the execution orchestration interface.
type System interface {
	Execute(ctx context.Context, req Request) (*Result, error)
}
