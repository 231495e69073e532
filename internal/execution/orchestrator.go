package execution

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agentdesk/agentdesk/internal/agents"
	"github.com/agentdesk/agentdesk/internal/provider"
	"github.com/agentdesk/agentdesk/internal/resources"
)

type orchestrator struct {
	agents    agents.System
	resources resources.System
	provider  provider.System
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates an execution orchestrator. The timeout caps how long a
// single provider call may run.
func New(agentSys agents.System, resourceSys resources.System, providerSys provider.System, timeout time.Duration, logger *slog.Logger) System {
	return &orchestrator{
		agents:    agentSys,
		resources: resourceSys,
		provider:  providerSys,
		timeout:   timeout,
		logger:    logger.With("system", "execution"),
	}
}

// Execute runs one agent invocation. An unknown agent id is an error;
// everything past agent resolution is contained in the result.
func (o *orchestrator) Execute(ctx context.Context, req Request) (*Result, error) {
	agent, err := o.agents.Find(ctx, req.AgentID)
	if err != nil {
		return nil, err
	}

	contextBlock, warnings := o.gatherContext(ctx, req)

	prompt := req.Input
	if contextBlock != "" {
		prompt = contextBlock + "\n\n" + req.Input
	}

	result := &Result{
		Model:    agent.Model,
		Mock:     o.provider.Mock(),
		Warnings: warnings,
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.provider.Complete(callCtx, provider.Request{
		SystemPrompt: agent.SystemPrompt,
		Prompt:       prompt,
		Model:        agent.Model,
		Temperature:  agent.Temperature,
		MaxTokens:    agent.MaxTokens,
	})

	if err != nil {
		o.logger.Warn("completion failed", "agent", agent.ID, "model", agent.Model, "error", err)
		result.Error = err.Error()
		return result, nil
	}

	result.Output = &resp.Output
	result.Model = resp.Model

	o.logger.Info("execution complete", "agent", agent.ID, "model", resp.Model, "mock", result.Mock, "warnings", len(warnings))
	return result, nil
}

// gatherContext loads each requested resource in order and assembles a
// context block from the usable ones. Missing or unextracted resources
// become warnings, never failures.
func (o *orchestrator) gatherContext(ctx context.Context, req Request) (string, []string) {
	var sections []string
	var warnings []string

	for _, id := range req.ResourceIDs {
		res, err := o.resources.Find(ctx, id)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("resource %s not found, skipped", id))
			continue
		}

		if !res.Usable() {
			warnings = append(warnings, fmt.Sprintf("resource %q has no extracted text (status %s), skipped", res.Title, res.Status))
			continue
		}

		sections = append(sections, fmt.Sprintf("## %s\n\n%s", res.Title, *res.ExtractedText))
	}

	return strings.Join(sections, "\n\n"), warnings
}
