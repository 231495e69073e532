package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// MockMarker prefixes every mock completion so callers and tests can
// identify offline responses.
const MockMarker = "[mock completion]"

// mockProvider synthesizes deterministic placeholder completions without
// network access. It echoes the request structure so callers can verify
// prompt assembly offline.
type mockProvider struct {
	logger *slog.Logger
}

func newMock(logger *slog.Logger) System {
	return &mockProvider{
		logger: logger.With("system", "provider", "variant", "mock"),
	}
}

func (p *mockProvider) Mock() bool {
	return true
}

func (p *mockProvider) Models() []Model {
	return Catalog()
}

func (p *mockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		if mapped := mapContextErr(err); mapped != nil {
			return nil, mapped
		}
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s model=%s temperature=%.2f max_tokens=%d\n", MockMarker, req.Model, req.Temperature, req.MaxTokens)
	fmt.Fprintf(&b, "--- system ---\n%s\n", req.SystemPrompt)
	fmt.Fprintf(&b, "--- prompt ---\n%s", req.Prompt)

	p.logger.Debug("mock completion served", "model", req.Model)

	return &Response{
		Output: b.String(),
		Model:  req.Model,
	}, nil
}
