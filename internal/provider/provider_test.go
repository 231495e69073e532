package provider

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"gpt-3.5-turbo", true},
		{"gpt-4o", true},
		{"gpt-4o-mini", true},
		{"gpt-99", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Accepts(tt.id); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	models := Catalog()
	if len(models) == 0 {
		t.Fatal("Catalog() returned no models")
	}

	models[0].ID = "mutated"

	if Catalog()[0].ID == "mutated" {
		t.Error("Catalog() shares backing storage with callers")
	}
}

func TestNew_SelectsMockWithoutCredential(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sys := New(cfg, testLogger())
	if !sys.Mock() {
		t.Error("Mock() = false, want true without credential")
	}
}

func TestNew_SelectsLiveWithCredential(t *testing.T) {
	t.Setenv("TEST_PROVIDER_API_KEY", "sk-test")

	cfg := &Config{}
	if err := cfg.Finalize(&Env{APIKey: "TEST_PROVIDER_API_KEY"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sys := New(cfg, testLogger())
	if sys.Mock() {
		t.Error("Mock() = true, want false with credential")
	}
}

func TestMock_Complete_Deterministic(t *testing.T) {
	sys := newMock(testLogger())

	req := Request{
		SystemPrompt: "You are concise.",
		Prompt:       "Summarize the report.",
		Model:        "gpt-4o",
		Temperature:  0.5,
		MaxTokens:    500,
	}

	first, err := sys.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	second, err := sys.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete() second error = %v", err)
	}

	if first.Output != second.Output {
		t.Errorf("repeated completions differ:\n%q\n%q", first.Output, second.Output)
	}
}

func TestMock_Complete_StructuredEcho(t *testing.T) {
	sys := newMock(testLogger())

	resp, err := sys.Complete(context.Background(), Request{
		SystemPrompt: "system text",
		Prompt:       "user text",
		Model:        "gpt-3.5-turbo",
		Temperature:  0.7,
		MaxTokens:    1000,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if !strings.HasPrefix(resp.Output, MockMarker) {
		t.Errorf("Output = %q, want prefix %q", resp.Output, MockMarker)
	}
	if !strings.Contains(resp.Output, "system text") {
		t.Error("Output missing system prompt echo")
	}
	if !strings.Contains(resp.Output, "user text") {
		t.Error("Output missing prompt echo")
	}
	if resp.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q, want %q", resp.Model, "gpt-3.5-turbo")
	}
}

func TestMock_Complete_CancelledContext(t *testing.T) {
	sys := newMock(testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sys.Complete(ctx, Request{Model: "gpt-4o"})
	if err == nil {
		t.Error("Complete() with cancelled context succeeded, want error")
	}
}

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) System {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &Config{BaseURL: srv.URL + "/v1", apiKey: "sk-test"}
	return newOpenAI(cfg, testLogger())
}

func TestOpenAI_Complete(t *testing.T) {
	sys := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Generated answer."}, "finish_reason": "stop"}],
			"usage": {"completion_tokens": 12}
		}`))
	})

	resp, err := sys.Complete(context.Background(), Request{
		SystemPrompt: "system",
		Prompt:       "prompt",
		Model:        "gpt-4o",
		Temperature:  0.7,
		MaxTokens:    100,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if resp.Output != "Generated answer." {
		t.Errorf("Output = %q, want %q", resp.Output, "Generated answer.")
	}
	if resp.Model != "gpt-4o" {
		t.Errorf("Model = %q, want %q", resp.Model, "gpt-4o")
	}
	if resp.CompletionTokens != 12 {
		t.Errorf("CompletionTokens = %d, want 12", resp.CompletionTokens)
	}
}

func TestOpenAI_Complete_RateLimited(t *testing.T) {
	sys := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "rate_limit_error"}}`))
	})

	_, err := sys.Complete(context.Background(), Request{Model: "gpt-4o", Prompt: "x"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Complete() error = %v, want %v", err, ErrUnavailable)
	}
}

func TestOpenAI_Complete_EmptyChoices(t *testing.T) {
	sys := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cmpl-1", "object": "chat.completion", "model": "gpt-4o", "choices": []}`))
	})

	_, err := sys.Complete(context.Background(), Request{Model: "gpt-4o", Prompt: "x"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Complete() error = %v, want %v", err, ErrUnavailable)
	}
}
