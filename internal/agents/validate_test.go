package agents

import (
	"errors"
	"net/http"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		agentName    string
		systemPrompt string
		model        string
		temperature  float64
		maxTokens    int
		wantErr      bool
	}{
		{
			name:         "valid agent",
			agentName:    "Reviewer",
			systemPrompt: "You review documents.",
			model:        "gpt-3.5-turbo",
			temperature:  0.7,
			maxTokens:    1000,
			wantErr:      false,
		},
		{
			name:         "empty name",
			agentName:    "  ",
			systemPrompt: "prompt",
			model:        "gpt-3.5-turbo",
			temperature:  0.7,
			maxTokens:    1000,
			wantErr:      true,
		},
		{
			name:         "empty system prompt",
			agentName:    "Reviewer",
			systemPrompt: "",
			model:        "gpt-3.5-turbo",
			temperature:  0.7,
			maxTokens:    1000,
			wantErr:      true,
		},
		{
			name:         "whitespace system prompt",
			agentName:    "Reviewer",
			systemPrompt: "   ",
			model:        "gpt-3.5-turbo",
			temperature:  0.7,
			maxTokens:    1000,
			wantErr:      true,
		},
		{
			name:         "unknown model",
			agentName:    "Reviewer",
			systemPrompt: "prompt",
			model:        "gpt-99",
			temperature:  0.7,
			maxTokens:    1000,
			wantErr:      true,
		},
		{
			name:         "temperature too high",
			agentName:    "Reviewer",
			systemPrompt: "prompt",
			model:        "gpt-3.5-turbo",
			temperature:  2.5,
			maxTokens:    1000,
			wantErr:      true,
		},
		{
			name:         "temperature too low",
			agentName:    "Reviewer",
			systemPrompt: "prompt",
			model:        "gpt-3.5-turbo",
			temperature:  -0.1,
			maxTokens:    1000,
			wantErr:      true,
		},
		{
			name:         "boundary temperatures valid",
			agentName:    "Reviewer",
			systemPrompt: "prompt",
			model:        "gpt-3.5-turbo",
			temperature:  2.0,
			maxTokens:    1000,
			wantErr:      false,
		},
		{
			name:         "zero max tokens",
			agentName:    "Reviewer",
			systemPrompt: "prompt",
			model:        "gpt-3.5-turbo",
			temperature:  0.7,
			maxTokens:    0,
			wantErr:      true,
		},
		{
			name:         "negative max tokens",
			agentName:    "Reviewer",
			systemPrompt: "prompt",
			model:        "gpt-3.5-turbo",
			temperature:  0.7,
			maxTokens:    -10,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.agentName, tt.systemPrompt, tt.model, tt.temperature, tt.maxTokens)

			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("validate() error = %v, want %v", err, ErrValidation)
				}
			} else if err != nil {
				t.Errorf("validate() error = %v, want nil", err)
			}
		})
	}
}

func TestCommand_Resolve(t *testing.T) {
	defaults := Defaults{
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	t.Run("all omitted uses defaults", func(t *testing.T) {
		model, temperature, maxTokens := Command{}.resolve(defaults)

		if model != "gpt-3.5-turbo" {
			t.Errorf("model = %q, want %q", model, "gpt-3.5-turbo")
		}
		if temperature != 0.7 {
			t.Errorf("temperature = %v, want 0.7", temperature)
		}
		if maxTokens != 1000 {
			t.Errorf("maxTokens = %d, want 1000", maxTokens)
		}
	})

	t.Run("explicit values win", func(t *testing.T) {
		temp := 1.2
		tokens := 2000

		model, temperature, maxTokens := Command{
			Model:       "gpt-4o",
			Temperature: &temp,
			MaxTokens:   &tokens,
		}.resolve(defaults)

		if model != "gpt-4o" {
			t.Errorf("model = %q, want %q", model, "gpt-4o")
		}
		if temperature != 1.2 {
			t.Errorf("temperature = %v, want 1.2", temperature)
		}
		if maxTokens != 2000 {
			t.Errorf("maxTokens = %d, want 2000", maxTokens)
		}
	})

	t.Run("explicit zero temperature kept", func(t *testing.T) {
		temp := 0.0

		_, temperature, _ := Command{Temperature: &temp}.resolve(defaults)

		if temperature != 0.0 {
			t.Errorf("temperature = %v, want 0.0", temperature)
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"duplicate", ErrDuplicate, http.StatusConflict},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"wrapped validation", errors.Join(ErrValidation, errors.New("detail")), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
