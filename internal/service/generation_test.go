package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/timmy/brandkit/internal/prompts"
)

// TestGeneratePromptComposition verifies the user message frames the context
// with the header above and the instruction template below
func TestGeneratePromptComposition(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"  1. **Color Theme**: warm.  "}]}`))
	}))
	defer srv.Close()

	svc := NewGenerationService(&GenerationServiceConfig{
		Model:   "test-model",
		APIKey:  "key",
		BaseURL: srv.URL,
	})

	got, err := svc.Generate(context.Background(), "CONTEXT BLOCK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1. **Color Theme**: warm." {
		t.Errorf("response not trimmed: %q", got)
	}

	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("unexpected messages: %+v", captured.Messages)
	}
	prompt := captured.Messages[0].Content
	if !strings.HasPrefix(prompt, prompts.BrandKitContextHeader+"\n\n") {
		t.Errorf("prompt missing context header: %q", prompt)
	}
	if !strings.Contains(prompt, "\n\nCONTEXT BLOCK\n\n") {
		t.Errorf("prompt missing context block: %q", prompt)
	}
	if !strings.HasSuffix(prompt, prompts.BrandKitInstruction) {
		t.Errorf("prompt missing instruction template: %q", prompt)
	}
	if captured.Model != "test-model" {
		t.Errorf("model: got %q, want test-model", captured.Model)
	}
	if captured.MaxTokens != 1024 {
		t.Errorf("max_tokens: got %d, want 1024", captured.MaxTokens)
	}
}

// TestGenerateAPIError verifies non-2xx responses surface the API message
func TestGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewGenerationService(&GenerationServiceConfig{
		Model:   "test-model",
		APIKey:  "key",
		BaseURL: srv.URL,
	})

	if _, err := svc.Generate(context.Background(), "context"); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

// TestGenerateEmptyContent verifies an empty content array is an error
func TestGenerateEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	svc := NewGenerationService(&GenerationServiceConfig{
		Model:   "test-model",
		APIKey:  "key",
		BaseURL: srv.URL,
	})

	if _, err := svc.Generate(context.Background(), "context"); err == nil {
		t.Fatal("expected error on empty content")
	}
}
