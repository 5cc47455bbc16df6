package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avezina/scrutiny/internal/model"
)

func testReport() model.CitationReport {
	return model.CitationReport{
		Style: "APA",
		Citations: []model.Citation{
			{Number: 1, Components: model.Components{URL: "https://example.com/1"}},
		},
		Summary: model.CitationSummary{Total: 1, Valid: 1, ValidationRate: 1.0, OverallQuality: 0.9},
	}
}

func TestOllamaProvider_Summarize_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected path /api/generate, got %s", r.URL.Path)
		}

		var apiReq ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if apiReq.Stream {
			t.Error("Expected non-streaming request")
		}
		if !strings.Contains(apiReq.Prompt, "https://example.com/1") {
			t.Error("Expected allowlist URL in prompt")
		}

		resp := ollamaResponse{
			Model:           "llama3.1",
			Response:        "One of one citations is complete. Source: https://example.com/1",
			Done:            true,
			PromptEvalCount: 10,
			EvalCount:       20,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	config := Config{
		BaseURL:        server.URL,
		Model:          "llama3.1",
		Timeout:        5,
		StrictEvidence: true,
	}
	provider, err := NewOllamaProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	req := SummarizeRequest{
		Report:      testReport(),
		AllowedURLs: []string{"https://example.com/1"},
	}

	resp, err := provider.Summarize(context.Background(), req)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if !strings.Contains(resp.Summary, "complete") {
		t.Errorf("Unexpected summary: %s", resp.Summary)
	}
	if len(resp.CitedURLs) != 1 || resp.CitedURLs[0] != "https://example.com/1" {
		t.Errorf("Unexpected cited URLs: %v", resp.CitedURLs)
	}
	if resp.TokensUsed != 30 {
		t.Errorf("Unexpected token usage: %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_Summarize_CitationLeak(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ollamaResponse{
			Model:    "llama3.1",
			Response: "See https://unrelated.example/leak for details.",
			Done:     true,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	config := Config{
		BaseURL:        server.URL,
		Model:          "llama3.1",
		Timeout:        5,
		StrictEvidence: true,
	}
	provider, err := NewOllamaProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	req := SummarizeRequest{
		Report:      testReport(),
		AllowedURLs: []string{"https://example.com/1"},
	}

	_, err = provider.Summarize(context.Background(), req)
	if err == nil {
		t.Fatal("Expected citation leak error, got nil")
	}
	if !strings.Contains(err.Error(), "citation leak") {
		t.Errorf("Expected citation leak error, got %v", err)
	}
}

func TestOllamaProvider_Summarize_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1", Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Summarize(context.Background(), SummarizeRequest{Report: testReport()})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("Expected API error message, got %v", err)
	}
}

func TestOllamaProvider_Summarize_RequiresModel(t *testing.T) {
	provider, err := NewOllamaProvider(Config{BaseURL: "http://localhost:1", Timeout: 1})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Summarize(context.Background(), SummarizeRequest{Report: testReport()})
	if err == nil || !strings.Contains(err.Error(), "model must be specified") {
		t.Errorf("Expected missing-model error, got %v", err)
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be available")
	}

	server.Close()
	if provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be unavailable after shutdown")
	}
}

func TestExtractURLs(t *testing.T) {
	text := "See https://example.com/a, then (https://example.com/b) and https://example.com/a again."

	urls := extractURLs(text)
	if len(urls) != 2 {
		t.Fatalf("Expected 2 deduplicated URLs, got %v", urls)
	}
	if urls[0] != "https://example.com/a" || urls[1] != "https://example.com/b" {
		t.Errorf("Unexpected URLs %v", urls)
	}
}

func TestCheckCitationLeak(t *testing.T) {
	allowed := []string{"https://example.com/1"}

	if err := checkCitationLeak([]string{"https://example.com/1"}, allowed); err != nil {
		t.Errorf("Expected allowed citation to pass, got %v", err)
	}
	if err := checkCitationLeak([]string{"https://evil.example"}, allowed); err == nil {
		t.Error("Expected leak to be rejected")
	}
	if err := checkCitationLeak(nil, nil); err != nil {
		t.Errorf("Expected no-URL output to pass, got %v", err)
	}
}

func TestNewProvider_Factory(t *testing.T) {
	if p, err := NewProvider(Config{}); err != nil || p != nil {
		t.Errorf("Expected disabled provider for empty name, got %v / %v", p, err)
	}

	if _, err := NewProvider(Config{Provider: "bard"}); err == nil {
		t.Error("Expected error for unknown provider")
	}

	p, err := NewProvider(Config{Provider: "ollama"})
	if err != nil || p == nil || p.Name() != "ollama" {
		t.Errorf("Expected ollama provider, got %v / %v", p, err)
	}
}
