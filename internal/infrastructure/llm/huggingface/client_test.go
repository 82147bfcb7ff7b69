package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm"
)

func TestGenerateSendsInferencePayload(t *testing.T) {
	var (
		capturedPath string
		capturedAuth string
		payload      generateRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`[{"generated_text":"  Fresh copy  "}]`))
	}))
	defer server.Close()

	client := New(server.URL, "mistralai/Mistral-7B-Instruct-v0.1", "secret")
	req := domain.DefaultGenerationParams
	req.Prompt = "Write copy"

	got, err := client.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Fresh copy" {
		t.Fatalf("unexpected text %q", got)
	}
	if capturedPath != "/models/mistralai/Mistral-7B-Instruct-v0.1" {
		t.Fatalf("unexpected path %q", capturedPath)
	}
	if capturedAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", capturedAuth)
	}
	if payload.Inputs != "Write copy" || payload.Parameters.MaxNewTokens != 300 || !payload.Parameters.DoSample {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.Parameters.ReturnFullText {
		t.Fatalf("return_full_text must be false")
	}
}

func TestGenerateOmitsAuthWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected no auth header")
		}
		_, _ = w.Write([]byte(`{"generated_text":"object form"}`))
	}))
	defer server.Close()

	got, err := New(server.URL, "m", "").Generate(context.Background(), domain.GenerationRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "object form" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGenerateMarksUnavailableModelTemporary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := New(server.URL, "m", "").Generate(context.Background(), domain.GenerationRequest{Prompt: "p"})
	if !errors.Is(err, domain.ErrTemporary) {
		t.Fatalf("expected ErrTemporary, got %v", err)
	}
	var statusErr *llm.HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status error, got %v", err)
	}
	if !strings.Contains(err.Error(), "model loading") {
		t.Fatalf("expected response body in error, got %v", err)
	}
}

func TestParseGeneratedTextEmptyList(t *testing.T) {
	_, err := parseGeneratedText(json.RawMessage(`[]`))
	if !errors.Is(err, domain.ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}
