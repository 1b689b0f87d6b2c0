package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/samanthagolden/speech-site/backend/internal/config"
	"github.com/samanthagolden/speech-site/backend/internal/model/practice"
)

type upstreamRequest struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func openRouterConfig(baseURL string) config.AIConfig {
	cfg := testConfig()
	cfg.BaseURL = baseURL
	cfg.Referer = "https://example.test"
	cfg.Title = "Test Practice"
	return cfg
}

func TestOpenRouterGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-or-secret-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("HTTP-Referer"); got != "https://example.test" {
			t.Errorf("unexpected HTTP-Referer header %q", got)
		}
		if got := r.Header.Get("X-Title"); got != "Test Practice" {
			t.Errorf("unexpected X-Title header %q", got)
		}

		var req upstreamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "openai/gpt-4-turbo-preview" || req.Temperature != 0.7 || req.MaxTokens != 500 {
			t.Errorf("unexpected request parameters: %+v", req)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Content != "hello" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"world"},"finish_reason":"stop"}],"usage":{"prompt_tokens":12,"completion_tokens":3,"total_tokens":15}}`))
	}))
	defer server.Close()

	m := NewOpenRouterModel(openRouterConfig(server.URL + "/v1"))
	out, err := m.Generate(context.Background(), []*schema.Message{
		schema.SystemMessage("be nice"),
		schema.UserMessage("hello"),
	})
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if out.Content != "world" {
		t.Fatalf("expected 'world', got %q", out.Content)
	}
	if out.ResponseMeta == nil || out.ResponseMeta.Usage == nil || out.ResponseMeta.Usage.TotalTokens != 15 {
		t.Fatalf("expected usage to be copied, got %+v", out.ResponseMeta)
	}
}

func TestOpenRouterEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	m := NewOpenRouterModel(openRouterConfig(server.URL))
	out, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if out.Content != "" || out.ResponseMeta.Usage != nil {
		t.Fatalf("expected empty message without usage, got %+v", out)
	}
}

func TestOpenRouterStatusErrorHidesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":{"message":"provider exploded for key sk-or-secret-key","code":502}}`))
	}))
	defer server.Close()

	m := NewOpenRouterModel(openRouterConfig(server.URL))
	_, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if err.Error() != "upstream API error: 502" {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}

func TestServiceWithOpenRouterUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	cfg := openRouterConfig(server.URL)
	svc, err := NewService(context.Background(), practice.Default(), cfg)
	if err != nil {
		t.Fatalf("NewService err: %v", err)
	}

	_, err = svc.Reply(context.Background(), "hello", nil)
	if err == nil {
		t.Fatal("expected upstream failure")
	}
	if strings.Contains(err.Error(), cfg.APIKey) || strings.Contains(err.Error(), "boom") {
		t.Fatalf("error exposes upstream details: %s", err)
	}
}

func TestServiceRefererDefaultsToPracticeWebsite(t *testing.T) {
	profile := practice.Default()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("HTTP-Referer"); got != profile.Website {
			t.Errorf("expected HTTP-Referer %q, got %q", profile.Website, got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"hi"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.BaseURL = server.URL

	svc, err := NewService(context.Background(), profile, cfg)
	if err != nil {
		t.Fatalf("NewService err: %v", err)
	}
	reply, err := svc.Reply(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Reply err: %v", err)
	}
	if reply.Text != "hi" {
		t.Fatalf("unexpected reply %q", reply.Text)
	}
}
