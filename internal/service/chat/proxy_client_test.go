package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samanthagolden/speech-site/backend/internal/analysis/topic"
	model "github.com/samanthagolden/speech-site/backend/internal/model/chat"
	chat "github.com/samanthagolden/speech-site/backend/internal/service/chat"
)

func TestProxyClientReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		var req model.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Message != "hi" || len(req.ConversationHistory) != 1 {
			t.Errorf("unexpected request: %+v", req)
		}
		json.NewEncoder(w).Encode(model.Response{Response: "hello", Usage: &model.Usage{TotalTokens: 7}})
	}))
	defer server.Close()

	client := chat.NewProxyClient(server.URL, nil)
	reply, err := client.Reply(context.Background(), "hi", []model.Turn{{Role: model.RoleAssistant, Content: "greeting"}})
	if err != nil {
		t.Fatalf("Reply err: %v", err)
	}
	if reply.Text != "hello" || reply.Usage == nil || reply.Usage.TotalTokens != 7 {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestProxyClientNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Failed to process chat request", Details: "upstream API error: 503"})
	}))
	defer server.Close()

	_, err := chat.NewProxyClient(server.URL, nil).Reply(context.Background(), "hi", nil)
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected proxy error with status, got %v", err)
	}
}

func TestProxyClientMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	if _, err := chat.NewProxyClient(server.URL, nil).Reply(context.Background(), "hi", nil); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestConversationFallsBackOnUnreachableProxy(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	conv := chat.NewConversation(chat.NewProxyClient(url, nil), topic.NewResponder(topic.DefaultTable()), chat.Options{AIEnabled: true})
	msg, err := conv.Send(context.Background(), "Help for stroke recovery?")
	if err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if msg.Text != topic.DefaultTable().Adult.Stroke {
		t.Fatalf("expected local stroke answer, got %q", msg.Text)
	}
}
