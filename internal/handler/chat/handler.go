package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/samanthagolden/speech-site/backend/internal/model/chat"
	"github.com/samanthagolden/speech-site/backend/internal/service/ai"
	chatService "github.com/samanthagolden/speech-site/backend/internal/service/chat"
	"github.com/samanthagolden/speech-site/backend/pkg/utils"
)

// LegacyFunctionPath is where the original serverless function was mounted.
const LegacyFunctionPath = "/.netlify/functions/chat"

const (
	errMessageRequired  = "Message is required"
	errMethodNotAllowed = "Method not allowed"
	errProcessingFailed = "Failed to process chat request"
)

const maxRequestBytes = 1 << 20

// Handler 聊天代理的HTTP处理器
type Handler struct {
	assistant chatService.Assistant
	upgrader  websocket.Upgrader
}

// New 创建聊天处理器
func New(assistant chatService.Assistant) *Handler {
	return &Handler{
		assistant: assistant,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Handle("/chat", h)
	r.Get("/quick-questions", h.handleQuickQuestions)
}

// ServeHTTP answers one chat turn. Only POST and OPTIONS are accepted.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		utils.RespondError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		utils.RespondErrorDetails(w, http.StatusInternalServerError, errProcessingFailed, err.Error())
		return
	}

	status, payload := h.process(r.Context(), raw)
	utils.RespondJSON(w, status, payload)
}

// process decodes one chat request and produces the status and body to send.
func (h *Handler) process(ctx context.Context, raw []byte) (int, any) {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	var req chat.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("[chat] invalid request body: %v", err)
		return http.StatusInternalServerError, chat.ErrorResponse{
			Error:   errProcessingFailed,
			Details: fmt.Sprintf("invalid request body: %v", err),
		}
	}

	if strings.TrimSpace(req.Message) == "" {
		return http.StatusBadRequest, chat.ErrorResponse{Error: errMessageRequired}
	}

	if h.assistant == nil {
		return http.StatusInternalServerError, chat.ErrorResponse{
			Error:   errProcessingFailed,
			Details: "chat assistant not configured",
		}
	}

	reply, err := h.assistant.Reply(ctx, req.Message, req.ConversationHistory)
	switch {
	case errors.Is(err, ai.ErrMessageRequired):
		return http.StatusBadRequest, chat.ErrorResponse{Error: errMessageRequired}
	case errors.Is(err, ai.ErrUpstream):
		log.Printf("[chat] upstream failed: %v", err)
		return http.StatusInternalServerError, chat.ErrorResponse{
			Error:   errProcessingFailed,
			Details: err.Error(),
		}
	case err != nil:
		log.Printf("[chat] reply failed: %v", err)
		return http.StatusInternalServerError, chat.ErrorResponse{
			Error:   errProcessingFailed,
			Details: err.Error(),
		}
	}

	return http.StatusOK, chat.Response{Response: reply.Text, Usage: reply.Usage}
}

type quickQuestionsResponse struct {
	Greeting  string                      `json:"greeting"`
	Questions []chatService.QuickQuestion `json:"questions"`
}

// handleQuickQuestions 返回聊天窗口的开场白与推荐问题
func (h *Handler) handleQuickQuestions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, quickQuestionsResponse{
		Greeting:  chatService.Greeting,
		Questions: chatService.QuickQuestions(),
	})
}
