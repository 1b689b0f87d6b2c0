package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/samanthagolden/speech-site/backend/internal/config"
	"github.com/samanthagolden/speech-site/backend/internal/model/chat"
	"github.com/samanthagolden/speech-site/backend/internal/model/practice"
)

// HistoryLimit caps how many prior turns are forwarded upstream.
const HistoryLimit = 10

// EmptyReplyFallback is returned when the upstream answers without content.
const EmptyReplyFallback = "I apologize, but I couldn't generate a response. Please try again."

var (
	ErrMessageRequired = errors.New("message is required")
	ErrUpstream        = errors.New("upstream API error")
)

// UpstreamError carries a caller-safe description of a failed upstream call.
// It unwraps to ErrUpstream only; the original error is never exposed.
type UpstreamError struct {
	Details string
}

func (e *UpstreamError) Error() string { return e.Details }

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// Service forwards single chat turns to the upstream chat model.
type Service struct {
	chatModel    model.BaseChatModel
	template     prompt.ChatTemplate
	systemPrompt string
	cfg          config.AIConfig
}

// NewService creates the service for the configured provider.
func NewService(ctx context.Context, p practice.Practice, cfg config.AIConfig) (*Service, error) {
	if cfg.Referer == "" {
		cfg.Referer = p.Website
	}

	var chatModel model.BaseChatModel
	switch cfg.Provider {
	case config.ProviderArk:
		arkModel, err := cfg.NewArkChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", err)
		}
		chatModel = arkModel
	default:
		chatModel = NewOpenRouterModel(cfg)
	}

	return NewServiceWithModel(chatModel, p, cfg), nil
}

// NewServiceWithModel wires the service around an existing chat model.
func NewServiceWithModel(chatModel model.BaseChatModel, p practice.Practice, cfg config.AIConfig) *Service {
	return &Service{
		chatModel: chatModel,
		template: prompt.FromMessages(
			schema.FString,
			schema.SystemMessage("{system}"),
			schema.MessagesPlaceholder("history", true),
			schema.UserMessage("{query}"),
		),
		systemPrompt: BuildSystemPrompt(p),
		cfg:          cfg,
	}
}

// SystemPrompt exposes the fixed prompt for diagnostics.
func (s *Service) SystemPrompt() string {
	return s.systemPrompt
}

// Reply answers one chat turn. Only the last HistoryLimit history entries are
// forwarded and the upstream is called exactly once.
func (s *Service) Reply(ctx context.Context, message string, history []chat.Turn) (*chat.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}

	messages, err := s.template.Format(ctx, map[string]any{
		"system":  s.systemPrompt,
		"history": buildHistoryMessages(history),
		"query":   message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := s.chatModel.Generate(ctx, messages,
		model.WithModel(s.modelName()),
		model.WithTemperature(s.cfg.Temperature),
		model.WithMaxTokens(s.cfg.MaxTokens),
	)
	if err != nil {
		details := s.redact(err.Error())
		log.Printf("[ai] upstream call failed: %s", details)
		return nil, &UpstreamError{Details: details}
	}

	reply := &chat.Reply{Text: EmptyReplyFallback}
	if resp != nil {
		if resp.Content != "" {
			reply.Text = resp.Content
		}
		if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
			usage := resp.ResponseMeta.Usage
			reply.Usage = &chat.Usage{
				PromptTokens:     usage.PromptTokens,
				CompletionTokens: usage.CompletionTokens,
				TotalTokens:      usage.TotalTokens,
			}
		}
	}

	log.Printf("[ai] generated reply, history=%d, length=%d", len(messages)-2, len(reply.Text))
	return reply, nil
}

func (s *Service) modelName() string {
	if s.cfg.Provider == config.ProviderArk {
		return s.cfg.ArkModel
	}
	return s.cfg.Model
}

// redact strips every credential the service knows about from text.
func (s *Service) redact(text string) string {
	for _, secret := range []string{s.cfg.APIKey, s.cfg.ArkAPIKey, s.cfg.ArkAccessKey, s.cfg.ArkSecretKey} {
		if secret != "" {
			text = strings.ReplaceAll(text, secret, "[redacted]")
		}
	}
	return text
}

func buildHistoryMessages(turns []chat.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	startIdx := 0
	if len(turns) > HistoryLimit {
		startIdx = len(turns) - HistoryLimit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		switch turn.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(turn.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		}
	}

	return history
}
