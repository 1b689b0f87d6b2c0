package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	openaiapi "github.com/sashabaranov/go-openai"

	"github.com/samanthagolden/speech-site/backend/internal/config"
)

// OpenRouterModel adapts an OpenAI-compatible chat completion endpoint to the
// eino chat model interface.
type OpenRouterModel struct {
	api         *openaiapi.Client
	model       string
	temperature float32
	maxTokens   int
}

var _ model.BaseChatModel = (*OpenRouterModel)(nil)

// NewOpenRouterModel builds the upstream client from configuration.
func NewOpenRouterModel(cfg config.AIConfig) *OpenRouterModel {
	apiCfg := openaiapi.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL
	apiCfg.HTTPClient = &headerDoer{
		client: &http.Client{Timeout: cfg.Timeout},
		headers: map[string]string{
			"HTTP-Referer": cfg.Referer,
			"X-Title":      cfg.Title,
		},
	}

	return &OpenRouterModel{
		api:         openaiapi.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Generate issues exactly one chat completion request.
func (m *OpenRouterModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	options := model.GetCommonOptions(&model.Options{
		Model:       &m.model,
		Temperature: &m.temperature,
		MaxTokens:   &m.maxTokens,
	}, opts...)

	req := openaiapi.ChatCompletionRequest{
		Messages: toAPIMessages(input),
	}
	if options.Model != nil {
		req.Model = *options.Model
	}
	if options.Temperature != nil {
		req.Temperature = *options.Temperature
	}
	if options.MaxTokens != nil {
		req.MaxTokens = *options.MaxTokens
	}

	resp, err := m.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, describeAPIError(err)
	}

	out := &schema.Message{Role: schema.Assistant}
	meta := &schema.ResponseMeta{}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		meta.FinishReason = string(resp.Choices[0].FinishReason)
	}
	if resp.Usage.TotalTokens > 0 || resp.Usage.PromptTokens > 0 || resp.Usage.CompletionTokens > 0 {
		meta.Usage = &schema.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	out.ResponseMeta = meta
	return out, nil
}

// Stream is served by a single non-streaming call; the proxy never streams.
func (m *OpenRouterModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// describeAPIError keeps only the status code of upstream failures so neither
// the upstream body nor request headers reach callers.
func describeAPIError(err error) error {
	var apiErr *openaiapi.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %d", ErrUpstream, apiErr.HTTPStatusCode)
	}
	var reqErr *openaiapi.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: %d", ErrUpstream, reqErr.HTTPStatusCode)
	}
	return fmt.Errorf("upstream request failed: %w", err)
}

func toAPIMessages(msgs []*schema.Message) []openaiapi.ChatCompletionMessage {
	res := make([]openaiapi.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		res = append(res, openaiapi.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return res
}

// headerDoer attaches the attribution headers OpenRouter expects.
type headerDoer struct {
	client  *http.Client
	headers map[string]string
}

func (d *headerDoer) Do(req *http.Request) (*http.Response, error) {
	for k, v := range d.headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}
	return d.client.Do(req)
}
