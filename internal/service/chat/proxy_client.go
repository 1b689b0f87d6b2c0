package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/samanthagolden/speech-site/backend/internal/model/chat"
)

// ProxyClient calls the chat proxy over HTTP the way the website widget does.
type ProxyClient struct {
	endpoint string
	client   *http.Client
}

// NewProxyClient returns a client for the proxy at endpoint. A nil client
// falls back to http.DefaultClient.
func NewProxyClient(endpoint string, client *http.Client) *ProxyClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &ProxyClient{endpoint: endpoint, client: client}
}

// Reply posts one turn to the proxy. Any non-2xx status is an error.
func (p *ProxyClient) Reply(ctx context.Context, message string, history []chat.Turn) (*chat.Reply, error) {
	body, err := json.Marshal(chat.Request{Message: message, ConversationHistory: history})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxy call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp chat.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("proxy error %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("proxy error %d", resp.StatusCode)
	}

	var out chat.Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &chat.Reply{Text: out.Response, Usage: out.Usage}, nil
}
