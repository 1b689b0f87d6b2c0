package chat

// Usage mirrors the upstream token accounting block.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Reply is a single assistant answer produced for one chat turn.
type Reply struct {
	Text  string
	Usage *Usage
}

// Request is the JSON body accepted by the chat proxy.
type Request struct {
	Message             string `json:"message"`
	ConversationHistory []Turn `json:"conversationHistory,omitempty"`
}

// Response is the success body returned by the chat proxy.
type Response struct {
	Response string `json:"response"`
	Usage    *Usage `json:"usage,omitempty"`
}

// ErrorResponse is the failure body returned by the chat proxy.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
