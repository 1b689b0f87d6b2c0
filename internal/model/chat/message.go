package chat

import "time"

// Sender identifies who produced a widget message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Wire roles understood by the chat proxy and the upstream API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one bubble in the chat widget. It is never mutated after creation.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category,omitempty"`
}

// Turn is a conversation history entry as sent to the proxy.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TurnFromMessage maps a widget message onto the proxy's history format.
func TurnFromMessage(m Message) Turn {
	role := RoleAssistant
	if m.Sender == SenderUser {
		role = RoleUser
	}
	return Turn{Role: role, Content: m.Text}
}
