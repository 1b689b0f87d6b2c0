package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samanthagolden/speech-site/backend/internal/analysis/topic"
	"github.com/samanthagolden/speech-site/backend/internal/model/chat"
)

// CategoryAI labels free-text replies produced by the proxy.
const CategoryAI = "ai"

var ErrEmptyMessage = errors.New("empty message")

// Assistant produces an AI reply for one chat turn.
type Assistant interface {
	Reply(ctx context.Context, message string, history []chat.Turn) (*chat.Reply, error)
}

// Options controls how a conversation picks its reply strategy.
type Options struct {
	// AIEnabled routes messages through the assistant; when false only the
	// local responder answers.
	AIEnabled bool
	// TypingDelay is waited before a local answer on the non-AI path.
	TypingDelay time.Duration
}

// Conversation is the widget-side state of one visitor's chat session.
type Conversation struct {
	mu        sync.Mutex
	messages  []chat.Message
	assistant Assistant
	responder *topic.Responder
	opts      Options
	now       func() time.Time
}

// NewConversation starts a conversation with the greeting already posted.
func NewConversation(assistant Assistant, responder *topic.Responder, opts Options) *Conversation {
	c := &Conversation{
		assistant: assistant,
		responder: responder,
		opts:      opts,
		now:       time.Now,
	}
	c.messages = append(c.messages, c.newMessage(Greeting, chat.SenderBot, "greeting"))
	return c
}

// Send posts free text and returns the bot reply. It only fails on empty input.
func (c *Conversation) Send(ctx context.Context, text string) (chat.Message, error) {
	return c.exchange(ctx, text, CategoryAI)
}

// Ask posts one of the quick questions. AI replies are labelled with the
// question's category.
func (c *Conversation) Ask(ctx context.Context, q QuickQuestion) (chat.Message, error) {
	return c.exchange(ctx, q.Text, q.Category)
}

// Messages returns a copy of the transcript in insertion order.
func (c *Conversation) Messages() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]chat.Message, len(c.messages))
	copy(copied, c.messages)
	return copied
}

func (c *Conversation) exchange(ctx context.Context, text, aiCategory string) (chat.Message, error) {
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	c.mu.Lock()
	history := historyTurns(c.messages)
	c.messages = append(c.messages, c.newMessage(text, chat.SenderUser, ""))
	c.mu.Unlock()

	if c.opts.AIEnabled && c.assistant != nil {
		reply, err := c.assistant.Reply(ctx, text, history)
		if err == nil {
			return c.post(reply.Text, aiCategory), nil
		}
		log.Printf("[chat] assistant failed, answering locally: %v", err)
		return c.answerLocally(text), nil
	}

	c.typingPause(ctx)
	return c.answerLocally(text), nil
}

func (c *Conversation) answerLocally(text string) chat.Message {
	answer := c.responder.Respond(text)
	return c.post(answer.Response, string(answer.Topic))
}

func (c *Conversation) post(text, category string) chat.Message {
	msg := c.newMessage(text, chat.SenderBot, category)
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
	return msg
}

// typingPause waits for the typing delay or until ctx is done.
func (c *Conversation) typingPause(ctx context.Context) {
	if c.opts.TypingDelay <= 0 {
		return
	}
	timer := time.NewTimer(c.opts.TypingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (c *Conversation) newMessage(text string, sender chat.Sender, category string) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: c.now().UTC(),
		Category:  category,
	}
}

// historyTurns converts the most recent messages to proxy history entries.
func historyTurns(messages []chat.Message) []chat.Turn {
	start := 0
	if len(messages) > HistoryLimit {
		start = len(messages) - HistoryLimit
	}

	turns := make([]chat.Turn, 0, len(messages)-start)
	for _, m := range messages[start:] {
		turns = append(turns, chat.TurnFromMessage(m))
	}
	return turns
}
