package chat

import "github.com/samanthagolden/speech-site/backend/internal/analysis/topic"

// HistoryLimit bounds the history a conversation sends with each message.
const HistoryLimit = 10

// Greeting is the first bot message of every conversation.
const Greeting = "Hi! I'm here to answer your speech therapy questions. What concerns bring you here today?"

// QuickQuestion is a suggested prompt shown under the chat window.
type QuickQuestion struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// QuickQuestions returns the suggested prompts in display order.
func QuickQuestions() []QuickQuestion {
	return []QuickQuestion{
		{Text: "Does insurance cover speech therapy?", Category: string(topic.Insurance)},
		{Text: "What happens in the first session?", Category: string(topic.Evaluation)},
		{Text: "How long does therapy take?", Category: string(topic.Duration)},
		{Text: "Is my child's speech delayed?", Category: string(topic.Pediatric)},
		{Text: "Help for stroke recovery?", Category: string(topic.Adult)},
	}
}
