package topic

import "strings"

// Topic is the closed set of labels the local responder can assign.
type Topic string

const (
	Insurance   Topic = "insurance"
	Evaluation  Topic = "evaluation"
	Duration    Topic = "duration"
	Pediatric   Topic = "pediatric"
	Adult       Topic = "adult"
	Appointment Topic = "appointment"
	General     Topic = "general"
)

// Answer is the canned reply picked for a message.
type Answer struct {
	Response string
	Topic    Topic
}

// variant narrows a matched topic to a more specific paragraph.
type variant struct {
	keywords []string
	pick     func(Table) string
}

// rule is one (predicate, response) pair. Rules are evaluated in order and the
// first one whose keywords appear in the message wins.
type rule struct {
	topic    Topic
	keywords []string
	variants []variant
	fallback func(Table) string
}

var rules = []rule{
	{
		topic:    Insurance,
		keywords: []string{"insurance", "cost", "pay", "covered"},
		variants: []variant{
			{keywords: []string{"medicare"}, pick: func(t Table) string { return t.Insurance.Medicare }},
			{keywords: []string{"private"}, pick: func(t Table) string { return t.Insurance.Private }},
		},
		fallback: func(t Table) string { return t.Insurance.Default },
	},
	{
		topic:    Evaluation,
		keywords: []string{"first", "evaluation", "assess", "expect"},
		variants: []variant{
			{keywords: []string{"child", "kid"}, pick: func(t Table) string { return t.Evaluation.Child }},
			{keywords: []string{"adult", "stroke"}, pick: func(t Table) string { return t.Evaluation.Adult }},
		},
		fallback: func(t Table) string { return t.Evaluation.Default },
	},
	{
		topic:    Duration,
		keywords: []string{"how long", "duration", "timeline"},
		fallback: func(t Table) string { return t.Duration.Default },
	},
	{
		topic:    Pediatric,
		keywords: []string{"child", "toddler", "delay", "milestone"},
		variants: []variant{
			{keywords: []string{"milestone", "age"}, pick: func(t Table) string { return t.Pediatric.Milestones }},
			{keywords: []string{"concern", "worry"}, pick: func(t Table) string { return t.Pediatric.Concerns }},
		},
		fallback: func(t Table) string { return t.Pediatric.Process },
	},
	{
		topic:    Adult,
		keywords: []string{"stroke", "adult", "aphasia"},
		variants: []variant{
			{keywords: []string{"stroke"}, pick: func(t Table) string { return t.Adult.Stroke }},
		},
		fallback: func(t Table) string { return t.Adult.Conditions },
	},
	{
		topic:    Appointment,
		keywords: []string{"appointment", "schedule", "book"},
		fallback: func(t Table) string { return t.Appointment.Default },
	},
	{
		topic:    General,
		keywords: []string{"qualification", "credential", "experience"},
		fallback: func(t Table) string { return t.General.Credentials },
	},
}

// Responder answers questions from the static response table without any
// network access. It holds no mutable state and is safe for concurrent use.
type Responder struct {
	table Table
}

// NewResponder builds a responder over the supplied table.
func NewResponder(table Table) *Responder {
	return &Responder{table: table}
}

// Respond picks the canned answer for text. It never fails: text that matches
// no rule gets the clarifying answer under the general topic.
func (r *Responder) Respond(text string) Answer {
	normalized := strings.ToLower(text)

	for _, rl := range rules {
		if !containsAny(normalized, rl.keywords) {
			continue
		}
		for _, v := range rl.variants {
			if containsAny(normalized, v.keywords) {
				return Answer{Response: v.pick(r.table), Topic: rl.topic}
			}
		}
		return Answer{Response: rl.fallback(r.table), Topic: rl.topic}
	}

	return Answer{Response: r.table.Clarify, Topic: General}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
