package topic

import (
	"strings"
	"testing"
)

func TestRespondPicksSpecificParagraph(t *testing.T) {
	table := DefaultTable()
	responder := NewResponder(table)

	cases := []struct {
		name  string
		input string
		want  string
		topic Topic
	}{
		{"medicare over insurance default", "Does Medicare insurance cover this?", table.Insurance.Medicare, Insurance},
		{"private insurance", "Do you take private insurance?", table.Insurance.Private, Insurance},
		{"insurance default", "Is this covered?", table.Insurance.Default, Insurance},
		{"child evaluation", "What happens in the first session for my child?", table.Evaluation.Child, Evaluation},
		{"adult evaluation", "What should I expect as an adult?", table.Evaluation.Adult, Evaluation},
		{"evaluation default", "What happens in the first session?", table.Evaluation.Default, Evaluation},
		{"duration", "How long does therapy take?", table.Duration.Default, Duration},
		{"pediatric milestones", "What milestones should a toddler hit?", table.Pediatric.Milestones, Pediatric},
		{"pediatric concerns", "I worry about my toddler", table.Pediatric.Concerns, Pediatric},
		{"pediatric process", "Is my child's speech delayed?", table.Pediatric.Process, Pediatric},
		{"stroke", "Help for stroke recovery?", table.Adult.Stroke, Adult},
		{"adult conditions", "Do you treat aphasia?", table.Adult.Conditions, Adult},
		{"appointment", "Can I book a session next week?", table.Appointment.Default, Appointment},
		{"credentials", "What are your credentials?", table.General.Credentials, General},
		{"no match", "hello there", table.Clarify, General},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := responder.Respond(tc.input)
			if got.Topic != tc.topic {
				t.Fatalf("expected topic %s, got %s", tc.topic, got.Topic)
			}
			if got.Response != tc.want {
				t.Fatalf("unexpected response for %q: %s", tc.input, got.Response)
			}
		})
	}
}

func TestRespondMedicareCost(t *testing.T) {
	got := NewResponder(DefaultTable()).Respond("How much does it cost with Medicare?")
	if !strings.Contains(got.Response, "20% after meeting your deductible") {
		t.Fatalf("expected medicare paragraph, got %q", got.Response)
	}
}

func TestRespondIsCaseInsensitive(t *testing.T) {
	responder := NewResponder(DefaultTable())
	upper := responder.Respond("DOES MEDICARE PAY?")
	lower := responder.Respond("does medicare pay?")
	if upper != lower {
		t.Fatalf("expected identical answers, got %q and %q", upper.Response, lower.Response)
	}
}

func TestRespondInsuranceBeatsEvaluation(t *testing.T) {
	table := DefaultTable()
	got := NewResponder(table).Respond("Do I need to pay for the first evaluation?")
	if got.Topic != Insurance || got.Response != table.Insurance.Default {
		t.Fatalf("expected insurance default, got %s: %s", got.Topic, got.Response)
	}
}

func TestRespondIsDeterministic(t *testing.T) {
	responder := NewResponder(DefaultTable())
	inputs := []string{"x", "my kid", "stroke", "schedule", "???", "Medicare"}
	for _, in := range inputs {
		first := responder.Respond(in)
		for i := 0; i < 5; i++ {
			if again := responder.Respond(in); again != first {
				t.Fatalf("non-deterministic answer for %q", in)
			}
		}
		if first.Response == "" || first.Topic == "" {
			t.Fatalf("empty answer for %q", in)
		}
	}
}

func TestRespondUsesSuppliedTable(t *testing.T) {
	table := DefaultTable()
	table.Clarify = "custom clarify"
	got := NewResponder(table).Respond("nothing relevant")
	if got.Response != "custom clarify" {
		t.Fatalf("expected custom table text, got %q", got.Response)
	}
}
