package topic

// Table holds every canned paragraph the responder can return.
type Table struct {
	Insurance   InsuranceTexts
	Evaluation  EvaluationTexts
	Duration    DurationTexts
	Pediatric   PediatricTexts
	Adult       AdultTexts
	Appointment AppointmentTexts
	General     GeneralTexts
	// Clarify is returned when no rule matches.
	Clarify string
}

type InsuranceTexts struct {
	Default  string
	Medicare string
	Private  string
}

type EvaluationTexts struct {
	Default string
	Child   string
	Adult   string
}

type DurationTexts struct {
	Default string
}

type PediatricTexts struct {
	Milestones string
	Concerns   string
	Process    string
}

type AdultTexts struct {
	Stroke     string
	Conditions string
}

type AppointmentTexts struct {
	Default string
}

type GeneralTexts struct {
	Credentials string
}

// DefaultTable returns the answers published on the practice website.
func DefaultTable() Table {
	return Table{
		Insurance: InsuranceTexts{
			Default:  "Most major insurance plans cover speech therapy when medically necessary. I accept Aetna, Cigna, Blue Cross Blue Shield, United Healthcare, and Medicare. I'll verify your benefits before our first session and explain any out-of-pocket costs. My self-pay rate is $150-200 per session.",
			Medicare: "Yes, Medicare Part B covers speech therapy when ordered by a doctor. There's no limit on medically necessary sessions. You'll pay 20% after meeting your deductible.",
			Private:  "Private insurance typically covers 20-60 sessions per year. I'll handle the pre-authorization and help maximize your benefits.",
		},
		Evaluation: EvaluationTexts{
			Default: "Your first visit (60-90 minutes) includes: 1) Discussion of your concerns and goals, 2) Comprehensive assessment using standardized tests, 3) Informal observation during conversation or play, 4) Review of medical history, 5) Creation of a personalized treatment plan. You'll leave knowing exactly what we'll work on together.",
			Child:   "For children, I make the evaluation fun and play-based. Parents stay in the room. I'll assess speech sounds, language comprehension, vocabulary, and social communication through games and activities.",
			Adult:   "For adults, we'll assess your specific concerns - whether it's recovering speech after stroke, improving voice quality, or managing swallowing difficulties. The evaluation is conversational and comfortable.",
		},
		Duration: DurationTexts{
			Default: "Progress varies by individual, but typical timelines: Articulation (3-9 months), Language delays (6-12 months), Stuttering (3-6 months), Stroke recovery (6-24 months). We'll set realistic goals and track progress weekly.",
		},
		Pediatric: PediatricTexts{
			Milestones: "Key milestones: 12 months (first words), 18 months (20+ words), 2 years (50+ words, 2-word phrases), 3 years (3-word sentences, understood by family), 4 years (complex sentences, understood by strangers). If your child is behind, early intervention makes a huge difference.",
			Concerns:   "Red flags: Not babbling by 9 months, no words by 16 months, not combining words by 2 years, hard to understand at 3+, frustrated when communicating, not responding to name.",
			Process:    "I specialize in making therapy fun! We use play, games, and your child's interests. Parent involvement is key - I'll teach you strategies to use at home.",
		},
		Adult: AdultTexts{
			Stroke:     "I'm experienced in post-stroke rehabilitation including aphasia (language), dysarthria (speech clarity), and apraxia (motor planning). We'll work on functional communication for daily life.",
			Conditions: "I treat: Parkinson's speech issues, voice disorders, accent modification, stuttering, cognitive-communication after brain injury, and swallowing difficulties.",
		},
		Appointment: AppointmentTexts{
			Default: "Scheduling is flexible! I offer morning, afternoon, and early evening slots. Sessions are typically 30-45 minutes for ongoing therapy. You can call (555) 123-4567 or use our online booking. I also offer teletherapy options.",
		},
		General: GeneralTexts{
			Credentials: "I'm Samantha Golden, CCC-SLP with 13+ years experience. I'm Clinical Specialist at Kessler Institute, ASHA certified, PROMPT trained, and VitalStim certified for swallowing therapy.",
		},
		Clarify: "I'd be happy to discuss that with you. Could you tell me more about your specific concerns? Are you asking about services for a child or adult? Feel free to ask about insurance coverage, what to expect in therapy, or any other questions!",
	}
}
