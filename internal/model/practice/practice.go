package practice

// Practice captures the facts about the practice that the assistant may share.
// It is assembled once at startup and treated as read-only afterwards.
type Practice struct {
	ClinicianName   string   `json:"clinicianName"`
	Title           string   `json:"title"`
	YearsExperience int      `json:"yearsExperience"`
	Institution     string   `json:"institution"`
	Insurers        []string `json:"insurers"`
	SelfPayRange    string   `json:"selfPayRange"`
	FirstVisit      string   `json:"firstVisit"`
	Specialties     []string `json:"specialties"`
	Credentials     []string `json:"credentials"`
	Location        string   `json:"location"`
	Phone           string   `json:"phone"`
	Website         string   `json:"website"`
}

// Default returns the practice profile served by the public website.
func Default() Practice {
	return Practice{
		ClinicianName:   "Samantha Golden",
		Title:           "Clinical Specialist SLP",
		YearsExperience: 13,
		Institution:     "Kessler Institute of Rehabilitation",
		Insurers:        []string{"Aetna", "Cigna", "BCBS", "United Healthcare", "Medicare"},
		SelfPayRange:    "$150-200/session",
		FirstVisit:      "60-90 min evaluation including assessment, goals discussion, and treatment plan",
		Specialties: []string{
			"Pediatric speech/language",
			"adult stroke recovery",
			"swallowing therapy",
			"voice disorders",
		},
		Credentials: []string{"CCC-SLP", "PROMPT trained", "VitalStim certified"},
		Location:    "West Orange, NJ area",
		Phone:       "(555) 123-4567",
		Website:     "https://samantha-golden-speech.netlify.app",
	}
}
