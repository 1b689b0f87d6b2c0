package ai

import (
	"fmt"
	"strings"

	"github.com/samanthagolden/speech-site/backend/internal/model/practice"
)

const assistantGuidance = "Be warm, professional, and helpful. Focus on addressing common patient concerns about insurance, evaluation process, treatment duration, and specific conditions. Always encourage scheduling a consultation for personalized assessment."

// BuildSystemPrompt renders the fixed system prompt describing the practice.
// The result depends only on the profile, never on user input.
func BuildSystemPrompt(p practice.Practice) string {
	firstName := p.ClinicianName
	if fields := strings.Fields(p.ClinicianName); len(fields) > 0 {
		firstName = fields[0]
	}

	return fmt.Sprintf(`You are %s's AI assistant, helping potential patients with speech therapy questions. %s is a %s with %d+ years experience at %s.

Key information to share:
- Insurance: Accepts %s. Self-pay %s
- First visit: %s
- Specialties: %s
- Credentials: %s
- Location: %s
- Contact: %s

%s`,
		p.ClinicianName,
		firstName,
		p.Title,
		p.YearsExperience,
		p.Institution,
		strings.Join(p.Insurers, ", "),
		p.SelfPayRange,
		p.FirstVisit,
		strings.Join(p.Specialties, ", "),
		strings.Join(p.Credentials, ", "),
		p.Location,
		p.Phone,
		assistantGuidance,
	)
}
