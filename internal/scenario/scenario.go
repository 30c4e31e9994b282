package scenario

import (
	"context"
	"fmt"
	"log/slog"
)

// Scenario selects the persona an AI chat partner plays during a practice
// conversation. The set is closed: anything else is rejected at validation.
type Scenario string

const (
	Recruiter Scenario = "recruiter"
	Alumni    Scenario = "alumni"
	PM        Scenario = "pm"
	Designer  Scenario = "designer"
)

// All lists every supported scenario, in display order.
var All = []Scenario{Recruiter, Alumni, PM, Designer}

// FromString parses a scenario tag, rejecting anything outside the closed set.
func FromString(s string) (Scenario, error) {
	sc := Scenario(s)
	if !sc.Valid() {
		return "", fmt.Errorf("unknown scenario %q", s)
	}
	return sc, nil
}

func (s Scenario) Valid() bool {
	switch s {
	case Recruiter, Alumni, PM, Designer:
		return true
	}
	return false
}

func (s Scenario) String() string {
	return string(s)
}

// Info describes a scenario for listing purposes.
type Info struct {
	ID          Scenario `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Persona     string   `json:"persona"`
}

var infos = map[Scenario]Info{
	Recruiter: {
		ID:          Recruiter,
		Title:       "Recruiter Coffee Chat",
		Description: "Practice networking with a tech recruiter. Learn about opportunities, share your background, and make a great impression.",
		Persona:     "Tech Recruiter at a Major Company",
	},
	Alumni: {
		ID:          Alumni,
		Title:       "Alumni Networking",
		Description: "Connect with a university alumni working in tech. Get career advice and insights from someone who's been in your shoes.",
		Persona:     "University Alumni (3-4 years experience)",
	},
	PM: {
		ID:          PM,
		Title:       "Product Manager Info Interview",
		Description: "Learn about product management from a Senior PM. Understand the role, career path, and how to break into PM.",
		Persona:     "Senior Product Manager",
	},
	Designer: {
		ID:          Designer,
		Title:       "UX Designer Portfolio Review",
		Description: "Get feedback on your design work from a Senior UX Designer. Learn about design processes, career growth, and industry trends.",
		Persona:     "Senior UX Designer",
	},
}

// InfoFor returns the display metadata for a scenario.
func (s Scenario) Info() Info {
	if info, ok := infos[s]; ok {
		return info
	}
	return infos[Recruiter]
}

// PromptFor returns the persona system prompt for a scenario. An unknown tag
// should be unreachable here given upstream validation; it falls back to the
// recruiter persona and logs the occurrence as a logic error.
func PromptFor(ctx context.Context, s Scenario) string {
	prompt, ok := prompts[s]
	if !ok {
		slog.ErrorContext(ctx, "unvalidated scenario reached prompt selection", "scenario", string(s))
		return prompts[Recruiter]
	}
	return prompt
}
