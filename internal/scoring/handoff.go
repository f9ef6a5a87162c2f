package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/careerfit/internal/profile"
)

// Handoff is the slice of a match result passed on to follow-up tools such as
// the roadmap builder and the interview question generator.
type Handoff struct {
	Role            string   `json:"role"`
	MatchPercentage int      `json:"match_percentage"`
	ExperienceLevel string   `json:"experience_level"`
	SkillsFound     []string `json:"skills_found"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

// NewHandoff projects a match result for role.
func NewHandoff(role string, m MatchResult) Handoff {
	return Handoff{
		Role:            role,
		MatchPercentage: m.MatchPercentage,
		ExperienceLevel: m.ExperienceLevel,
		SkillsFound:     append([]string(nil), m.SkillsFound...),
		Gaps:            append([]string(nil), m.Gaps...),
		Recommendations: append([]string(nil), m.Recommendations...),
	}
}

var (
	skillQuestions = []string{
		"Describe a project where you relied on %s. What trade-offs did you make?",
		"How would you explain %s to a new team member?",
		"Tell me about a difficult problem you solved using %s.",
	}

	gapQuestions = []string{
		"How are you addressing this area: %s?",
		"What steps have you taken recently regarding this: %s?",
	}

	levelQuestions = map[string]string{
		profile.LevelJunior: "What have you learned in your first roles that you would apply as a %s?",
		profile.LevelMid:    "How do you balance delivery and mentoring as a %s?",
		profile.LevelSenior: "How have you shaped technical direction as a %s?",
	}
)

// GenerateQuestions builds up to n practice questions from the hand-off:
// one per matched skill, then one per gap, then a level-specific closing question.
func GenerateQuestions(h Handoff, rnd Rand, n int) []string {
	if n <= 0 {
		return nil
	}
	if rnd == nil {
		rnd = NewRand(0)
	}

	var questions []string
	add := func(q string) bool {
		questions = append(questions, q)
		return len(questions) < n
	}

	for _, skill := range h.SkillsFound {
		if !add(fmt.Sprintf(pick(rnd, skillQuestions), skill)) {
			return questions
		}
	}

	for _, gap := range h.Gaps {
		if !add(fmt.Sprintf(pick(rnd, gapQuestions), strings.ToLower(gap))) {
			return questions
		}
	}

	closing, ok := levelQuestions[h.ExperienceLevel]
	if !ok {
		closing = "Why are you a good fit for a %s position?"
	}
	add(fmt.Sprintf(closing, h.Role))

	return questions
}
