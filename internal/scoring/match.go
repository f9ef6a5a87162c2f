package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/careerfit/internal/profile"
	"github.com/spigell/careerfit/internal/signals"
)

const (
	requiredWeight  = 0.7
	preferredWeight = 0.3

	maxListedSkills = 3
	// Below this many declared years a portfolio recommendation is added.
	portfolioYears = 2
)

// MatchResult is the job-fit assessment of a resume.
type MatchResult struct {
	MatchPercentage int      `json:"match_percentage"`
	ExperienceLevel string   `json:"experience_level"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
	SkillsFound     []string `json:"skills_found"`
}

// ScoreMatch combines skill hits into a match percentage, an experience level
// and qualitative feedback.
func ScoreMatch(sig signals.SignalSet, p profile.RoleProfile, years int) MatchResult {
	required := ratio(len(sig.FoundRequiredSkills), len(p.RequiredSkills))
	preferred := ratio(len(sig.FoundPreferredSkills), len(p.PreferredSkills))

	missingRequired := difference(p.RequiredSkills, sig.FoundRequiredSkills)
	missingPreferred := difference(p.PreferredSkills, sig.FoundPreferredSkills)

	return MatchResult{
		MatchPercentage: clamp(round(requiredWeight*required*100+preferredWeight*preferred*100), 0, 100),
		ExperienceLevel: ExperienceLevel(p, years),
		Strengths:       matchStrengths(sig, years),
		Gaps:            matchGaps(sig, p, years, missingRequired, missingPreferred),
		Recommendations: matchRecommendations(p.Name, years, missingRequired, missingPreferred),
		SkillsFound:     union(sig.FoundRequiredSkills, sig.FoundPreferredSkills),
	}
}

// ExperienceLevel returns the highest band whose minimum is met by years,
// or the lowest band when none is.
func ExperienceLevel(p profile.RoleProfile, years int) string {
	bands := p.Bands()
	level := bands[0].Name
	for _, band := range bands {
		if years >= band.MinYears {
			level = band.Name
		}
	}
	return level
}

func matchStrengths(sig signals.SignalSet, years int) []string {
	var strengths []string

	if len(sig.FoundRequiredSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Strong foundation in %s", strings.Join(head(sig.FoundRequiredSkills, maxListedSkills), ", ")))
	}
	if years > 0 {
		strengths = append(strengths, fmt.Sprintf("%d years of relevant professional experience", years))
	}
	if len(sig.FoundPreferredSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Experience with preferred technologies such as %s", strings.Join(head(sig.FoundPreferredSkills, maxListedSkills), ", ")))
	}
	if sig.MentionsTeamwork {
		strengths = append(strengths, "Demonstrated leadership and teamwork experience")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Motivated candidate with transferable skills and willingness to learn")
	}
	return strengths
}

func matchGaps(sig signals.SignalSet, p profile.RoleProfile, years int, missingRequired, missingPreferred []string) []string {
	var gaps []string

	if len(missingRequired) > 0 {
		gaps = append(gaps, fmt.Sprintf("Missing key required skills: %s", strings.Join(head(missingRequired, maxListedSkills), ", ")))
	}
	if len(missingPreferred) > 2 {
		gaps = append(gaps, "Limited experience with preferred technologies for this role")
	}
	if years < p.MidBandMinimum() {
		gaps = append(gaps, "Could benefit from more years of hands-on industry experience")
	}
	if !sig.MentionsProjects {
		gaps = append(gaps, "Consider showcasing more personal or professional projects")
	}

	if len(gaps) == 0 {
		gaps = append(gaps, "Continue deepening expertise in your core areas")
	}
	return gaps
}

func matchRecommendations(role string, years int, missingRequired, missingPreferred []string) []string {
	var recs []string

	if len(missingRequired) > 0 {
		recs = append(recs, fmt.Sprintf("Prioritize learning %s, a core requirement for %s roles", missingRequired[0], role))
	}
	if len(missingPreferred) > 0 {
		recs = append(recs, fmt.Sprintf("Gain hands-on experience with %s to stand out from other candidates", missingPreferred[0]))
	}
	if years < portfolioYears {
		recs = append(recs, "Build a portfolio of projects that demonstrates practical experience")
	}

	return append(recs, fmt.Sprintf("Practice interview questions for %s positions", role))
}

func difference(all, found []string) []string {
	present := make(map[string]struct{}, len(found))
	for _, f := range found {
		present[strings.ToLower(f)] = struct{}{}
	}

	var missing []string
	for _, item := range all {
		if _, ok := present[strings.ToLower(item)]; !ok {
			missing = append(missing, item)
		}
	}
	return missing
}

func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	result := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, item := range list {
			key := strings.ToLower(item)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
