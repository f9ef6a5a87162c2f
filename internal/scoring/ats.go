package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/careerfit/internal/profile"
	"github.com/spigell/careerfit/internal/signals"
)

// Pass-rate tiers.
const (
	PassLow    = "Low"
	PassMedium = "Medium"
	PassHigh   = "High"
)

const maxImprovements = 6

type band struct{ lo, hi int }

var (
	overallBand   = band{15, 98}
	keywordBand   = band{20, 95}
	formatBand    = band{30, 95}
	alignmentBand = band{25, 95}
	readBand      = band{35, 95}
)

func (b band) clamp(v int) int { return clamp(v, b.lo, b.hi) }

// ATSResult is the applicant-tracking compatibility assessment of a resume.
type ATSResult struct {
	Overall        int      `json:"overall"`
	KeywordDensity int      `json:"keyword_density"`
	Formatting     int      `json:"formatting"`
	JobAlignment   int      `json:"job_alignment"`
	Readability    int      `json:"readability"`
	PassRate       string   `json:"pass_rate"`
	Improvements   []string `json:"improvements"`
}

// notes accumulates improvement suggestions in generation order.
type notes []string

func (n *notes) add(format string, args ...any) {
	*n = append(*n, fmt.Sprintf(format, args...))
}

// ScoreATS rates text against the profile. It is deterministic.
func ScoreATS(text string, p profile.RoleProfile, roleName string) ATSResult {
	lower := strings.ToLower(text)
	sig := signals.Extract(text, p)

	var n notes

	keyword := keywordDensityScore(lower, sig, p, &n)
	format := formattingScore(sig, &n)
	alignment := jobAlignmentScore(lower, sig, p, roleName, &n)
	read := readabilityScore(sig, &n)

	overall := overallBand.clamp(round(0.30*float64(keyword) + 0.25*float64(format) + 0.25*float64(alignment) + 0.20*float64(read)))

	pass := PassRate(overall)
	switch pass {
	case PassLow:
		n.add("Tailor your resume to the job description before applying")
		n.add("Use a simple single-column layout with standard section headings")
	case PassMedium:
		n.add("Fine-tune keywords and formatting to move into the high pass-rate range")
	}

	improvements := make([]string, 0, maxImprovements)
	improvements = append(improvements, head(n, maxImprovements)...)

	return ATSResult{
		Overall:        overall,
		KeywordDensity: keyword,
		Formatting:     format,
		JobAlignment:   alignment,
		Readability:    read,
		PassRate:       pass,
		Improvements:   improvements,
	}
}

// PassRate maps an overall score onto its tier.
func PassRate(overall int) string {
	switch {
	case overall >= 80:
		return PassHigh
	case overall >= 60:
		return PassMedium
	default:
		return PassLow
	}
}

func keywordDensityScore(lower string, sig signals.SignalSet, p profile.RoleProfile, n *notes) int {
	all := p.AllSkills()
	found := signals.FindAll(lower, all)

	score := round(100 * ratio(len(found), len(all)))

	density := 0.0
	if sig.WordCount > 0 {
		density = float64(sig.SkillMentions) / float64(sig.WordCount)
	}
	switch {
	case density < 0.02:
		score -= 15
	case density > 0.06:
		score -= 10
	}

	if len(found) < 3 {
		missing := signals.Missing(lower, all)
		if len(missing) > 0 {
			n.add("Add more role-specific keywords such as %s", strings.Join(head(missing, maxListedSkills), ", "))
		} else {
			n.add("Add more role-specific keywords from the job description")
		}
	}

	return keywordBand.clamp(score)
}

func formattingScore(sig signals.SignalSet, n *notes) int {
	score := 85

	checks := []struct {
		ok      bool
		penalty int
		note    string
	}{
		{sig.HasEmail, 15, "Add a professional email address to your contact details"},
		{sig.HasPhone, 10, "Include a phone number in your contact details"},
		{sig.HasExperienceSection, 20, "Add a clearly labeled Experience section"},
		{sig.HasEducationSection, 10, "Add an Education section"},
		{sig.HasSkillsSection, 15, "Add a dedicated Skills section"},
		{sig.HasQuantifiedAchievement, 10, "Quantify achievements with numbers, percentages or amounts"},
		{sig.HasActionVerb, 15, "Start bullet points with strong action verbs such as led, built or delivered"},
	}

	for _, check := range checks {
		if check.ok {
			continue
		}
		score -= check.penalty
		n.add("%s", check.note)
	}

	return formatBand.clamp(score)
}

func jobAlignmentScore(lower string, sig signals.SignalSet, p profile.RoleProfile, roleName string, n *notes) int {
	words := strings.Fields(strings.ToLower(roleName))
	found := signals.CountPresent(lower, words)

	score := 0
	if len(words) > 0 {
		score = round(100 * float64(found) / float64(len(words)))
	}
	if found < len(words) {
		n.add("Mention the target job title %q in your summary", roleName)
	}

	if !sig.YearsDeclared {
		score -= 20
		n.add("State your experience explicitly, e.g. \"5 years of experience\"")
	}

	if len(p.ExperienceAreas) > 0 && !signals.ContainsAny(lower, p.ExperienceAreas) {
		score -= 15
		n.add("Highlight experience in areas such as %s", strings.Join(head(p.ExperienceAreas, maxListedSkills), ", "))
	}

	return alignmentBand.clamp(score)
}

func readabilityScore(sig signals.SignalSet, n *notes) int {
	score := 80

	avg := float64(sig.WordCount) / float64(sig.SentenceCount)
	switch {
	case avg > 25:
		score -= 20
		n.add("Break long sentences into concise bullet points")
	case avg < 8:
		score -= 10
		n.add("Expand fragmented bullet points into complete statements")
	}

	if sig.BuzzwordHits > 2 {
		score -= 15
		n.add("Replace generic buzzwords with concrete accomplishments")
	}

	switch {
	case sig.WordCount < 200:
		score -= 25
		n.add("Expand your resume with more detail on responsibilities and results")
	case sig.WordCount > 1000:
		score -= 15
		n.add("Condense your resume to the most relevant one or two pages")
	}

	return readBand.clamp(score)
}
