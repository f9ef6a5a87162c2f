package scoring

import (
	"errors"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/careerfit/internal/signals"
)

// ErrNoAnswers is returned when an interview session has no answers to score.
var ErrNoAnswers = errors.New("at least one answer is required")

var (
	technicalTerms = []string{
		"algorithm", "database", "api", "architecture", "framework",
		"performance", "scalability", "testing", "deployment", "cloud",
		"microservice", "optimization", "debugging", "security",
		"design pattern", "data structure", "version control", "agile", "ci/cd",
	}

	starTerms = []string{
		"situation", "task", "action", "result", "achieved", "implemented",
		"resolved", "improved", "challenge", "outcome", "accomplished",
		"delivered", "learned", "impact",
	}

	specificityTerms = []string{"example", "instance", "specifically"}

	genericReplies = map[string]struct{}{
		"good": {}, "fine": {}, "yes": {}, "no": {}, "ok": {}, "okay": {},
		"sure": {}, "maybe": {}, "nothing": {}, "nope": {}, "idk": {},
	}
)

const (
	interviewBase = 60

	maxKeywordBonus     = 20
	maxStarBonus        = 15
	maxSpecificityBonus = 15
	genericPenalty      = 15

	feedbackMin = 30
	feedbackMax = 98
)

var interviewBaseBand = struct{ lo, hi float64 }{35, 98}

// InterviewFeedback is the performance assessment of an interview session.
type InterviewFeedback struct {
	Clarity       int      `json:"clarity"`
	Technical     int      `json:"technical"`
	Communication int      `json:"communication"`
	Overall       int      `json:"overall"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
}

// InterviewScorer scores interview answers. Jitter and phrasing come from its Rand.
type InterviewScorer struct {
	rnd Rand
}

// NewInterviewScorer returns a scorer drawing randomness from rnd, or from a
// clock-seeded source when rnd is nil.
func NewInterviewScorer(rnd Rand) *InterviewScorer {
	if rnd == nil {
		rnd = NewRand(0)
	}
	return &InterviewScorer{rnd: rnd}
}

type answerStats struct {
	avgLength   float64
	techHits    int
	starHits    int
	genericHits int
	specificity int
}

func collectStats(answers []string) answerStats {
	var st answerStats

	total := 0
	for _, answer := range answers {
		total += utf8.RuneCountInString(answer)
		lower := strings.ToLower(answer)

		st.techHits += signals.CountOccurrences(lower, technicalTerms)
		st.starHits += signals.CountOccurrences(lower, starTerms)
		st.genericHits += countGeneric(lower)

		if strings.IndexFunc(answer, unicode.IsDigit) >= 0 {
			st.specificity += 3
		}
		for _, term := range specificityTerms {
			if strings.Contains(lower, term) {
				st.specificity += 2
				break
			}
		}
	}
	st.avgLength = float64(total) / float64(len(answers))

	return st
}

// Score rates the answers. matchPercentage, when non-nil, adds a role-match bonus.
func (s *InterviewScorer) Score(answers []string, matchPercentage *int) (InterviewFeedback, error) {
	if len(answers) == 0 {
		return InterviewFeedback{}, ErrNoAnswers
	}

	st := collectStats(answers)

	lenBonus := lengthBonus(st.avgLength)
	base := float64(interviewBase + lenBonus)
	base += float64(min(2*st.techHits, maxKeywordBonus))
	base += math.Min(1.5*float64(st.starHits), maxStarBonus)

	generic := st.genericHits > 2*len(answers)
	if generic {
		base -= genericPenalty
	}

	base += float64(min(st.specificity, maxSpecificityBonus))

	matchBonus := 0
	if matchPercentage != nil {
		// floor(match * 0.15) in integer arithmetic.
		matchBonus = clamp(*matchPercentage, 0, 100) * 15 / 100
		base += float64(matchBonus)
	}

	base = math.Max(interviewBaseBand.lo, math.Min(interviewBaseBand.hi, base))

	clarity := clamp(round(base)+min(st.starHits, 5)+jitter(s.rnd), feedbackMin, feedbackMax)
	technical := clamp(round(base)+min(st.techHits, 5)+matchBonus/3+jitter(s.rnd), feedbackMin, feedbackMax)
	communication := clamp(round(base)+lenBonus/2+jitter(s.rnd), feedbackMin, feedbackMax)

	fb := InterviewFeedback{
		Clarity:       clarity,
		Technical:     technical,
		Communication: communication,
		Overall:       round(float64(clarity+technical+communication) / 3),
	}
	fb.Strengths, fb.Improvements = s.narrative(st, generic)

	return fb, nil
}

func lengthBonus(avg float64) int {
	switch {
	case avg > 300:
		return 20
	case avg > 200:
		return 15
	case avg > 100:
		return 10
	case avg > 50:
		return 5
	default:
		return -10
	}
}

func (s *InterviewScorer) narrative(st answerStats, generic bool) ([]string, []string) {
	var strengths, improvements []string

	if st.avgLength > 200 {
		strengths = append(strengths, pick(s.rnd, []string{
			"Detailed answers with good depth",
			"Thorough responses that give the interviewer enough context",
		}))
	} else {
		improvements = append(improvements, pick(s.rnd, []string{
			"Give fuller answers with more background and context",
			"Expand your answers; aim for one to two minutes per question",
		}))
	}

	if st.techHits >= 3 {
		strengths = append(strengths, pick(s.rnd, []string{
			"Good command of technical vocabulary",
			"Technical concepts are referenced confidently",
		}))
	} else {
		improvements = append(improvements, pick(s.rnd, []string{
			"Reference the specific technologies, tools and methods you used",
			"Show technical depth by naming the approaches you applied",
		}))
	}

	if st.starHits >= 2 {
		strengths = append(strengths, pick(s.rnd, []string{
			"Answers follow a clear situation-action-result structure",
			"Well-structured storytelling with clear outcomes",
		}))
	} else {
		improvements = append(improvements, pick(s.rnd, []string{
			"Structure answers with the STAR method: Situation, Task, Action, Result",
			"Close each story with the result you achieved",
		}))
	}

	if st.specificity > 0 {
		strengths = append(strengths, "Concrete examples and figures support your points")
	} else {
		improvements = append(improvements, "Back your claims with specific examples and numbers")
	}

	if generic {
		improvements = append(improvements, "Avoid one-word replies such as yes, no or fine")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Willingness to engage with every question")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Keep practicing to maintain this level of performance")
	}

	return strengths, improvements
}

func countGeneric(lower string) int {
	count := 0
	for _, token := range strings.Fields(lower) {
		token = strings.TrimFunc(token, unicode.IsPunct)
		if _, ok := genericReplies[token]; ok {
			count++
		}
	}
	return count
}
