package signals

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/careerfit/internal/profile"
)

var (
	emailPattern = regexp.MustCompile(`[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	// A phone number starts with a country code or a bracketed area code, or
	// is written as separated 3-3-4 groups. Bare year lists do not qualify.
	phonePattern = regexp.MustCompile(`\+\d{1,3}[\s.\-]?\(?\d{1,4}\)?[\s.\-]?\d{3,4}[\s.\-]?\d{3,4}|\(\d{2,4}\)[\s.\-]?\d{3}[\s.\-]?\d{4}|\d{3}[\s.\-]\d{3}[\s.\-]\d{4}`)
	yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?\s+of\s+experience`)
	digitPattern = regexp.MustCompile(`\d`)
)

// SignalSet holds the primitive facts extracted from one document.
type SignalSet struct {
	WordCount     int
	SentenceCount int

	FoundRequiredSkills  []string
	FoundPreferredSkills []string
	// SkillMentions is the total number of occurrences of all found skills.
	SkillMentions int

	HasEmail                 bool
	HasPhone                 bool
	HasExperienceSection     bool
	HasEducationSection      bool
	HasSkillsSection         bool
	HasQuantifiedAchievement bool
	HasActionVerb            bool

	DeclaredYearsExperience int
	YearsDeclared           bool

	IndustryTermHits int
	BuzzwordHits     int

	MentionsTeamwork bool
	MentionsProjects bool
}

// Years returns the declared years of experience, zero when absent.
func (s SignalSet) Years() int {
	if !s.YearsDeclared {
		return 0
	}
	return s.DeclaredYearsExperience
}

// Extract computes the signal set of text against the role profile.
func Extract(text string, p profile.RoleProfile) SignalSet {
	lower := strings.ToLower(text)

	s := SignalSet{
		WordCount:     WordCount(text),
		SentenceCount: SentenceCount(text),

		FoundRequiredSkills:  FindAll(lower, p.RequiredSkills),
		FoundPreferredSkills: FindAll(lower, p.PreferredSkills),

		HasEmail:                 emailPattern.MatchString(lower),
		HasPhone:                 phonePattern.MatchString(lower),
		HasExperienceSection:     ContainsAny(lower, ExperienceSectionMarkers),
		HasEducationSection:      ContainsAny(lower, EducationSectionMarkers),
		HasSkillsSection:         ContainsAny(lower, SkillsSectionMarkers),
		HasQuantifiedAchievement: digitPattern.MatchString(lower),
		HasActionVerb:            ContainsAny(lower, ActionVerbs),

		IndustryTermHits: CountPresent(lower, IndustryTerms),
		BuzzwordHits:     CountPresent(lower, Buzzwords),

		MentionsTeamwork: ContainsAny(lower, TeamworkMarkers),
		MentionsProjects: ContainsAny(lower, ProjectMarkers),
	}

	s.DeclaredYearsExperience, s.YearsDeclared = DeclaredYears(lower)
	s.SkillMentions = CountOccurrences(lower, FindAll(lower, p.AllSkills()))

	return s
}

// WordCount returns the number of whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SentenceCount returns the number of non-empty segments between sentence
// terminators. It never returns less than one.
func SentenceCount(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	count := 0
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}

	if count == 0 {
		return 1
	}
	return count
}

// DeclaredYears extracts "<n> years of experience" from lower-cased text.
func DeclaredYears(lower string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}

	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return years, true
}

// Contains reports whether term occurs in lower-cased text, ignoring the case of term.
func Contains(lower, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	return strings.Contains(lower, term)
}

// ContainsAny reports whether any of terms occurs in lower-cased text.
func ContainsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if Contains(lower, term) {
			return true
		}
	}
	return false
}

// FindAll returns the terms present in lower-cased text, in their original
// order and spelling, without duplicates.
func FindAll(lower string, terms []string) []string {
	found := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))

	for _, term := range terms {
		key := strings.ToLower(strings.TrimSpace(term))
		if _, ok := seen[key]; ok {
			continue
		}
		if Contains(lower, key) {
			seen[key] = struct{}{}
			found = append(found, term)
		}
	}

	return found
}

// Missing returns the terms absent from lower-cased text, in order.
func Missing(lower string, terms []string) []string {
	missing := make([]string, 0, len(terms))
	for _, term := range terms {
		if !Contains(lower, term) {
			missing = append(missing, term)
		}
	}
	return missing
}

// CountPresent returns how many distinct terms occur in lower-cased text.
func CountPresent(lower string, terms []string) int {
	return len(FindAll(lower, terms))
}

// CountOccurrences returns the total number of non-overlapping occurrences of terms.
func CountOccurrences(lower string, terms []string) int {
	total := 0
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		total += strings.Count(lower, term)
	}
	return total
}
