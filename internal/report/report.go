// Package report renders a scored session as styled text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/careerfit/internal/ai"
	"github.com/spigell/careerfit/internal/pipeline"
	"github.com/spigell/careerfit/internal/scoring"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Report is the serialisable view of a session.
type Report struct {
	SessionID  string                     `json:"session_id"`
	Role       string                     `json:"role"`
	Match      *scoring.MatchResult       `json:"match,omitempty"`
	ATS        *scoring.ATSResult         `json:"ats,omitempty"`
	Interview  *scoring.InterviewFeedback `json:"interview,omitempty"`
	Handoff    *scoring.Handoff           `json:"handoff,omitempty"`
	Questions  []string                   `json:"questions,omitempty"`
	Advice     *ai.Advice                 `json:"advice,omitempty"`
	CoachError string                     `json:"coach_error,omitempty"`
	Stages     []pipeline.Status          `json:"stages,omitempty"`
}

// New builds a report from a finished session.
func New(s *pipeline.Session, stages []pipeline.Status) Report {
	return Report{
		SessionID:  s.ID,
		Role:       s.RoleName,
		Match:      s.Match,
		ATS:        s.ATS,
		Interview:  s.Interview,
		Handoff:    s.Handoff,
		Questions:  s.Questions,
		Advice:     s.Advice,
		CoachError: s.CoachError,
		Stages:     stages,
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, format string, r Report) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	case FormatText, "":
		if _, err := io.WriteString(w, newTheme(w).render(r)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

type theme struct {
	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	fair    lipgloss.Style
	poor    lipgloss.Style
}

func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		label:   r.NewStyle().Width(16),
		muted:   r.NewStyle().Foreground(lipgloss.Color("240")),
		good:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		fair:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		poor:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

func (t theme) score(v int) string {
	text := fmt.Sprintf("%3d", v)
	switch {
	case v >= 80:
		return t.good.Render(text)
	case v >= 60:
		return t.fair.Render(text)
	default:
		return t.poor.Render(text)
	}
}

func (t theme) row(b *strings.Builder, label string, value string) {
	fmt.Fprintf(b, "  %s %s\n", t.label.Render(label), value)
}

func (t theme) list(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", t.muted.Render(heading))
	for _, item := range items {
		fmt.Fprintf(b, "    - %s\n", item)
	}
}

func (t theme) render(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", t.title.Render("careerfit: "+r.Role), t.muted.Render(r.SessionID))

	if m := r.Match; m != nil {
		fmt.Fprintf(&b, "\n%s\n", t.heading.Render("Resume match"))
		t.row(&b, "Match", t.score(m.MatchPercentage)+"%")
		t.row(&b, "Level", m.ExperienceLevel)
		t.row(&b, "Skills found", strings.Join(m.SkillsFound, ", "))
		t.list(&b, "Strengths", m.Strengths)
		t.list(&b, "Gaps", m.Gaps)
		t.list(&b, "Recommendations", m.Recommendations)
	}

	if a := r.ATS; a != nil {
		fmt.Fprintf(&b, "\n%s\n", t.heading.Render("ATS compatibility"))
		t.row(&b, "Overall", t.score(a.Overall)+" ("+a.PassRate+" pass rate)")
		t.row(&b, "Keywords", t.score(a.KeywordDensity))
		t.row(&b, "Formatting", t.score(a.Formatting))
		t.row(&b, "Job alignment", t.score(a.JobAlignment))
		t.row(&b, "Readability", t.score(a.Readability))
		t.list(&b, "Improvements", a.Improvements)
	}

	if f := r.Interview; f != nil {
		fmt.Fprintf(&b, "\n%s\n", t.heading.Render("Interview feedback"))
		t.row(&b, "Overall", t.score(f.Overall))
		t.row(&b, "Clarity", t.score(f.Clarity))
		t.row(&b, "Technical", t.score(f.Technical))
		t.row(&b, "Communication", t.score(f.Communication))
		t.list(&b, "Strengths", f.Strengths)
		t.list(&b, "Improvements", f.Improvements)
	}

	if len(r.Questions) > 0 {
		fmt.Fprintf(&b, "\n%s\n", t.heading.Render("Practice questions"))
		for i, q := range r.Questions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, q)
		}
	}

	switch {
	case r.Advice != nil:
		fmt.Fprintf(&b, "\n%s\n", t.heading.Render("Coaching"))
		if r.Advice.Summary != "" {
			fmt.Fprintf(&b, "  %s\n", r.Advice.Summary)
		}
		t.list(&b, "Next steps", r.Advice.Tips)
	case r.CoachError != "":
		fmt.Fprintf(&b, "\n%s\n", t.heading.Render("Coaching"))
		fmt.Fprintf(&b, "  %s\n", t.muted.Render("unavailable: "+r.CoachError))
	}

	return b.String()
}
