package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/scoring"
	"github.com/spigell/careerfit/internal/signals"
)

// Stage names.
const (
	StageMatch     = "match"
	StageATS       = "ats"
	StageInterview = "interview"
	StageCoach     = "coach"
)

const (
	noResumeReason  = "no resume provided"
	noAnswersReason = "no interview answers provided"
)

// toggle is the enable/disable bookkeeping shared by all stages.
type toggle struct {
	enabled bool
	reason  string
}

func (t *toggle) Disable(reason string) {
	t.enabled = false
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return t.enabled }

// Stages returns the full stage list in execution order.
func Stages(cfg *Config) []Stage {
	questions := 0
	if cfg != nil {
		questions = cfg.Questions
	}

	return []Stage{
		NewMatch(questions),
		NewATS(),
		NewInterview(),
		NewCoach(cfg),
	}
}

type matchStage struct {
	toggle
	questions int
}

// NewMatch creates the stage that scores the resume against the role profile
// and derives the hand-off plus up to questions interview questions from it.
func NewMatch(questions int) Stage {
	return &matchStage{toggle: toggle{enabled: true}, questions: questions}
}

func (st *matchStage) Name() string { return StageMatch }

func (st *matchStage) Prepare(s *Session) {
	if strings.TrimSpace(s.Resume) == "" {
		st.Disable(noResumeReason)
	}
}

func (st *matchStage) Validate(*Config) error {
	if st.questions < 0 {
		return fmt.Errorf("question count must not be negative, got %d", st.questions)
	}
	return nil
}

func (st *matchStage) Apply(_ context.Context, deps Deps, s *Session) (Step, error) {
	sig := signals.Extract(s.Resume, s.Profile)
	result := scoring.ScoreMatch(sig, s.Profile, sig.Years())
	handoff := scoring.NewHandoff(s.RoleName, result)

	s.Match = &result
	s.Handoff = &handoff
	s.Questions = scoring.GenerateQuestions(handoff, deps.Rand, st.questions)

	deps.Logger.Debug("resume signals extracted",
		zap.Int("words", sig.WordCount),
		zap.Int("sentences", sig.SentenceCount),
		zap.Int("years", sig.Years()),
		zap.Strings("skills_found", result.SkillsFound),
	)

	return Step{Score: result.MatchPercentage, Notes: len(result.Gaps) + len(result.Recommendations)}, nil
}

func (st *matchStage) Status() Status {
	return Status{
		Name:    st.Name(),
		Enabled: st.enabled,
		Reason:  st.reason,
		Details: map[string]string{"questions": strconv.Itoa(st.questions)},
	}
}

type atsStage struct {
	toggle
}

// NewATS creates the applicant-tracking compatibility stage.
func NewATS() Stage {
	return &atsStage{toggle{enabled: true}}
}

func (st *atsStage) Name() string { return StageATS }

func (st *atsStage) Prepare(s *Session) {
	if strings.TrimSpace(s.Resume) == "" {
		st.Disable(noResumeReason)
	}
}

func (st *atsStage) Validate(*Config) error { return nil }

func (st *atsStage) Apply(_ context.Context, _ Deps, s *Session) (Step, error) {
	result := scoring.ScoreATS(s.Resume, s.Profile, s.RoleName)
	s.ATS = &result
	return Step{Score: result.Overall, Notes: len(result.Improvements)}, nil
}

func (st *atsStage) Status() Status {
	return Status{Name: st.Name(), Enabled: st.enabled, Reason: st.reason}
}

type interviewStage struct {
	toggle
}

// NewInterview creates the interview feedback stage. It runs after the match
// stage so the match percentage can feed the answer scores.
func NewInterview() Stage {
	return &interviewStage{toggle{enabled: true}}
}

func (st *interviewStage) Name() string { return StageInterview }

func (st *interviewStage) Prepare(s *Session) {
	if !s.HasAnswers() {
		st.Disable(noAnswersReason)
	}
}

func (st *interviewStage) Validate(*Config) error { return nil }

func (st *interviewStage) Apply(_ context.Context, deps Deps, s *Session) (Step, error) {
	feedback, err := scoring.NewInterviewScorer(deps.Rand).Score(s.Answers, s.matchPercentage())
	if err != nil {
		return Step{}, fmt.Errorf("score answers: %w", err)
	}

	s.Interview = &feedback
	return Step{Score: feedback.Overall, Notes: len(feedback.Improvements)}, nil
}

func (st *interviewStage) Status() Status {
	return Status{Name: st.Name(), Enabled: st.enabled, Reason: st.reason}
}

type coachStage struct {
	toggle
	provider string
}

// NewCoach creates the AI coaching stage. It is disabled unless AI is enabled
// in cfg.
func NewCoach(cfg *Config) Stage {
	st := &coachStage{}
	switch {
	case cfg == nil || cfg.AI == nil || !cfg.AI.Enabled:
		st.Disable("ai is disabled")
	default:
		st.enabled = true
		st.provider = cfg.AI.Provider
	}
	return st
}

func (st *coachStage) Name() string { return StageCoach }

func (st *coachStage) Prepare(s *Session) {
	if strings.TrimSpace(s.Resume) == "" {
		st.Disable(noResumeReason)
	}
}

func (st *coachStage) Validate(cfg *Config) error {
	if cfg == nil || cfg.AI == nil {
		return errors.New("ai configuration is required when the coach is enabled")
	}
	if strings.TrimSpace(cfg.AI.Provider) == "" {
		return errors.New("ai provider is required when the coach is enabled")
	}
	return nil
}

func (st *coachStage) Apply(ctx context.Context, deps Deps, s *Session) (Step, error) {
	if deps.Coach == nil {
		return Step{}, errors.New("coach is not configured")
	}
	if s.Handoff == nil {
		return Step{}, errors.New("match stage must run before the coach")
	}

	advice, err := deps.Coach.Advise(ctx, *s.Handoff)
	if err != nil {
		deps.Logger.Warn("AI coaching failed", zap.Error(err))
		s.CoachError = err.Error()
		return Step{}, nil
	}

	s.Advice = advice
	return Step{Notes: len(advice.Tips)}, nil
}

func (st *coachStage) Status() Status {
	details := map[string]string{}
	if st.provider != "" {
		details["provider"] = st.provider
	}
	return Status{Name: st.Name(), Enabled: st.enabled, Reason: st.reason, Details: details}
}
