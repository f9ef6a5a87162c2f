// Package pipeline runs the scoring stages over a single candidate session.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/ai"
	"github.com/spigell/careerfit/internal/logger"
	"github.com/spigell/careerfit/internal/profile"
	"github.com/spigell/careerfit/internal/scoring"
)

// Stage represents a single scoring step applied to a session.
type Stage interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, s *Session) (Step, error)
}

// Deps aggregates dependencies shared across all stages.
type Deps struct {
	Logger *zap.Logger
	Rand   scoring.Rand
	Coach  ai.Coach
}

// Step describes the result of executing a stage.
type Step struct {
	Score int
	Notes int
}

// Config contains configuration settings consumed by the stages.
type Config struct {
	Questions int
	AI        *AIConfig
}

// AIConfig stores AI-related configuration used by the coach stage.
type AIConfig struct {
	Enabled  bool
	Provider string
}

// Status represents runtime information about a stage.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Session carries the inputs and outputs of one scoring run.
type Session struct {
	ID       string
	RoleName string
	Profile  profile.RoleProfile
	Resume   string
	Answers  []string

	// MatchOverride feeds the interview bonus when the match stage does not run.
	MatchOverride *int

	Match      *scoring.MatchResult
	ATS        *scoring.ATSResult
	Interview  *scoring.InterviewFeedback
	Handoff    *scoring.Handoff
	Questions  []string
	Advice     *ai.Advice
	CoachError string
}

// NewSession creates a session with a fresh random id.
func NewSession(role string, p profile.RoleProfile, resume string, answers []string) *Session {
	return &Session{
		ID:       uuid.NewString(),
		RoleName: role,
		Profile:  p,
		Resume:   resume,
		Answers:  answers,
	}
}

// HasAnswers reports whether at least one answer has non-whitespace content.
func (s *Session) HasAnswers() bool {
	for _, answer := range s.Answers {
		if strings.TrimSpace(answer) != "" {
			return true
		}
	}
	return false
}

func (s *Session) matchPercentage() *int {
	if s.Match != nil {
		v := s.Match.MatchPercentage
		return &v
	}
	return s.MatchOverride
}

// preparer is implemented by stages that enable or disable themselves
// depending on what the session carries.
type preparer interface {
	Prepare(s *Session)
}

// statusProvider is implemented by stages that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a stage with the provided name as disabled while keeping it in the list.
func DisableByName(stages []Stage, name, reason string) {
	for _, stage := range stages {
		if stage.Name() == name {
			stage.Disable(reason)
		}
	}
}

// Run executes the supplied stages sequentially over the session.
func Run(ctx context.Context, cfg *Config, deps Deps, stages []Stage, s *Session) error {
	if deps.Rand == nil {
		deps.Rand = scoring.NewRand(0)
	}
	deps.Logger = logger.WithSession(deps.Logger, s.ID, s.RoleName)

	for _, stage := range stages {
		if p, ok := stage.(preparer); ok && stage.IsEnabled() {
			p.Prepare(s)
		}
	}

	for _, stage := range stages {
		if !stage.IsEnabled() {
			continue
		}
		if err := stage.Validate(cfg); err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}
	}

	for _, stage := range stages {
		if !stage.IsEnabled() {
			deps.Logger.Info("stage disabled", zap.String(logger.FieldStage, stage.Name()))
			continue
		}

		info, err := stage.Apply(ctx, deps, s)
		if err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}

		deps.Logger.Info("stage step",
			zap.String(logger.FieldStage, stage.Name()),
			zap.Int("score", info.Score),
			zap.Int("notes", info.Notes),
		)
	}

	return nil
}

// Describe returns status entries for the provided stages.
func Describe(stages []Stage) []Status {
	statuses := make([]Status, 0, len(stages))
	for _, stage := range stages {
		if reporter, ok := stage.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    stage.Name(),
			Enabled: stage.IsEnabled(),
		})
	}
	return statuses
}
