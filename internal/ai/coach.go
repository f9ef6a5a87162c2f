package ai

import (
	"context"

	"github.com/spigell/careerfit/internal/scoring"
)

// Advice is free-form coaching produced from a scoring handoff.
type Advice struct {
	Summary string   `json:"summary"`
	Tips    []string `json:"tips"`
	Raw     string   `json:"-"`
}

// Coach turns a match handoff into coaching advice. Implementations call out
// to a language model, so their output is not deterministic.
type Coach interface {
	Advise(ctx context.Context, handoff scoring.Handoff) (*Advice, error)
}
