package scoring

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestInterviewScoreSingleDetailedAnswer(t *testing.T) {
	t.Parallel()

	// 3 technical terms, 2 STAR terms and one digit.
	answer := "In 2021 I worked on the database api and architecture. The situation was hard and the result was great."
	answer = (answer + strings.Repeat(" more", 100))[:400]

	fb, err := NewInterviewScorer(NoJitter).Score([]string{answer}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// base = 60 + 20 (length) + 6 (keywords) + 3 (STAR) + 3 (digit) = 92
	if fb.Clarity != 94 {
		t.Fatalf("expected clarity 94, got %d", fb.Clarity)
	}
	if fb.Technical != 95 {
		t.Fatalf("expected technical 95, got %d", fb.Technical)
	}
	if fb.Communication != 98 {
		t.Fatalf("expected communication clamped to 98, got %d", fb.Communication)
	}
	if fb.Overall != 96 {
		t.Fatalf("expected overall 96, got %d", fb.Overall)
	}
}

func TestInterviewScoreGenericAnswers(t *testing.T) {
	t.Parallel()

	fb, err := NewInterviewScorer(NoJitter).Score([]string{"yes no fine ok good"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fb.Clarity != 35 || fb.Technical != 35 || fb.Communication != 30 || fb.Overall != 33 {
		t.Fatalf("unexpected scores: %+v", fb)
	}
	if !slices.Contains(fb.Improvements, "Avoid one-word replies such as yes, no or fine") {
		t.Fatalf("expected generic-answer improvement, got %v", fb.Improvements)
	}
}

func TestInterviewScoreMatchBonus(t *testing.T) {
	t.Parallel()

	answers := []string{"I like coding."}
	scorer := NewInterviewScorer(NoJitter)

	without, err := scorer.Score(answers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match := 70
	with, err := scorer.Score(answers, &match)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if without.Clarity != 50 || without.Technical != 50 || without.Communication != 45 {
		t.Fatalf("unexpected scores without match: %+v", without)
	}
	if with.Clarity != 60 || with.Technical != 63 || with.Communication != 55 {
		t.Fatalf("unexpected scores with match: %+v", with)
	}
}

func TestInterviewScoreRequiresAnswers(t *testing.T) {
	t.Parallel()

	_, err := NewInterviewScorer(NoJitter).Score(nil, nil)
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

func TestInterviewScoreInvariants(t *testing.T) {
	t.Parallel()

	sessions := [][]string{
		{""},
		{"no"},
		{"Specifically, I implemented a cloud api that improved performance by 30%. The result: we achieved our goal."},
		{strings.Repeat("algorithm database api testing situation result 1 example ", 50), "fine"},
		{"I led the team.", "We delivered on time.", "For instance, 3 releases."},
	}
	matches := []*int{nil, ptr(0), ptr(100)}

	for seed := uint64(1); seed <= 20; seed++ {
		scorer := NewInterviewScorer(NewRand(seed))
		for _, answers := range sessions {
			for _, match := range matches {
				fb, err := scorer.Score(answers, match)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				for name, v := range map[string]int{"clarity": fb.Clarity, "technical": fb.Technical, "communication": fb.Communication} {
					if v < 30 || v > 98 {
						t.Fatalf("%s %d out of range for %q", name, v, answers)
					}
				}

				mean := float64(fb.Clarity+fb.Technical+fb.Communication) / 3
				if fb.Overall != int(math.Round(mean)) {
					t.Fatalf("overall %d does not equal rounded mean %.2f", fb.Overall, mean)
				}
				if len(fb.Strengths) == 0 || len(fb.Improvements) == 0 {
					t.Fatalf("expected narrative feedback, got %+v", fb)
				}
			}
		}
	}
}

func TestFixedRand(t *testing.T) {
	t.Parallel()

	if got := jitter(NoJitter); got != 0 {
		t.Fatalf("expected zero jitter, got %d", got)
	}
	if got := jitter(FixedRand(0)); got != -3 {
		t.Fatalf("expected -3 jitter, got %d", got)
	}
	if got := jitter(FixedRand(100)); got != 3 {
		t.Fatalf("expected +3 jitter, got %d", got)
	}
}

func ptr(v int) *int { return &v }
