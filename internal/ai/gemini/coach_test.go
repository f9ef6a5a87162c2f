package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/careerfit/internal/scoring"
)

type stubGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

func sampleHandoff() scoring.Handoff {
	return scoring.Handoff{
		Role:            "Backend Developer",
		MatchPercentage: 64,
		ExperienceLevel: "Mid-level",
		SkillsFound:     []string{"go", "sql"},
		Gaps:            []string{"Missing key required skills: linux"},
		Recommendations: []string{"Practice interview questions for Backend Developer positions"},
	}
}

func TestCoachAdvise(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"summary\": \" Solid base. \", \"tips\": [\"Learn linux\", \"  \", \"Ship a side project\"]}\n```"}

	core, logs := observer.New(zapcore.DebugLevel)
	coach := NewCoach(stub, zap.New(core), 0)

	advice, err := coach.Advise(context.Background(), sampleHandoff())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advice.Summary != "Solid base." {
		t.Fatalf("unexpected summary %q", advice.Summary)
	}
	if diff := cmp.Diff([]string{"Learn linux", "Ship a side project"}, advice.Tips); diff != "" {
		t.Fatalf("unexpected tips (-want +got):\n%s", diff)
	}
	if advice.Raw != stub.response {
		t.Fatalf("expected raw response to be kept")
	}

	if stub.lastSystem != systemInstruction {
		t.Fatalf("unexpected system instruction %q", stub.lastSystem)
	}
	if strings.Contains(stub.lastPrompt, "{{HANDOFF_JSON}}") {
		t.Fatalf("expected placeholder to be replaced")
	}
	if !strings.Contains(stub.lastPrompt, `"match_percentage": 64`) {
		t.Fatalf("expected handoff json in prompt, got %s", stub.lastPrompt)
	}

	entries := logs.FilterMessage("gemini generate content request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["ai_model"] != "stub-model" || fields["ai_provider"] != ProviderName || fields["role"] != "Backend Developer" {
		t.Fatalf("unexpected log fields: %v", fields)
	}
}

func TestCoachAdvisePropagatesErrors(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	coach := NewCoach(&stubGenerator{err: sentinel}, nil, 0)

	if _, err := coach.Advise(context.Background(), sampleHandoff()); !errors.Is(err, sentinel) {
		t.Fatalf("expected generator error, got %v", err)
	}
	if _, err := coach.Advise(context.Background(), scoring.Handoff{}); err == nil {
		t.Fatal("expected error for handoff without role")
	}
}

func TestParseResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    []string
		summary string
		wantErr bool
	}{
		{
			name:    "tips as newline separated string",
			raw:     `{"summary": "Fine", "tips": "- one\n* two\n\n• three"}`,
			summary: "Fine",
			want:    []string{"one", "two", "three"},
		},
		{
			name:    "tips truncated",
			raw:     `{"tips": ["1", "2", "3", "4", "5", "6", "7"]}`,
			want:    []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "non string tip",
			raw:     `{"summary": "x", "tips": [42]}`,
			summary: "x",
			want:    []string{"42"},
		},
		{name: "not json", raw: "sure, here are some tips", wantErr: true},
		{name: "empty object", raw: "{}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			advice, err := parseResponse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if advice.Summary != tt.summary {
				t.Fatalf("expected summary %q, got %q", tt.summary, advice.Summary)
			}
			if diff := cmp.Diff(tt.want, advice.Tips); diff != "" {
				t.Fatalf("unexpected tips (-want +got):\n%s", diff)
			}
		})
	}
}
