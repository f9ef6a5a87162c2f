package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/careerfit/internal/profile"
)

const sampleConfig = `
role: Data Engineer
catalog-file: roles.yaml
seed: 42
questions: 4
ai:
  enabled: true
  provider: gemini
  gemini:
    api-key: secret
    model: gemini-2.5-flash
    max-retries: 2
    max-log-length: 120
`

func TestGetConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(strings.NewReader(sampleConfig)); err != nil {
		t.Fatalf("read config: %v", err)
	}

	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Config{
		Role:        "Data Engineer",
		CatalogFile: "roles.yaml",
		Output:      "text",
		Seed:        42,
		Questions:   4,
		AI: &AIConfig{
			Enabled:  true,
			Provider: "gemini",
			Gemini: &GeminiConfig{
				APIKey:       "secret",
				Model:        "gemini-2.5-flash",
				MaxRetries:   2,
				MaxLogLength: 120,
			},
		},
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}

	safe := redacted(config)
	if safe.AI.Gemini.APIKey != "<redacted>" {
		t.Fatalf("expected api key to be redacted, got %q", safe.AI.Gemini.APIKey)
	}
	if config.AI.Gemini.APIKey != "secret" {
		t.Fatalf("redaction must not modify the original config")
	}
}

func TestGetConfigEmpty(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()

	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config == nil || config.AI != nil {
		t.Fatalf("expected empty config, got %+v", config)
	}
	if safe := redacted(config); safe.AI != nil {
		t.Fatalf("expected nil ai section, got %+v", safe.AI)
	}
}

func TestQuestionCount(t *testing.T) {
	t.Parallel()

	newCmd := func() *cobra.Command {
		c := &cobra.Command{Use: "test"}
		c.Flags().Int("questions", 5, "")
		return c
	}

	if got := questionCount(newCmd(), &Config{}); got != 5 {
		t.Fatalf("expected flag default, got %d", got)
	}
	if got := questionCount(newCmd(), &Config{Questions: 2}); got != 2 {
		t.Fatalf("expected config value, got %d", got)
	}

	explicit := newCmd()
	if err := explicit.Flags().Set("questions", "7"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if got := questionCount(explicit, &Config{Questions: 2}); got != 7 {
		t.Fatalf("expected explicit flag to win, got %d", got)
	}

	if got := questionCount(&cobra.Command{Use: "bare"}, &Config{Questions: 2}); got != 0 {
		t.Fatalf("expected zero without flag, got %d", got)
	}
}

func TestPrintRole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printRole(&buf, profile.Generic("Pilot"))

	out := buf.String()
	for _, want := range []string{"Pilot\n", "required:   communication, problem solving, teamwork", "Junior:     0-2 years", "Senior:     6-"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
