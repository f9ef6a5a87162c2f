package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file \n"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	t.Setenv("CAREERFIT_TEST_KEY", "from-env")

	got, err := Load(Source{Name: "gemini api key", File: path, Env: "CAREERFIT_TEST_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file secret, got %q", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CAREERFIT_TEST_KEY", " from-env ")

	got, err := Load(Source{Env: "CAREERFIT_TEST_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env secret, got %q", got)
	}
}

func TestLoadFallsBackToValue(t *testing.T) {
	t.Setenv("CAREERFIT_TEST_KEY", "")

	got, err := Load(Source{Env: "CAREERFIT_TEST_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("expected inline secret, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	t.Setenv("CAREERFIT_TEST_KEY", "")

	tests := []struct {
		name    string
		src     Source
		message string
	}{
		{name: "missing file", src: Source{Name: "key", File: "/nonexistent/key"}, message: "reading key"},
		{name: "empty file", src: Source{Name: "key", File: empty}, message: "is empty"},
		{name: "unset env", src: Source{Name: "key", Env: "CAREERFIT_TEST_KEY"}, message: "set CAREERFIT_TEST_KEY"},
		{name: "nothing", src: Source{}, message: "secret is not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("expected %q in error, got %v", tt.message, err)
			}
		})
	}
}
