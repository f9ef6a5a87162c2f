// Package document loads resume text and interview answers from disk.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ErrEmpty is returned when a document holds no usable text.
var ErrEmpty = errors.New("document is empty")

var blankLineRe = regexp.MustCompile(`\n[ \t]*\n`)

type answersFile struct {
	Answers []string `mapstructure:"answers"`
}

// LoadText returns the trimmed contents of a plain text file.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%q: %w", path, ErrEmpty)
	}
	return text, nil
}

// LoadAnswers reads interview answers. YAML and JSON files carry an
// `answers` list; any other file holds answers separated by blank lines.
// Blank answers are dropped.
func LoadAnswers(path string) ([]string, error) {
	var (
		answers []string
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		answers, err = structuredAnswers(path)
	default:
		var text string
		text, err = LoadText(path)
		answers = SplitAnswers(text)
	}
	if err != nil {
		return nil, err
	}

	if len(answers) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrEmpty)
	}
	return answers, nil
}

// SplitAnswers splits text on blank lines, trimming every answer.
func SplitAnswers(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var answers []string
	for _, chunk := range blankLineRe.Split(text, -1) {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			answers = append(answers, chunk)
		}
	}
	return answers
}

func structuredAnswers(path string) ([]string, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading answers %q: %w", path, err)
	}

	var file answersFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating answers decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding answers %q: %w", path, err)
	}

	answers := make([]string, 0, len(file.Answers))
	for _, answer := range file.Answers {
		if answer = strings.TrimSpace(answer); answer != "" {
			answers = append(answers, answer)
		}
	}
	return answers, nil
}
