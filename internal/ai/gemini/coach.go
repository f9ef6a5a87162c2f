package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/ai"
	"github.com/spigell/careerfit/internal/logger"
	"github.com/spigell/careerfit/internal/scoring"
	"github.com/spigell/careerfit/internal/utils"
)

// ProviderName identifies this coach in logs and configuration.
const ProviderName = "gemini"

const (
	defaultMaxLogLength = 200
	maxTips             = 5

	systemInstruction = "You are a concise, encouraging career coach. Always answer with valid JSON."
)

//go:embed coach_prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// Coach asks Gemini for advice on top of a deterministic match handoff.
type Coach struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Coach = (*Coach)(nil)

func NewCoach(generator contentGenerator, log *zap.Logger, maxLogLength int) *Coach {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Coach{
		generator: generator,
		logger:    logger.WithFields(log, logger.AIFields(ProviderName, generator.Model())...),
		maxLogLen: maxLogLength,
	}
}

func (c *Coach) Advise(ctx context.Context, handoff scoring.Handoff) (*ai.Advice, error) {
	if strings.TrimSpace(handoff.Role) == "" {
		return nil, errors.New("handoff role is required")
	}

	handoffJSON, err := json.MarshalIndent(handoff, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal handoff payload: %w", err)
	}

	prompt := buildPrompt(string(handoffJSON))

	c.logger.Debug("gemini generate content request",
		zap.String(logger.FieldRole, handoff.Role),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini generate content response",
		zap.String(logger.FieldRole, handoff.Role),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, c.maxLogLen)),
	)

	advice, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	advice.Raw = raw
	return advice, nil
}

func buildPrompt(handoffJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Assessment:\n{{HANDOFF_JSON}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{HANDOFF_JSON}}", handoffJSON)
}

func parseResponse(raw string) (*ai.Advice, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	advice := &ai.Advice{
		Summary: coerceString(data["summary"]),
		Tips:    coerceStrings(data["tips"]),
	}
	if advice.Summary == "" && len(advice.Tips) == 0 {
		return nil, errors.New("gemini response contains neither summary nor tips")
	}
	if len(advice.Tips) > maxTips {
		advice.Tips = advice.Tips[:maxTips]
	}

	return advice, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

// coerceStrings accepts a list or a single newline-separated string.
func coerceStrings(v any) []string {
	var items []string
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			items = append(items, coerceString(item))
		}
	case string:
		items = strings.Split(val, "\n")
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(item), "-*•"))
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
