package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"resume-analyzer/internal/semantic"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

const promptTemplate = `You compare a resume against a job description.
Rate how well the resume matches on a 0-100 scale and list up to 10 terms
shared by both texts that drive the match.

Respond with a single JSON object and nothing else:
{"score": <number 0-100>, "matching_terms": ["term", ...]}

Job description:
{{JOB}}

Resume:
{{RESUME}}

JSON response:`

// Engine adapts a content generator to the pipeline's similarity-engine
// contract. Any generation or parse error is returned as-is so the matcher
// can take its deterministic fallback.
type Engine struct {
	generator contentGenerator
	logger    *zap.Logger
}

// NewEngine builds an Engine around the given generator.
func NewEngine(generator contentGenerator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{generator: generator, logger: logger}
}

// Similarity asks the model for a match score and shared terms.
func (e *Engine) Similarity(ctx context.Context, resumeText, jobDescription string) (semantic.Similarity, error) {
	prompt := strings.ReplaceAll(promptTemplate, "{{JOB}}", jobDescription)
	prompt = strings.ReplaceAll(prompt, "{{RESUME}}", resumeText)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return semantic.Similarity{}, err
	}

	e.logger.Debug("gemini similarity response",
		zap.Int("response_length", len(raw)),
	)

	sim, err := parseResponse(raw)
	if err != nil {
		return semantic.Similarity{}, err
	}
	return sim, nil
}

func parseResponse(raw string) (semantic.Similarity, error) {
	var payload struct {
		Score         any      `json:"score"`
		MatchingTerms []string `json:"matching_terms"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &payload); err != nil {
		return semantic.Similarity{}, fmt.Errorf("parse gemini response: %w", err)
	}

	score, ok := coerceFloat(payload.Score)
	if !ok {
		return semantic.Similarity{}, fmt.Errorf("gemini response has no usable score")
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	terms := payload.MatchingTerms
	if terms == nil {
		terms = []string{}
	}
	return semantic.Similarity{Score: score, MatchingTerms: terms}, nil
}

// extractJSON strips markdown code fences the model may wrap its reply in.
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
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

func coerceFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
