// Package evaluation scores prompts against the mentor, method and modifier
// cards a player selected.
//
// Two engines share the Scorer interface: Evaluator stands in for a real
// evaluation model and jitters its output, MockEvaluator is fully
// deterministic and adds a fixed latency.
package evaluation

import (
	"context"
	"errors"

	"github.com/promptcraft/guild-api/internal/models"
)

// ErrInvalidTokenLimit is returned when an over-limit prompt is scored against a non-positive limit
var ErrInvalidTokenLimit = errors.New("token limit must be positive")

// Params are the inputs consulted by the scoring engines
type Params struct {
	Prompt     string
	MentorType *string
	MethodType *string
	Modifiers  []string
	TokenLimit int
}

// ParamsFromRequest extracts the scoring inputs from a request.
// target_output and criteria are not consulted.
func ParamsFromRequest(req models.EvaluationRequest) Params {
	return Params{
		Prompt:     models.StringValue(req.Prompt),
		MentorType: req.MentorType,
		MethodType: req.MethodType,
		Modifiers:  req.Modifiers,
		TokenLimit: req.TokenLimit,
	}
}

// Scorer evaluates a prompt
type Scorer interface {
	Evaluate(ctx context.Context, p Params) (*models.EvaluationResponse, error)
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func orDefault(s *string, def string) string {
	if present(s) {
		return *s
	}
	return def
}

func clamp(v float64) float64 {
	return max(0.0, min(1.0, v))
}

func preview(prompt string) string {
	r := []rune(prompt)
	if len(r) > 30 {
		return string(r[:30])
	}
	return prompt
}
