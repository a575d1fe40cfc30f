package evaluation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/latency"
	"github.com/promptcraft/guild-api/internal/models"
	"go.uber.org/zap"
)

// ModelName identifies the heuristic evaluator in logs and metrics
const ModelName = "prometheus-2-mock"

var genericSuggestions = []string{
	"Try combining different mental models for a richer prompt.",
	"Consider exploring more complex constraints in your next attempt.",
	"Experiment with different writing styles to enhance your prompt.",
}

// Evaluator scores prompts with randomised heuristics
type Evaluator struct {
	logger *zap.Logger
	rand   latency.RandSource
}

// NewEvaluator creates a heuristic evaluator drawing randomness from src
func NewEvaluator(logger *zap.Logger, src latency.RandSource) *Evaluator {
	logger.Info("evaluator initialized", zap.String("model", ModelName))
	return &Evaluator{logger: logger, rand: src}
}

// Evaluate scores p. Any failure, including a panic, is returned as an error.
func (e *Evaluator) Evaluate(ctx context.Context, p Params) (resp *models.EvaluationResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("evaluate prompt: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	r := e.rand()

	isComplete := present(p.MentorType) && present(p.MethodType) && len(p.Modifiers) > 0
	tokenCount := catalog.CountWords(p.Prompt)
	withinLimit := tokenCount <= p.TokenLimit
	if !withinLimit && p.TokenLimit <= 0 {
		return nil, fmt.Errorf("evaluate prompt: %w (got %d)", ErrInvalidTokenLimit, p.TokenLimit)
	}

	base := 0.7
	if !isComplete {
		base -= 0.2
	}
	if !withinLimit {
		over := min(tokenCount-p.TokenLimit, p.TokenLimit)
		base -= float64(over) / float64(p.TokenLimit) * 0.5
	}
	score := clamp(base + uniform(r, -0.1, 0.1))

	resp = &models.EvaluationResponse{
		Score:             score,
		Feedback:          e.feedback(p, score, isComplete, withinLimit, tokenCount),
		Reasoning:         e.reasoning(r, p, withinLimit, tokenCount),
		HighlightedTokens: highlight(r, p.Prompt),
		Suggestions:       suggest(r, p, score, withinLimit),
		Metrics:           metrics(r, p, withinLimit),
	}

	e.logger.Info("evaluation completed",
		zap.String("prompt_preview", preview(p.Prompt)),
		zap.Float64("score", score),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp, nil
}

func (e *Evaluator) feedback(p Params, score float64, isComplete, withinLimit bool, tokenCount int) string {
	var b strings.Builder
	mentor := models.StringValue(p.MentorType)
	method := models.StringValue(p.MethodType)

	switch {
	case score > 0.8:
		b.WriteString("Your prompt shows excellent mastery of the selected constraints.")
		if catalog.MentorFeedback.Has(mentor) {
			fmt.Fprintf(&b, " The voice of %s comes through clearly.", mentor)
		}
		if catalog.MethodFeedback.Has(method) {
			fmt.Fprintf(&b, " Your use of %s is well-executed.", method)
		}
	case score > 0.5:
		b.WriteString("Your prompt is satisfactory but could be improved.")
		if text, ok := catalog.MentorFeedback.Lookup(mentor); ok {
			b.WriteString(" " + text)
		}
		if text, ok := catalog.MethodFeedback.Lookup(method); ok {
			b.WriteString(" " + text)
		}
	default:
		b.WriteString("Your prompt needs significant improvement to meet the constraints.")
		if !isComplete {
			b.WriteString(" Ensure all required elements are incorporated.")
		}
		if !withinLimit {
			fmt.Fprintf(&b, " Your prompt exceeds the token limit by %d tokens.", tokenCount-p.TokenLimit)
		}
	}
	return b.String()
}

func (e *Evaluator) reasoning(r *rand.Rand, p Params, withinLimit bool, tokenCount int) string {
	var parts []string

	if present(p.MentorType) {
		if uniform(r, 0.4, 1.0) > 0.7 {
			parts = append(parts, fmt.Sprintf("The voice of %s is evident in your writing style.", *p.MentorType))
		} else {
			parts = append(parts, fmt.Sprintf("The voice of %s could be strengthened.", *p.MentorType))
		}
	}

	if present(p.MethodType) {
		if uniform(r, 0.4, 1.0) > 0.7 {
			parts = append(parts, fmt.Sprintf("You've effectively applied the %s approach.", *p.MethodType))
		} else {
			parts = append(parts, fmt.Sprintf("Your application of %s could be more thorough.", *p.MethodType))
		}
	}

	for _, modifier := range p.Modifiers {
		if uniform(r, 0.4, 1.0) > 0.7 {
			parts = append(parts, fmt.Sprintf("You've successfully implemented the '%s' constraint.", modifier))
		} else {
			parts = append(parts, fmt.Sprintf("The '%s' constraint could be more fully addressed.", modifier))
		}
	}

	if !withinLimit {
		parts = append(parts, fmt.Sprintf("Your prompt contains %d tokens, exceeding the %d token limit.", tokenCount, p.TokenLimit))
	}

	return strings.Join(parts, " ")
}

func highlight(r *rand.Rand, prompt string) []string {
	words := catalog.Words(prompt)
	tokens := []string{}
	for i := 0; i < min(5, len(words)); i++ {
		if r.Float64() > 0.7 && len([]rune(words[i])) > 3 {
			tokens = append(tokens, words[i])
		}
	}
	return tokens
}

func suggest(r *rand.Rand, p Params, score float64, withinLimit bool) []string {
	var suggestions []string
	if score < 0.9 {
		if present(p.MentorType) && r.Float64() > 0.5 {
			text, ok := catalog.MentorFeedback.Lookup(*p.MentorType)
			if !ok {
				text = "Consider the mentor's voice more carefully."
			}
			suggestions = append(suggestions, text)
		}
		if present(p.MethodType) && r.Float64() > 0.5 {
			text, ok := catalog.MethodFeedback.Lookup(*p.MethodType)
			if !ok {
				text = "Apply the method more systematically."
			}
			suggestions = append(suggestions, text)
		}
		if !withinLimit {
			suggestions = append(suggestions, "Make your prompt more concise to fit within the token limit.")
		}
	}

	if len(suggestions) == 0 {
		suggestions = append([]string(nil), genericSuggestions...)
	}
	return suggestions
}

func metrics(r *rand.Rand, p Params, withinLimit bool) map[string]float64 {
	clarity := uniform(r, 0.5, 1.0)

	var tone, coherence float64
	if present(p.MentorType) {
		tone = uniform(r, 0.5, 1.0)
	} else {
		tone = uniform(r, 0.3, 0.7)
	}
	if present(p.MethodType) {
		coherence = uniform(r, 0.5, 1.0)
	} else {
		coherence = uniform(r, 0.3, 0.7)
	}

	adherence := 1.0
	if !withinLimit {
		adherence = uniform(r, 0.1, 0.5)
	}

	return map[string]float64{
		models.MetricClarity:             clamp(clarity),
		models.MetricTone:                clamp(tone),
		models.MetricCoherence:           clamp(coherence),
		models.MetricConstraintAdherence: clamp(adherence),
	}
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
