package evaluation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/latency"
	"github.com/promptcraft/guild-api/internal/models"
	"go.uber.org/zap"
)

// DefaultMockDelay is the simulated latency of the mock evaluator
const DefaultMockDelay = 1500 * time.Millisecond

// MockEvaluator scores prompts deterministically after a fixed delay
type MockEvaluator struct {
	logger *zap.Logger
	delay  time.Duration
}

// NewMockEvaluator creates a deterministic evaluator that waits delay before answering
func NewMockEvaluator(logger *zap.Logger, delay time.Duration) *MockEvaluator {
	return &MockEvaluator{logger: logger, delay: delay}
}

// Evaluate scores p. The only error is ctx ending during the simulated latency.
func (m *MockEvaluator) Evaluate(ctx context.Context, p Params) (*models.EvaluationResponse, error) {
	if err := latency.Wait(ctx, m.delay); err != nil {
		return nil, err
	}

	resp := Score(p)

	m.logger.Info("mock evaluation completed",
		zap.String("prompt_preview", preview(p.Prompt)),
		zap.Float64("score", resp.Score),
	)
	return resp, nil
}

// Score is the deterministic scoring rule behind MockEvaluator
func Score(p Params) *models.EvaluationResponse {
	tokenCount := catalog.CountWords(p.Prompt)
	overLimit := tokenCount > p.TokenLimit
	hasMentor := p.MentorType != nil
	hasMethod := p.MethodType != nil

	base := 0.7
	if overLimit {
		base -= 0.3
	}
	if !hasMentor {
		base -= 0.2
	}
	if !hasMethod {
		base -= 0.2
	}
	score := clamp(base)

	var feedback string
	switch {
	case score > 0.8:
		feedback = fmt.Sprintf("The Guide nods approvingly. 'Your prompt demonstrates mastery of the %s. Well crafted!'",
			orDefault(p.MethodType, "chosen method"))
	case score > 0.5:
		feedback = fmt.Sprintf("The Guide considers your work. 'There's potential in your approach using %s, but it could be refined further.'",
			orDefault(p.MethodType, "this method"))
	default:
		feedback = fmt.Sprintf("The Guide raises an eyebrow. 'Your approach shows promise, but the constraints weren't fully addressed. Consider how your chosen %s would approach this differently.'",
			orDefault(p.MentorType, "Mentor"))
	}

	var points []string
	if overLimit {
		points = append(points, fmt.Sprintf("The prompt exceeds the token limit (%d/%d)", tokenCount, p.TokenLimit))
	}
	if !hasMentor {
		points = append(points, "No mentor voice is evident in the prompt")
	}
	if !hasMethod {
		points = append(points, "The prompt doesn't utilize the selected method effectively")
	}
	if len(points) == 0 {
		points = append(points, "The prompt meets the basic requirements")
		if present(p.MentorType) {
			points = append(points, fmt.Sprintf("The voice of %s comes through clearly", *p.MentorType))
		}
		if present(p.MethodType) {
			points = append(points, fmt.Sprintf("The %s approach is well-executed", *p.MethodType))
		}
	}

	var suggestions []string
	if overLimit {
		suggestions = append(suggestions, "Try making your prompt more concise")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Consider exploring more complex constraints in your next attempt",
			"Try combining different mental models for a richer prompt",
		)
	}

	highlighted := []string{}
	for i, w := range catalog.Words(p.Prompt) {
		if len(highlighted) == 5 {
			break
		}
		if i%5 == 0 && len([]rune(w)) > 3 {
			highlighted = append(highlighted, w)
		}
	}

	adherence := 0.9
	if overLimit {
		adherence = 0.0
	}

	return &models.EvaluationResponse{
		Score:             score,
		Feedback:          feedback,
		Reasoning:         strings.Join(points, ". ") + ".",
		HighlightedTokens: highlighted,
		Suggestions:       suggestions,
		Metrics: map[string]float64{
			models.MetricClarity:             clamp(0.7 + 0.2*score),
			models.MetricTone:                clamp(0.6 + 0.3*score),
			models.MetricCoherence:           clamp(0.8 * score),
			models.MetricConstraintAdherence: adherence,
		},
	}
}
