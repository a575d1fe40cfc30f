package generation

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

// DefaultMockDelay is the simulated latency of the mock generator
const DefaultMockDelay = 2 * time.Second

const mockClosing = "In conclusion, this approach offers a balanced perspective that addresses the core concerns while maintaining analytical rigor."

// MockGenerator builds deterministic completions after a fixed delay
type MockGenerator struct {
	logger *zap.Logger
	delay  time.Duration
}

// NewMockGenerator creates a deterministic generator that waits delay before answering
func NewMockGenerator(logger *zap.Logger, delay time.Duration) *MockGenerator {
	return &MockGenerator{logger: logger, delay: delay}
}

// Generate assembles the completion. The output is not truncated to MaxTokens.
func (m *MockGenerator) Generate(ctx context.Context, p Params) (*models.GenerationResponse, error) {
	if err := latency.Wait(ctx, m.delay); err != nil {
		return nil, err
	}

	output := Compose(p)
	tokenCount := catalog.CountWords(output)

	m.logger.Info("mock generation completed",
		zap.String("prompt_preview", preview(p.Prompt)),
		zap.Int("token_count", tokenCount),
	)

	return &models.GenerationResponse{
		Output:         output,
		TokenCount:     tokenCount,
		GenerationTime: m.delay.Seconds(),
		ModelUsed:      ModelName,
	}, nil
}

// Compose is the deterministic text assembly behind MockGenerator
func Compose(p Params) string {
	var parts []string

	if style, ok := catalog.MentorStyles.LookupPtr(p.MentorType); ok {
		parts = append(parts, style)
	} else {
		parts = append(parts, genericIntro)
	}

	if pattern, ok := catalog.MethodPatterns.LookupPtr(p.MethodType); ok {
		parts = append(parts, pattern)
	} else {
		parts = append(parts, genericMethod)
	}

	for _, modifier := range p.Modifiers {
		if sentence, ok := catalog.ModifierSentences.Lookup(modifier); ok {
			parts = append(parts, sentence)
		}
	}

	terms := placeholder
	if keyTerms := catalog.KeyTerms(p.Prompt, 4, 5); len(keyTerms) > 0 {
		terms = strings.Join(keyTerms, ", ")
	}
	parts = append(parts, fmt.Sprintf("Regarding %s, we should consider multiple perspectives.", terms))

	parts = append(parts, mockClosing)
	return strings.Join(parts, " ")
}
