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

var sentencePool = [...]string{
	"This approach allows us to see beyond the obvious implications.",
	"By examining the underlying patterns, we can derive meaningful insights.",
	"The interconnected nature of these elements reveals a cohesive framework.",
	"When we consider the broader context, new possibilities emerge.",
	"A careful analysis shows multiple dimensions worth exploring.",
	"The evidence suggests a nuanced interpretation is necessary.",
	"Looking at historical precedents helps illuminate current challenges.",
	"By reframing the question, we discover alternative solutions.",
	"The intersection of these ideas creates a fertile ground for innovation.",
	"A balanced perspective requires acknowledging competing viewpoints.",
}

const closing = "In conclusion, this approach offers valuable insights while acknowledging the complexity of the subject."

// Generator builds completions from card fragments and sampled filler sentences
type Generator struct {
	logger *zap.Logger
	rand   latency.RandSource
}

// NewGenerator creates a generator drawing randomness from src
func NewGenerator(logger *zap.Logger, src latency.RandSource) *Generator {
	logger.Info("generator initialized", zap.String("model", ModelName))
	return &Generator{logger: logger, rand: src}
}

// Generate assembles a completion truncated to p.MaxTokens words
func (g *Generator) Generate(ctx context.Context, p Params) (resp *models.GenerationResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("generate response: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.MaxTokens <= 0 {
		return nil, fmt.Errorf("generate response: max_tokens must be positive (got %d)", p.MaxTokens)
	}

	start := time.Now()
	r := g.rand()

	var parts []string

	if tone, ok := catalog.MentorTones.LookupPtr(p.MentorType); ok {
		parts = append(parts, fmt.Sprintf("As %s, I'll approach this %s.", *p.MentorType, tone))
	} else {
		parts = append(parts, genericIntro)
	}

	if structure, ok := catalog.MethodStructures.LookupPtr(p.MethodType); ok {
		parts = append(parts, fmt.Sprintf("I'll analyze this by %s.", structure))
	} else {
		parts = append(parts, genericMethod)
	}

	terms := placeholder
	if keyTerms := catalog.KeyTerms(p.Prompt, 4, 5); len(keyTerms) > 0 {
		terms = strings.Join(keyTerms, ", ")
	}
	parts = append(parts, fmt.Sprintf("Regarding %s,", terms))

	for _, modifier := range p.Modifiers {
		if effect, ok := catalog.ModifierEffects.Lookup(modifier); ok {
			parts = append(parts, fmt.Sprintf("I'll address this by %s.", effect))
		}
	}

	n := min(max(3, int(10*p.Temperature)), len(sentencePool))
	for _, i := range r.Perm(len(sentencePool))[:n] {
		parts = append(parts, sentencePool[i])
	}

	parts = append(parts, closing)

	words := catalog.Words(strings.Join(parts, " "))
	tokenCount := min(len(words), p.MaxTokens)
	elapsed := time.Since(start)

	g.logger.Info("generation completed",
		zap.String("prompt_preview", preview(p.Prompt)),
		zap.Int("token_count", tokenCount),
		zap.Duration("elapsed", elapsed),
	)

	return &models.GenerationResponse{
		Output:         strings.Join(words[:tokenCount], " "),
		TokenCount:     tokenCount,
		GenerationTime: elapsed.Seconds(),
		ModelUsed:      ModelName,
	}, nil
}
