// Package generation assembles synthetic completions from card fragments.
package generation

import (
	"context"

	"github.com/promptcraft/guild-api/internal/models"
)

// ModelName is reported in model_used by both generators
const ModelName = "mistral-7b-instruct-mock"

// Params are the inputs consulted by the generators
type Params struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
	MentorType  *string
	MethodType  *string
	Modifiers   []string
}

// ParamsFromRequest extracts the generation inputs from a request
func ParamsFromRequest(req models.GenerationRequest) Params {
	return Params{
		Prompt:      models.StringValue(req.Prompt),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		MentorType:  req.MentorType,
		MethodType:  req.MethodType,
		Modifiers:   req.Modifiers,
	}
}

// Completer produces a completion for a prompt
type Completer interface {
	Generate(ctx context.Context, p Params) (*models.GenerationResponse, error)
}

const (
	genericIntro  = "Here's a thoughtful response to your query."
	genericMethod = "Let's explore this topic systematically."
	placeholder   = "this topic"
)

func preview(prompt string) string {
	r := []rune(prompt)
	if len(r) > 30 {
		return string(r[:30])
	}
	return prompt
}
