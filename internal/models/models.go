package models

import "encoding/json"

// GenerationRequest is the request body of the generate routes
type GenerationRequest struct {
	Prompt      *string  `json:"prompt" binding:"required"`
	Temperature float64  `json:"temperature"`
	MaxTokens   int      `json:"max_tokens" binding:"gt=0"`
	MentorType  *string  `json:"mentor_type,omitempty"`
	MethodType  *string  `json:"method_type,omitempty"`
	Modifiers   []string `json:"modifiers,omitempty"`
}

// NewGenerationRequest returns a request carrying the documented defaults.
// Binding JSON into it leaves absent fields at their default.
func NewGenerationRequest() GenerationRequest {
	return GenerationRequest{
		Temperature: 0.7,
		MaxTokens:   256,
	}
}

// GenerationResponse is the synthetic completion returned by the generate routes
type GenerationResponse struct {
	Output         string  `json:"output"`
	TokenCount     int     `json:"token_count"`
	GenerationTime float64 `json:"generation_time"`
	ModelUsed      string  `json:"model_used"`
}

// EvaluationCriteria selects which aspects an evaluation should focus on.
// Accepted for compatibility, the scoring engines do not consult it.
type EvaluationCriteria struct {
	Clarity        bool `json:"clarity"`
	Tone           bool `json:"tone"`
	Coherence      bool `json:"coherence"`
	ConstraintsMet bool `json:"constraints_met"`
}

// UnmarshalJSON defaults every flag to true before decoding
func (c *EvaluationCriteria) UnmarshalJSON(data []byte) error {
	type plain EvaluationCriteria
	v := plain{Clarity: true, Tone: true, Coherence: true, ConstraintsMet: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = EvaluationCriteria(v)
	return nil
}

// EvaluationRequest is the request body of the evaluate routes
type EvaluationRequest struct {
	Prompt       *string             `json:"prompt" binding:"required"`
	TargetOutput *string             `json:"target_output,omitempty"`
	MentorType   *string             `json:"mentor_type,omitempty"`
	MethodType   *string             `json:"method_type,omitempty"`
	Modifiers    []string            `json:"modifiers,omitempty"`
	TokenLimit   int                 `json:"token_limit" binding:"gt=0"`
	Criteria     *EvaluationCriteria `json:"criteria,omitempty"`
}

// NewEvaluationRequest returns a request carrying the documented defaults
func NewEvaluationRequest() EvaluationRequest {
	return EvaluationRequest{
		TokenLimit: 150,
	}
}

// Metric names reported in EvaluationResponse.Metrics
const (
	MetricClarity             = "clarity"
	MetricTone                = "tone"
	MetricCoherence           = "coherence"
	MetricConstraintAdherence = "constraint_adherence"
)

// EvaluationResponse is the scored feedback returned by the evaluate routes
type EvaluationResponse struct {
	Score             float64            `json:"score"`
	Feedback          string             `json:"feedback"`
	Reasoning         string             `json:"reasoning"`
	HighlightedTokens []string           `json:"highlighted_tokens"`
	Suggestions       []string           `json:"suggestions"`
	Metrics           map[string]float64 `json:"metrics"`
}

// CardType is the kind of a playing card
type CardType string

const (
	CardTypeMentor   CardType = "mentor"
	CardTypeMethod   CardType = "method"
	CardTypeModifier CardType = "modifier"
)

// Card is one entry of the card catalog
type Card struct {
	ID        string   `json:"id" yaml:"id"`
	Type      CardType `json:"type" yaml:"type"`
	Title     string   `json:"title" yaml:"title"`
	Content   string   `json:"content" yaml:"content"`
	TokenCost int      `json:"token_cost" yaml:"token_cost"`
	Icon      string   `json:"icon,omitempty" yaml:"icon"`
}

// Hand groups cards by type
type Hand struct {
	Mentors   []Card `json:"mentors"`
	Methods   []Card `json:"methods"`
	Modifiers []Card `json:"modifiers"`
}

// TokenCountRequest asks for the token cost of a prompt plus played cards.
// Cards are referenced by id or title.
type TokenCountRequest struct {
	Prompt string   `json:"prompt"`
	Cards  []string `json:"cards"`
}

// TokenCountResponse breaks the token cost down by source
type TokenCountResponse struct {
	TextTokens  int `json:"text_tokens"`
	CardTokens  int `json:"card_tokens"`
	TotalTokens int `json:"total_tokens"`
}
