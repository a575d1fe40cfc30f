// Package eventbus publishes completed evaluations and generations for
// downstream consumers such as leaderboards and analytics.
package eventbus

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Subjects
const (
	SubjectEvaluationCompleted = "promptcraft.evaluation.completed"
	SubjectGenerationCompleted = "promptcraft.generation.completed"
)

// Event types
const (
	TypeEvaluationCompleted = "evaluation.completed"
	TypeGenerationCompleted = "generation.completed"
)

// Event is the envelope published for every completed model call.
// The prompt itself is never published, only its fingerprint.
type Event struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	Variant           string    `json:"variant"`
	RequestID         string    `json:"request_id,omitempty"`
	PromptFingerprint string    `json:"prompt_fingerprint"`
	PromptTokens      int       `json:"prompt_tokens"`
	MentorType        string    `json:"mentor_type,omitempty"`
	MethodType        string    `json:"method_type,omitempty"`
	Modifiers         []string  `json:"modifiers,omitempty"`
	Score             *float64  `json:"score,omitempty"`
	TokenCount        *int      `json:"token_count,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// Fingerprint returns the hex BLAKE2b-256 digest of prompt
func Fingerprint(prompt string) string {
	sum := blake2b.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

// NewEvent fills the envelope fields shared by every event
func NewEvent(eventType, variant, requestID, prompt string, promptTokens int) Event {
	return Event{
		ID:                uuid.NewString(),
		Type:              eventType,
		Variant:           variant,
		RequestID:         requestID,
		PromptFingerprint: Fingerprint(prompt),
		PromptTokens:      promptTokens,
		Timestamp:         time.Now().UTC(),
	}
}
