package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/evaluation"
	"github.com/promptcraft/guild-api/internal/eventbus"
	"github.com/promptcraft/guild-api/internal/generation"
	"github.com/promptcraft/guild-api/internal/latency"
	"github.com/promptcraft/guild-api/internal/middleware"
	"github.com/promptcraft/guild-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	events   []eventbus.Event
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, event eventbus.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() {}

type failingCompleter struct{ err error }

func (f failingCompleter) Generate(context.Context, generation.Params) (*models.GenerationResponse, error) {
	return nil, f.err
}

type failingScorer struct{ err error }

func (f failingScorer) Evaluate(context.Context, evaluation.Params) (*models.EvaluationResponse, error) {
	return nil, f.err
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) middleware.APIError {
	t.Helper()
	var body struct {
		Error middleware.APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func newGenerationRouter(real generation.Completer, events eventbus.Publisher) (*gin.Engine, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	logger := zap.NewNop()
	h := NewGenerationHandler(real, generation.NewMockGenerator(logger, 0), middleware.NewMetrics(reg), events, logger)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.POST("/generate", h.Generate)
	r.POST("/generate/mock", h.GenerateMock)
	return r, reg
}

func newEvaluationRouter(real evaluation.Scorer, events eventbus.Publisher) (*gin.Engine, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	logger := zap.NewNop()
	h := NewEvaluationHandler(real, evaluation.NewMockEvaluator(logger, 0), middleware.NewMetrics(reg), events, logger)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.POST("/evaluate", h.Evaluate)
	r.POST("/evaluate/mock", h.EvaluateMock)
	return r, reg
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler(map[string]Check{
		"redis": func(context.Context) error { return errors.New("down") },
	})
	r := gin.New()
	r.GET("/health", h.Health)

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","services":{"api":"up"}}`, w.Body.String())
}

func TestDeepHealth(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantBody   string
		wantDeps   map[string]string
	}{
		{
			name:       "nothing configured",
			checks:     map[string]Check{"redis": nil, "nats": nil},
			wantStatus: http.StatusOK,
			wantBody:   "healthy",
			wantDeps:   map[string]string{"redis": "not configured", "nats": "not configured"},
		},
		{
			name: "one dependency down",
			checks: map[string]Check{
				"redis": func(context.Context) error { return nil },
				"nats":  func(context.Context) error { return errors.New("nats status CLOSED") },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "degraded",
			wantDeps:   map[string]string{"redis": "healthy", "nats": "unhealthy: nats status CLOSED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health/deep", NewHealthHandler(tt.checks).DeepHealth)

			w := get(r, "/health/deep")
			require.Equal(t, tt.wantStatus, w.Code)

			var resp DeepHealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantBody, resp.Status)
			assert.Equal(t, tt.wantDeps, resp.Dependencies)
		})
	}
}

func TestRoot(t *testing.T) {
	r := gin.New()
	r.GET("/", NewHealthHandler(nil).Root)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to Promptcraft Guild API","docs":"/docs","health":"/health"}`, w.Body.String())
}

func TestGenerateMock(t *testing.T) {
	events := &recordingPublisher{}
	r, reg := newGenerationRouter(failingCompleter{}, events)

	w := post(r, "/generate/mock", `{"prompt":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(strings.Fields(resp.Output)), resp.TokenCount)
	assert.Equal(t, generation.ModelName, resp.ModelUsed)

	require.Len(t, events.events, 1)
	assert.Equal(t, eventbus.SubjectGenerationCompleted, events.subjects[0])
	assert.Equal(t, VariantMock, events.events[0].Variant)
	assert.Equal(t, resp.TokenCount, *events.events[0].TokenCount)
	assert.NotEmpty(t, events.events[0].RequestID)

	count, err := testutil.GatherAndCount(reg, "promptcraft_generation_tokens")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGenerateRealTruncates(t *testing.T) {
	logger := zap.NewNop()
	r, _ := newGenerationRouter(generation.NewGenerator(logger, latency.NewRandSource(3)), eventbus.NopPublisher{})

	w := post(r, "/generate", `{"prompt":"explain tides","temperature":1.0,"max_tokens":5,"mentor_type":"The Sage"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.LessOrEqual(t, resp.TokenCount, 5)
}

func TestGenerateBadRequest(t *testing.T) {
	r, _ := newGenerationRouter(failingCompleter{}, eventbus.NopPublisher{})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing prompt", body: `{"max_tokens":10}`},
		{name: "zero max tokens", body: `{"prompt":"x","max_tokens":0}`},
		{name: "malformed json", body: `{"prompt":`},
		{name: "wrong type", body: `{"prompt":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, "/generate/mock", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, middleware.ErrCodeBadRequest, decodeError(t, w).Code)
		})
	}
}

func TestGenerateFailure(t *testing.T) {
	events := &recordingPublisher{}
	r, _ := newGenerationRouter(failingCompleter{err: errors.New("sampler exploded")}, events)

	w := post(r, "/generate", `{"prompt":"hello"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	apiErr := decodeError(t, w)
	assert.Equal(t, middleware.ErrCodeInternalError, apiErr.Code)
	assert.Equal(t, "Generation error: sampler exploded", apiErr.Message)
	assert.Empty(t, events.events)
}

func TestEvaluateMockSatisfactory(t *testing.T) {
	events := &recordingPublisher{}
	r, reg := newEvaluationRouter(failingScorer{}, events)

	w := post(r, "/evaluate/mock", `{"prompt":"short prompt","mentor_type":"The Archivist","method_type":"Chain-of-Thought","token_limit":150}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EvaluationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.7, resp.Score, 1e-9)

	require.Len(t, events.events, 1)
	assert.Equal(t, eventbus.SubjectEvaluationCompleted, events.subjects[0])
	assert.Equal(t, "The Archivist", events.events[0].MentorType)
	assert.Equal(t, 2, events.events[0].PromptTokens)
	assert.InDelta(t, 0.7, *events.events[0].Score, 1e-9)

	count, err := testutil.GatherAndCount(reg, "promptcraft_evaluation_score")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEvaluatePublishFailureStillResponds(t *testing.T) {
	events := &recordingPublisher{err: errors.New("no responders")}
	r, _ := newEvaluationRouter(failingScorer{}, events)

	w := post(r, "/evaluate/mock", `{"prompt":"hi"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEvaluateFailure(t *testing.T) {
	r, _ := newEvaluationRouter(failingScorer{err: evaluation.ErrInvalidTokenLimit}, eventbus.NopPublisher{})

	w := post(r, "/evaluate", `{"prompt":"hello"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	apiErr := decodeError(t, w)
	assert.Contains(t, apiErr.Message, "error")
	assert.Equal(t, "Evaluation error: token limit must be positive", apiErr.Message)
	assert.Equal(t, evaluation.ErrInvalidTokenLimit.Error(), apiErr.Details)
}

func TestEvaluateCancelled(t *testing.T) {
	logger := zap.NewNop()
	reg := prometheus.NewRegistry()
	h := NewEvaluationHandler(failingScorer{}, evaluation.NewMockEvaluator(logger, evaluation.DefaultMockDelay),
		middleware.NewMetrics(reg), eventbus.NopPublisher{}, logger)
	r := gin.New()
	r.POST("/evaluate/mock", h.EvaluateMock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/evaluate/mock", strings.NewReader(`{"prompt":"hi"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, middleware.StatusClientClosedRequest, w.Code)
	assert.Equal(t, middleware.ErrCodeRequestCancelled, decodeError(t, w).Code)
}

func newCardRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	h := NewCardHandler(cat, latency.NewRandSource(11))

	r := gin.New()
	r.GET("/cards", h.ListCards)
	r.GET("/cards/deal", h.DealHand)
	r.GET("/cards/:id", h.GetCard)
	r.POST("/tokens/count", h.CountTokens)
	return r
}

func TestCards(t *testing.T) {
	r := newCardRouter(t)

	w := get(r, "/cards")
	require.Equal(t, http.StatusOK, w.Code)
	var all models.Hand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all.Mentors, 5)
	assert.Len(t, all.Methods, 5)
	assert.Len(t, all.Modifiers, 5)

	w = get(r, "/cards/deal")
	require.Equal(t, http.StatusOK, w.Code)
	var hand models.Hand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hand))
	assert.Len(t, hand.Mentors, catalog.DealMentors)
	assert.Len(t, hand.Methods, catalog.DealMethods)
	assert.Len(t, hand.Modifiers, catalog.DealModifiers)

	id := all.Mentors[0].ID
	w = get(r, "/cards/"+id)
	require.Equal(t, http.StatusOK, w.Code)
	var card models.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, all.Mentors[0], card)

	w = get(r, "/cards/no-such-card")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, middleware.ErrCodeNotFound, decodeError(t, w).Code)
}

func TestCountTokens(t *testing.T) {
	r := newCardRouter(t)

	w := post(r, "/tokens/count", `{"prompt":"three little words","cards":["The Sage"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.TokenCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TextTokens)
	assert.Positive(t, resp.CardTokens)
	assert.Equal(t, resp.TextTokens+resp.CardTokens, resp.TotalTokens)

	w = post(r, "/tokens/count", `{"prompt":"x","cards":["Nobody"]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "unknown card")
}
