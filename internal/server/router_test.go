package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/evaluation"
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

func newTestRouter(t *testing.T, mutate func(*Deps)) *gin.Engine {
	t.Helper()
	logger := zap.NewNop()
	src := latency.NewRandSource(7)
	cat, err := catalog.New()
	require.NoError(t, err)

	d := Deps{
		Logger:        logger,
		Generator:     generation.NewGenerator(logger, src),
		MockGenerator: generation.NewMockGenerator(logger, 0),
		Evaluator:     evaluation.NewEvaluator(logger, src),
		MockEvaluator: evaluation.NewMockEvaluator(logger, 0),
		Catalog:       cat,
		Rand:          src,
		Registry:      prometheus.NewRegistry(),
	}
	if mutate != nil {
		mutate(&d)
	}
	return NewRouter(d)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndRoot(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","services":{"api":"up"}}`, w.Body.String())

	w = do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var root map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))
	assert.Equal(t, "/docs", root["docs"])
	assert.Equal(t, "/health", root["health"])
	assert.NotEmpty(t, root["message"])
}

func TestGenerateRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, path := range []string{"/api/generate/", "/api/generate"} {
		w := do(r, http.MethodPost, path, `{"prompt":"Describe a lighthouse","temperature":0.9,"max_tokens":12,"mentor_type":"The Sage","method_type":"Chain-of-Thought","modifiers":["Token Limit"]}`)
		require.Equal(t, http.StatusOK, w.Code, path)

		var resp models.GenerationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.LessOrEqual(t, resp.TokenCount, 12)
		assert.Equal(t, len(strings.Fields(resp.Output)), resp.TokenCount)
		assert.Equal(t, generation.ModelName, resp.ModelUsed)
	}
}

func TestGenerateMockEmptyPrompt(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/api/generate/mock", `{"prompt":"","mentor_type":null,"method_type":null,"modifiers":null,"max_tokens":256}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, generation.Compose(generation.Params{MaxTokens: 256}), resp.Output)
	assert.True(t, strings.HasPrefix(resp.Output, "Here's a thoughtful response to your query."))
	assert.Contains(t, resp.Output, "Let's explore this topic systematically.")
	assert.Contains(t, resp.Output, "Regarding this topic,")
	assert.Equal(t, len(strings.Fields(resp.Output)), resp.TokenCount)
}

func TestEvaluateMockOverLimit(t *testing.T) {
	r := newTestRouter(t, nil)

	prompt := strings.TrimSpace(strings.Repeat("word ", 200))
	body, err := json.Marshal(map[string]any{"prompt": prompt, "mentor_type": nil, "method_type": nil, "token_limit": 150})
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/api/evaluate/mock", string(body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EvaluationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Score)
	assert.Zero(t, resp.Metrics[models.MetricConstraintAdherence])
	assert.Contains(t, resp.Reasoning, "200/150")
}

func TestEvaluateMockSatisfactoryIsDeterministic(t *testing.T) {
	r := newTestRouter(t, nil)
	body := `{"prompt":"short prompt","mentor_type":"The Archivist","method_type":"Chain-of-Thought","token_limit":150}`

	w1 := do(r, http.MethodPost, "/api/evaluate/mock", body)
	w2 := do(r, http.MethodPost, "/api/evaluate/mock", body)
	require.Equal(t, http.StatusOK, w1.Code)
	assert.JSONEq(t, w1.Body.String(), w2.Body.String())

	var resp models.EvaluationResponse
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &resp))
	assert.InDelta(t, 0.7, resp.Score, 1e-9)
	assert.Contains(t, resp.Feedback, "The Archivist")
}

func TestEvaluateRealBounds(t *testing.T) {
	r := newTestRouter(t, func(d *Deps) { d.Evaluator = evaluation.NewEvaluator(zap.NewNop(), latency.NewRandSource(0)) })

	for range 25 {
		w := do(r, http.MethodPost, "/api/evaluate/", `{"prompt":"Explain recursion to a child","mentor_type":"The Guide","method_type":"Socratic Method","modifiers":["Token Limit"],"token_limit":10}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.EvaluationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.GreaterOrEqual(t, resp.Score, 0.0)
		assert.LessOrEqual(t, resp.Score, 1.0)
		for name, v := range resp.Metrics {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		path string
		body string
	}{
		{path: "/api/generate/mock", body: `{}`},
		{path: "/api/generate/", body: `{"prompt":"x","max_tokens":-1}`},
		{path: "/api/evaluate/mock", body: `{"token_limit":10}`},
		{path: "/api/evaluate/", body: `{"prompt":"x","token_limit":0}`},
	}
	for _, tt := range tests {
		w := do(r, http.MethodPost, tt.path, tt.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.path+" "+tt.body)
	}
}

func TestCardRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/cards/", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/cards/deal", "")
	require.Equal(t, http.StatusOK, w.Code)
	var hand models.Hand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hand))
	assert.Len(t, hand.Mentors, 2)

	w = do(r, http.MethodGet, "/api/cards/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/tokens/count", `{"prompt":"one two","cards":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text_tokens":2,"card_tokens":0,"total_tokens":2}`, w.Body.String())
}

func TestRateLimitAppliesToRealRoutesOnly(t *testing.T) {
	r := newTestRouter(t, func(d *Deps) { d.Limiter = middleware.NewRateLimiter(1, 1, time.Hour) })

	body := `{"prompt":"hello"}`
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/evaluate/", body).Code)

	w := do(r, http.MethodPost, "/api/evaluate/", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/generate/", body).Code)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/evaluate/mock", body).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/generate/mock", body).Code)
}

func TestBasePath(t *testing.T) {
	r := newTestRouter(t, func(d *Deps) { d.BasePath = "/guild" })

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/guild/", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/guild/api/evaluate/mock", `{"prompt":"hi"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/evaluate/mock", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)
	do(r, http.MethodGet, "/health", "")

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "promptcraft_http_requests_total")
	assert.Contains(t, w.Body.String(), "promptcraft_model_circuit_state")
}

func TestDocs(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/docs/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/evaluate/mock")
}
