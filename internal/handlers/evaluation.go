package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/evaluation"
	"github.com/promptcraft/guild-api/internal/eventbus"
	"github.com/promptcraft/guild-api/internal/middleware"
	"github.com/promptcraft/guild-api/internal/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EvaluationHandler serves the scoring endpoints
type EvaluationHandler struct {
	real    evaluation.Scorer
	mock    evaluation.Scorer
	metrics *middleware.Metrics
	events  eventbus.Publisher
	logger  *zap.Logger
}

// NewEvaluationHandler creates an evaluation handler
func NewEvaluationHandler(real, mock evaluation.Scorer, metrics *middleware.Metrics, events eventbus.Publisher, logger *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{real: real, mock: mock, metrics: metrics, events: events, logger: logger}
}

// Evaluate godoc
// @Summary Evaluate a prompt
// @Description Scores a prompt against the selected cards and token limit, with jittered output.
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body models.EvaluationRequest true "Evaluation request"
// @Success 200 {object} models.EvaluationResponse
// @Failure 400 {object} middleware.APIError
// @Failure 429 {object} middleware.APIError
// @Failure 500 {object} middleware.APIError
// @Failure 503 {object} middleware.APIError
// @Router /api/evaluate/ [post]
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	h.handle(c, h.real, VariantReal)
}

// EvaluateMock godoc
// @Summary Evaluate a prompt deterministically
// @Description Scores a prompt with fixed rules after a simulated model delay.
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body models.EvaluationRequest true "Evaluation request"
// @Success 200 {object} models.EvaluationResponse
// @Failure 400 {object} middleware.APIError
// @Router /api/evaluate/mock [post]
func (h *EvaluationHandler) EvaluateMock(c *gin.Context) {
	h.handle(c, h.mock, VariantMock)
}

func (h *EvaluationHandler) handle(c *gin.Context, engine evaluation.Scorer, variant string) {
	ctx, span := tracer.Start(c.Request.Context(), "Evaluate",
		trace.WithAttributes(attribute.String("evaluation.variant", variant)))
	defer span.End()

	req := models.NewEvaluationRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid evaluation request: "+err.Error())
		return
	}

	params := evaluation.ParamsFromRequest(req)
	resp, err := engine.Evaluate(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if cancelled(ctx, err) {
			middleware.RequestCancelled(c)
			return
		}
		h.logger.Error("evaluation failed", zap.String("variant", variant), zap.Error(err))
		middleware.ProcessingError(c, "Evaluation", err)
		return
	}

	span.SetAttributes(attribute.Float64("evaluation.score", resp.Score))
	h.metrics.ObserveScore(variant, resp.Score)

	event := eventbus.NewEvent(eventbus.TypeEvaluationCompleted, variant,
		middleware.GetRequestID(c), params.Prompt, catalog.CountWords(params.Prompt))
	event.MentorType = models.StringValue(params.MentorType)
	event.MethodType = models.StringValue(params.MethodType)
	event.Modifiers = params.Modifiers
	event.Score = &resp.Score
	if err := h.events.Publish(ctx, eventbus.SubjectEvaluationCompleted, event); err != nil {
		h.logger.Warn("failed to publish evaluation event", zap.Error(err))
	}

	c.JSON(http.StatusOK, resp)
}
