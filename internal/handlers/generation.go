package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/eventbus"
	"github.com/promptcraft/guild-api/internal/generation"
	"github.com/promptcraft/guild-api/internal/middleware"
	"github.com/promptcraft/guild-api/internal/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// GenerationHandler serves the completion endpoints
type GenerationHandler struct {
	real    generation.Completer
	mock    generation.Completer
	metrics *middleware.Metrics
	events  eventbus.Publisher
	logger  *zap.Logger
}

// NewGenerationHandler creates a generation handler
func NewGenerationHandler(real, mock generation.Completer, metrics *middleware.Metrics, events eventbus.Publisher, logger *zap.Logger) *GenerationHandler {
	return &GenerationHandler{real: real, mock: mock, metrics: metrics, events: events, logger: logger}
}

// Generate godoc
// @Summary Generate a completion
// @Description Assembles a randomized completion from the selected cards, truncated to max_tokens.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.GenerationRequest true "Generation request"
// @Success 200 {object} models.GenerationResponse
// @Failure 400 {object} middleware.APIError
// @Failure 429 {object} middleware.APIError
// @Failure 500 {object} middleware.APIError
// @Failure 503 {object} middleware.APIError
// @Router /api/generate/ [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	h.handle(c, h.real, VariantReal)
}

// GenerateMock godoc
// @Summary Generate a deterministic completion
// @Description Composes a deterministic completion after a simulated model delay.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.GenerationRequest true "Generation request"
// @Success 200 {object} models.GenerationResponse
// @Failure 400 {object} middleware.APIError
// @Router /api/generate/mock [post]
func (h *GenerationHandler) GenerateMock(c *gin.Context) {
	h.handle(c, h.mock, VariantMock)
}

func (h *GenerationHandler) handle(c *gin.Context, engine generation.Completer, variant string) {
	ctx, span := tracer.Start(c.Request.Context(), "Generate",
		trace.WithAttributes(attribute.String("generation.variant", variant)))
	defer span.End()

	req := models.NewGenerationRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid generation request: "+err.Error())
		return
	}

	params := generation.ParamsFromRequest(req)
	resp, err := engine.Generate(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if cancelled(ctx, err) {
			middleware.RequestCancelled(c)
			return
		}
		h.logger.Error("generation failed", zap.String("variant", variant), zap.Error(err))
		middleware.ProcessingError(c, "Generation", err)
		return
	}

	span.SetAttributes(attribute.Int("generation.token_count", resp.TokenCount))
	h.metrics.ObserveTokens(variant, resp.TokenCount)

	event := eventbus.NewEvent(eventbus.TypeGenerationCompleted, variant,
		middleware.GetRequestID(c), params.Prompt, catalog.CountWords(params.Prompt))
	event.MentorType = models.StringValue(params.MentorType)
	event.MethodType = models.StringValue(params.MethodType)
	event.Modifiers = params.Modifiers
	event.TokenCount = &resp.TokenCount
	if err := h.events.Publish(ctx, eventbus.SubjectGenerationCompleted, event); err != nil {
		h.logger.Warn("failed to publish generation event", zap.Error(err))
	}

	c.JSON(http.StatusOK, resp)
}
