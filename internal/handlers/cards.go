package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/latency"
	"github.com/promptcraft/guild-api/internal/middleware"
	"github.com/promptcraft/guild-api/internal/models"
)

// CardHandler serves the card catalog and the token calculator
type CardHandler struct {
	catalog *catalog.Catalog
	rand    latency.RandSource
}

// NewCardHandler creates a card handler dealing hands from src
func NewCardHandler(cat *catalog.Catalog, src latency.RandSource) *CardHandler {
	return &CardHandler{catalog: cat, rand: src}
}

// ListCards godoc
// @Summary List every card
// @Tags cards
// @Produce json
// @Success 200 {object} models.Hand
// @Router /api/cards/ [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.All())
}

// DealHand godoc
// @Summary Deal a random hand
// @Description Two mentors, two methods and one modifier.
// @Tags cards
// @Produce json
// @Success 200 {object} models.Hand
// @Router /api/cards/deal [get]
func (h *CardHandler) DealHand(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Deal(h.rand()))
}

// GetCard godoc
// @Summary Get a card by id or title
// @Tags cards
// @Produce json
// @Param id path string true "Card id or title"
// @Success 200 {object} models.Card
// @Failure 404 {object} middleware.APIError
// @Router /api/cards/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	card, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		middleware.NotFound(c, "card not found: "+c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, card)
}

// CountTokens godoc
// @Summary Price a prompt and its cards
// @Tags cards
// @Accept json
// @Produce json
// @Param request body models.TokenCountRequest true "Prompt and card references"
// @Success 200 {object} models.TokenCountResponse
// @Failure 400 {object} middleware.APIError
// @Router /api/tokens/count [post]
func (h *CardHandler) CountTokens(c *gin.Context) {
	var req models.TokenCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid token count request: "+err.Error())
		return
	}

	resp, err := h.catalog.CountTokens(req.Prompt, req.Cards)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCard) {
			middleware.BadRequest(c, err.Error())
			return
		}
		middleware.InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
