package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/checkout/internal/server/http/dto"
)

// CardHandler serves the card checks behind the payment form.
type CardHandler struct {
	facade CardFacade
}

// NewCardHandler constructs CardHandler.
func NewCardHandler(facade CardFacade) *CardHandler {
	return &CardHandler{facade: facade}
}

// Check handles POST /api/v1/card/check.
func (h *CardHandler) Check(c *gin.Context) {
	var req dto.CardCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	check := h.facade.CheckCard(req.Number)
	c.JSON(http.StatusOK, dto.CardCheckResponse{
		Valid:   check.Valid,
		Network: string(check.Network),
		Masked:  check.Masked,
		Reason:  check.Reason,
	})
}

// Validate handles POST /api/v1/card/validate.
func (h *CardHandler) Validate(c *gin.Context) {
	var req dto.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	network, err := h.facade.ValidateCard(*toCardInput(&req))
	if err != nil {
		if resp, ok := cardErrorResponse(err); ok {
			c.JSON(http.StatusUnprocessableEntity, resp)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CardValidateResponse{Network: string(network)})
}
