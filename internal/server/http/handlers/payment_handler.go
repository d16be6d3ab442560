package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/server/http/dto"
)

// CardPaymentFacade validates cards and processes checkouts.
type CardPaymentFacade interface {
	CardFacade
	PaymentFacade
}

// PaymentHandler serves the rental and membership checkouts.
type PaymentHandler struct {
	facade CardPaymentFacade
	logger *slog.Logger
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade CardPaymentFacade, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{facade: facade, logger: logger}
}

// ProcessRental handles POST /api/v1/payment/process.
func (h *PaymentHandler) ProcessRental(c *gin.Context) {
	var req dto.RentalPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid payment request")
		return
	}
	if !h.cardAccepted(c, req.PaymentMethod, req.Card) {
		return
	}

	vehicleID, err := strconv.ParseInt(strings.TrimSpace(req.VehicleID), 10, 64)
	if err != nil {
		badRequest(c, "Invalid vehicle ID")
		return
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(req.TotalPrice), 64)
	if err != nil {
		badRequest(c, "Invalid total price")
		return
	}
	start, err := time.Parse(model.RentalDateLayout, req.StartDate)
	if err != nil {
		badRequest(c, "Invalid start date format")
		return
	}
	end, err := time.Parse(model.RentalDateLayout, req.EndDate)
	if err != nil {
		badRequest(c, "Invalid end date format")
		return
	}

	receipt, err := h.facade.PayRental(c.Request.Context(), model.RentalPayment{
		UserID:        req.UserID,
		VehicleID:     vehicleID,
		StartDate:     start,
		EndDate:       end,
		TotalPrice:    total,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		Email:         req.Email,
		Card:          toCardInput(req.Card),
	})
	if err != nil {
		writePaymentError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReceiptResponse{
		Message:   receipt.Message,
		BookingID: receipt.BookingID,
		PaymentID: receipt.PaymentID,
	})
}

// ProcessMembership handles POST /api/v1/membership/payment.
func (h *PaymentHandler) ProcessMembership(c *gin.Context) {
	var req dto.MembershipPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid payment request")
		return
	}
	if !h.cardAccepted(c, req.PaymentMethod, req.Card) {
		return
	}

	var start, end time.Time
	var err error
	if req.StartDate != "" {
		if start, err = time.Parse(model.RentalDateLayout, req.StartDate); err != nil {
			badRequest(c, "Invalid start date format")
			return
		}
	}
	if req.EndDate != "" {
		if end, err = time.Parse(model.RentalDateLayout, req.EndDate); err != nil {
			badRequest(c, "Invalid end date format")
			return
		}
	}

	receipt, err := h.facade.PayMembership(c.Request.Context(), model.MembershipPayment{
		UserID:          req.UserID,
		MembershipLevel: req.MembershipLevel,
		Amount:          req.Amount,
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
		StartDate:       start,
		EndDate:         end,
		Email:           req.Email,
		Card:            toCardInput(req.Card),
	})
	if err != nil {
		writePaymentError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReceiptResponse{
		Message:   receipt.Message,
		PaymentID: receipt.PaymentID,
	})
}

// cardAccepted surfaces card errors before any booking field is parsed, so
// the page shows the card problem first. It writes the response on failure.
func (h *PaymentHandler) cardAccepted(c *gin.Context, method string, card *dto.CardRequest) bool {
	if model.PaymentMethod(method) != model.PaymentMethodCard {
		return true
	}
	input := toCardInput(card)
	if input == nil {
		input = &model.PaymentCardInput{}
	}
	if _, err := h.facade.ValidateCard(*input); err != nil {
		writePaymentError(c, h.logger, err)
		return false
	}
	return true
}
