package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/server/http/dto"
	"github.com/polkiloo/checkout/internal/server/http/middleware"
)

// BillingHandler serves price quotes.
type BillingHandler struct {
	facade BillingFacade
	logger *slog.Logger
}

// NewBillingHandler constructs BillingHandler.
func NewBillingHandler(facade BillingFacade, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{facade: facade, logger: logger}
}

// RealTimeBill handles GET /api/v1/payment/real-time-bill.
func (h *BillingHandler) RealTimeBill(c *gin.Context) {
	level := c.Query("membership_level")
	hours, err := strconv.Atoi(c.Query("duration_hours"))
	if err != nil {
		badRequest(c, "Invalid duration.")
		return
	}
	price, err := strconv.ParseFloat(c.Query("price_per_hour"), 64)
	if err != nil {
		badRequest(c, "Invalid price per hour.")
		return
	}

	bill, err := h.facade.RealTimeBill(c.Request.Context(), level, hours, price)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnknownMembershipLevel):
			badRequest(c, "Invalid membership level")
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			badRequest(c, "Invalid duration or price.")
		default:
			h.logger.Error("real-time bill failed",
				slog.String("request_id", middleware.RequestID(c)),
				slog.String("error", err.Error()),
			)
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.BillResponse{
		FinalPrice: bill.FinalPrice,
		Discount:   bill.Discount,
		TotalPrice: bill.TotalPrice,
		Membership: bill.MembershipLevel,
		Duration:   bill.DurationHours,
	})
}
