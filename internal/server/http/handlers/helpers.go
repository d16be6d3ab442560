package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	paymentapi "github.com/polkiloo/checkout/internal/adapter/payment"
	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/server/http/dto"
	"github.com/polkiloo/checkout/internal/server/http/middleware"
)

// cardErrors maps card validation failures to codes and the texts the page shows.
var cardErrors = []struct {
	err     error
	code    string
	message string
}{
	{domainErrors.ErrEmptyHolderName, "empty_holder_name", "Cardholder name is required."},
	{domainErrors.ErrInvalidCardNumber, "invalid_card_number", "Invalid credit card number."},
	{domainErrors.ErrInvalidExpiry, "invalid_expiry", "Invalid expiry date."},
	{domainErrors.ErrInvalidCVV, "invalid_cvv", "Invalid CVV."},
}

// cardErrorResponse returns the response body for a card validation error.
func cardErrorResponse(err error) (dto.ErrorResponse, bool) {
	for _, ce := range cardErrors {
		if errors.Is(err, ce.err) {
			return dto.ErrorResponse{Error: ce.code, Message: ce.message}, true
		}
	}
	return dto.ErrorResponse{}, false
}

func toCardInput(req *dto.CardRequest) *model.PaymentCardInput {
	if req == nil {
		return nil
	}
	return &model.PaymentCardInput{
		HolderName: req.HolderName,
		Number:     req.Number,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
	}
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "bad_request", Message: message})
}

// writePaymentError translates checkout failures into HTTP responses.
func writePaymentError(c *gin.Context, logger *slog.Logger, err error) {
	if resp, ok := cardErrorResponse(err); ok {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, resp)
		return
	}

	var tooMany paymentapi.TooManyRequestsError
	switch {
	case errors.Is(err, domainErrors.ErrInvalidPayment):
		badRequest(c, "Invalid payment request.")
	case errors.Is(err, domainErrors.ErrPaymentRejected):
		c.AbortWithStatusJSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: "payment_rejected", Message: "Payment was declined."})
	case errors.As(err, &tooMany):
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(tooMany.RetryAfter)))
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "payment_unavailable", Message: "Payment service is busy, please retry."})
	default:
		logger.Error("payment failed",
			slog.String("request_id", middleware.RequestID(c)),
			slog.String("error", err.Error()),
		)
		c.AbortWithStatusJSON(http.StatusBadGateway, dto.ErrorResponse{Error: "payment_failed", Message: "Failed to process payment."})
	}
}

func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
