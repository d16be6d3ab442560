package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
)

const (
	rentalPath     = "/api/v1/payments/rental"
	membershipPath = "/api/v1/payments/membership"

	wireDateLayout = "2006-01-02 15:04:05"
)

// TooManyRequestsError represents rate limiting signal from the payment API.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client submits charges to the payment API.
type Client interface {
	SubmitRental(ctx context.Context, charge model.RentalCharge) (*model.Receipt, error)
	SubmitMembership(ctx context.Context, charge model.MembershipCharge) (*model.Receipt, error)
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type cardPayload struct {
	HolderName   string `json:"holder_name"`
	MaskedNumber string `json:"masked_number"`
	Network      string `json:"network"`
}

type rentalRequest struct {
	UserID        int64        `json:"user_id"`
	VehicleID     int64        `json:"vehicle_id"`
	BookingDate   string       `json:"booking_date"`
	ReturnDate    string       `json:"return_date"`
	TotalPrice    float64      `json:"total_price"`
	PaymentMethod string       `json:"payment_method"`
	Email         string       `json:"email,omitempty"`
	Card          *cardPayload `json:"card,omitempty"`
}

type membershipRequest struct {
	UserID          int64        `json:"user_id"`
	MembershipLevel string       `json:"membership_level"`
	Amount          float64      `json:"amount"`
	PaymentMethod   string       `json:"payment_method"`
	StartDate       string       `json:"start_date,omitempty"`
	EndDate         string       `json:"end_date,omitempty"`
	Email           string       `json:"email,omitempty"`
	Card            *cardPayload `json:"card,omitempty"`
}

// response mirrors JSON payload from the payment API.
type response struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
	PaymentID int64  `json:"payment_id"`
}

// NewHTTPClient creates payment API client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment api url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SubmitRental posts a rental charge.
func (c *HTTPClient) SubmitRental(ctx context.Context, charge model.RentalCharge) (*model.Receipt, error) {
	return c.post(ctx, rentalPath, rentalRequest{
		UserID:        charge.UserID,
		VehicleID:     charge.VehicleID,
		BookingDate:   charge.StartDate.Format(wireDateLayout),
		ReturnDate:    charge.EndDate.Format(wireDateLayout),
		TotalPrice:    charge.TotalPrice,
		PaymentMethod: string(charge.PaymentMethod),
		Email:         charge.Email,
		Card:          toCardPayload(charge.Card),
	})
}

// SubmitMembership posts a membership charge.
func (c *HTTPClient) SubmitMembership(ctx context.Context, charge model.MembershipCharge) (*model.Receipt, error) {
	return c.post(ctx, membershipPath, membershipRequest{
		UserID:          charge.UserID,
		MembershipLevel: charge.MembershipLevel,
		Amount:          charge.Amount,
		PaymentMethod:   string(charge.PaymentMethod),
		StartDate:       formatOptional(charge.StartDate),
		EndDate:         formatOptional(charge.EndDate),
		Email:           charge.Email,
		Card:            toCardPayload(charge.Card),
	})
}

func (c *HTTPClient) post(ctx context.Context, p string, payload any) (*model.Receipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payment request: %w", err)
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call payment api: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data response
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decode payment response: %w", err)
		}
		return &model.Receipt{Message: data.Message, BookingID: data.BookingID, PaymentID: data.PaymentID}, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Warn("payment rejected", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrPaymentRejected, resp.Status)
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("payment api error: %s", resp.Status)
	}
}

func toCardPayload(card *model.CardSummary) *cardPayload {
	if card == nil {
		return nil
	}
	return &cardPayload{HolderName: card.HolderName, MaskedNumber: card.Masked, Network: string(card.Network)}
}

func formatOptional(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(wireDateLayout)
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
