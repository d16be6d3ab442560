package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
)

// DiscountRepositoryStub serves discount tiers from memory.
type DiscountRepositoryStub struct {
	Tiers  map[string]float64
	GetFn  func(context.Context, string) (*model.Discount, error)
	ListFn func(context.Context) ([]model.Discount, error)
	Err    error

	mu        sync.Mutex
	getCalls  int
	listCalls int
}

// NewDiscountRepositoryStub returns a stub seeded with the default tiers.
func NewDiscountRepositoryStub() *DiscountRepositoryStub {
	return &DiscountRepositoryStub{Tiers: map[string]float64{
		"Basic":   0,
		"Premium": 10,
		"VIP":     20,
	}}
}

// Get returns the tier for level or not found.
func (s *DiscountRepositoryStub) Get(ctx context.Context, level string) (*model.Discount, error) {
	s.mu.Lock()
	s.getCalls++
	s.mu.Unlock()

	if s.GetFn != nil {
		return s.GetFn(ctx, level)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	pct, ok := s.Tiers[level]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &model.Discount{MembershipLevel: level, Percentage: pct}, nil
}

// List returns every tier.
func (s *DiscountRepositoryStub) List(ctx context.Context) ([]model.Discount, error) {
	s.mu.Lock()
	s.listCalls++
	s.mu.Unlock()

	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]model.Discount, 0, len(s.Tiers))
	for level, pct := range s.Tiers {
		items = append(items, model.Discount{MembershipLevel: level, Percentage: pct})
	}
	return items, nil
}

// GetCalls reports how many times Get was invoked.
func (s *DiscountRepositoryStub) GetCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCalls
}

// ListCalls reports how many times List was invoked.
func (s *DiscountRepositoryStub) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

// PaymentGatewayStub records forwarded charges.
type PaymentGatewayStub struct {
	RentalFn     func(context.Context, model.RentalCharge) (*model.Receipt, error)
	MembershipFn func(context.Context, model.MembershipCharge) (*model.Receipt, error)

	Rentals     []model.RentalCharge
	Memberships []model.MembershipCharge
}

// SubmitRental records the charge and returns a receipt.
func (s *PaymentGatewayStub) SubmitRental(ctx context.Context, charge model.RentalCharge) (*model.Receipt, error) {
	s.Rentals = append(s.Rentals, charge)
	if s.RentalFn != nil {
		return s.RentalFn(ctx, charge)
	}
	return &model.Receipt{Message: "Payment processed successfully", BookingID: 1, PaymentID: 1}, nil
}

// SubmitMembership records the charge and returns a receipt.
func (s *PaymentGatewayStub) SubmitMembership(ctx context.Context, charge model.MembershipCharge) (*model.Receipt, error) {
	s.Memberships = append(s.Memberships, charge)
	if s.MembershipFn != nil {
		return s.MembershipFn(ctx, charge)
	}
	return &model.Receipt{Message: "Membership payment processed successfully", PaymentID: 1}, nil
}
