package usecase

import "go.uber.org/fx"

// Module provides checkout use cases to the fx container.
var Module = fx.Provide(
	NewDiscountCache,
	NewCardUseCase,
	NewBillingUseCase,
	NewPaymentUseCase,
)
