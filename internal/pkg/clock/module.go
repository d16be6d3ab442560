package clock

import (
	"go.uber.org/fx"

	"github.com/polkiloo/checkout/internal/config"
)

// Module provides the system clock in the configured location.
var Module = fx.Provide(newClock)

func newClock(cfg *config.Config) (Clock, error) {
	return NewSystem(cfg.ClockLocation)
}
