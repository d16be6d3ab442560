package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/polkiloo/checkout/internal/config"
	"github.com/polkiloo/checkout/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	newRegistry,
	newRouter,
)

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

type routerParams struct {
	fx.In

	Facade   handlers.CheckoutFacade
	Logger   *slog.Logger
	Config   *config.Config
	Registry *prometheus.Registry
}

func newRouter(p routerParams) (*gin.Engine, error) {
	return Setup(p.Facade, p.Logger, Options{
		RateLimit: rate.Limit(p.Config.RateLimitRPS),
		RateBurst: p.Config.RateLimitBurst,
		Registry:  p.Registry,
	})
}
