package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/polkiloo/checkout/internal/server/http/handlers"
	"github.com/polkiloo/checkout/internal/server/http/middleware"
)

// Payment forms are small; larger bodies, plain or decompressed, are cut off.
const maxRequestBody = 1 << 20

// Options tunes the cross-cutting middleware.
type Options struct {
	RateLimit rate.Limit
	RateBurst int
	Registry  *prometheus.Registry
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CheckoutFacade, logger *slog.Logger, opts Options) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	metrics, err := middleware.NewMetrics(opts.Registry)
	if err != nil {
		return nil, err
	}

	engine.Use(gin.Recovery())
	engine.Use(middleware.AssignRequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Handler())
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	cardHandler := handlers.NewCardHandler(facade)
	billingHandler := handlers.NewBillingHandler(facade, logger)
	paymentHandler := handlers.NewPaymentHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.GET("/ping", healthHandler.Ping)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api/v1")
	api.Use(middleware.RateLimit(rate.NewLimiter(opts.RateLimit, opts.RateBurst), logger))

	card := api.Group("/card")
	card.POST("/check", cardHandler.Check)
	card.POST("/validate", cardHandler.Validate)

	api.GET("/payment/real-time-bill", billingHandler.RealTimeBill)
	api.POST("/payment/process", paymentHandler.ProcessRental)
	api.POST("/membership/payment", paymentHandler.ProcessMembership)

	return engine, nil
}
