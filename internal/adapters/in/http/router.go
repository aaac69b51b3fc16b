package http

import (
	"context"
	"log/slog"
	"net/http"

	"checkout/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	// CORSOrigins lists allowed browser origins; echo allows any when empty.
	CORSOrigins []string
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger
}

// NewRouter wires routes, identity checks, request validation and the
// operational endpoints onto a new echo instance.
func NewRouter(ctx context.Context, s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerDocs(doc); err != nil {
		return nil, err
	}
	validator, err := newRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newErrorHandler(logger.With("component", "http"))

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, HeaderIdemKey, HeaderUserID, HeaderUserRole},
		AllowCredentials: true,
	}))
	if cfg.Metrics != nil {
		e.Use(recordMetrics(cfg.Metrics))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Gatherer)))
	}
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api", requireUser())

	orders := api.Group("/orders", validateRequest(validator))
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.POST("/:id/confirm-payment", s.ConfirmPayment)
	orders.POST("/:id/cancel", s.CancelOrder)
	orders.GET("/:id/shipping", s.GetShipping)

	admin := api.Group("/admin", requireRole(RoleAdmin), validateRequest(validator))
	admin.POST("/orders/:id/ship", s.ShipOrder)
	admin.POST("/orders/:id/mark-delivered", s.MarkDelivered)

	return e, nil
}
