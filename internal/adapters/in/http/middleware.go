package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Identity is set by the upstream gateway after authentication.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderIdemKey  = "Idempotency-Key"

	RoleAdmin = "admin"

	ctxUserID = "checkout.userID"
)

func requireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			userID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid user identity")
			}
			c.Set(ctxUserID, userID)
			return next(c)
		}
	}
}

func requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.EqualFold(strings.TrimSpace(c.Request().Header.Get(HeaderUserRole)), role) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

func userID(c echo.Context) kernel.UUID {
	id, _ := c.Get(ctxUserID).(kernel.UUID)
	return id
}

// recordMetrics counts requests by route template, so path ids do not blow up
// label cardinality.
func recordMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.Requests.WithLabelValues(method, route, status).Inc()
			m.LatencyMS.WithLabelValues(method, route).Observe(float64(time.Since(start).Microseconds()) / 1000)
			return nil
		}
	}
}
