package middleware

import (
	"strconv"
	"time"

	"github.com/fadilmartias/profile-analyzer/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// RequestLogger logs one entry per request and records it in m.
func RequestLogger(logger *zap.Logger, m *metrics.Metrics) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Let the app error handler set the final status before reading it.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		latency := time.Since(start)

		status := c.Response().StatusCode()
		// Label by route pattern; unmatched paths share one label.
		path := c.Route().Path
		if path == "/" && c.Path() != "/" {
			path = "unmatched"
		}

		// fiber reuses the request buffers once the handler returns.
		method := utils.CopyString(c.Method())
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", utils.CopyString(c.IP())),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request", append(fields, zap.Error(chainErr))...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}

		m.ObserveRequest(method, utils.CopyString(path), strconv.Itoa(status), latency)
		return nil
	}
}
