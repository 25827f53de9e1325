package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ia-service/internal/domain/entity"
	"ia-service/internal/usecase"
)

const (
	callerKey    = "caller"
	requestIDKey = "requestid"
)

// AuthMiddleware runs the gate before every handler. Unknown tokens get
// invalidTokenStatus (401, or 403 in the split deployment); every other
// rejection is 401.
func AuthMiddleware(gate *usecase.AuthGate, invalidTokenStatus int, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := gate.Authorize(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			status := fiber.StatusUnauthorized
			if errors.Is(err, entity.ErrInvalidToken) && invalidTokenStatus == fiber.StatusForbidden {
				status = fiber.StatusForbidden
			}
			logger.Debug("request rejected",
				zap.String("path", c.Path()),
				zap.String("reason", err.Error()),
				zap.String("request_id", requestID(c)))
			if status == fiber.StatusUnauthorized {
				c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}
		c.Locals(callerKey, caller)
		return c.Next()
	}
}

func callerFrom(c *fiber.Ctx) entity.Caller {
	caller, _ := c.Locals(callerKey).(entity.Caller)
	return caller
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// ErrorHandler keeps fiber's own errors (404, 405, oversized body) and hides
// everything else behind a generic 500.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		logger.Error("unhandled error",
			zap.String("path", c.Path()),
			zap.String("request_id", requestID(c)),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": entity.ErrInternalServer.Error()})
	}
}
