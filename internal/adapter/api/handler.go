package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ia-service/internal/domain/entity"
	"ia-service/internal/usecase"
)

type PredictionHandler struct {
	service *usecase.PredictionService
	logger  *zap.Logger
	version string
	env     string
}

func NewPredictionHandler(svc *usecase.PredictionService, logger *zap.Logger, version, env string) *PredictionHandler {
	return &PredictionHandler{service: svc, logger: logger, version: version, env: env}
}

func (h *PredictionHandler) HandleSales(c *fiber.Ctx) error {
	var req salesRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	month, year, err := req.values()
	if err != nil {
		return h.fail(c, err)
	}
	resp, err := h.service.PredictSales(c.UserContext(), callerFrom(c), month, year)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// HandleClient always answers 200 for the default policy; validity is in
// the body.
func (h *PredictionHandler) HandleClient(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.CPF == nil {
		return h.fail(c, fmt.Errorf("%w: cpf is required", entity.ErrInvalidRequest))
	}
	resp, err := h.service.ClassifyClient(c.UserContext(), callerFrom(c), *req.CPF)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *PredictionHandler) HandleDemand(c *fiber.Ctx) error {
	var req demandRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	productID, period, err := req.values()
	if err != nil {
		return h.fail(c, err)
	}
	resp, err := h.service.ForecastDemand(c.UserContext(), callerFrom(c), productID, period)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *PredictionHandler) HandleSentiment(c *fiber.Ctx) error {
	var req sentimentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.Text == nil {
		return h.fail(c, fmt.Errorf("%w: text is required", entity.ErrInvalidRequest))
	}
	resp, err := h.service.ClassifySentiment(c.UserContext(), callerFrom(c), *req.Text)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *PredictionHandler) HandleUsage(c *fiber.Ctx) error {
	resp, err := h.service.Usage(c.UserContext(), callerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *PredictionHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
		"version": h.version,
		"env":     h.env,
	})
}

// fail maps domain errors to HTTP status codes.
func (h *PredictionHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidRequest):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidPeriod), errors.Is(err, entity.ErrInvalidIdentifier):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, entity.ErrUsageDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	h.logger.Error("prediction failed",
		zap.String("path", c.Path()),
		zap.String("request_id", requestID(c)),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": entity.ErrInternalServer.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
}
