package handler

import (
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InsightHandler struct {
	service service.InsightService
}

func NewInsightHandler(s service.InsightService) *InsightHandler {
	return &InsightHandler{service: s}
}

// Forecast proxies a demand forecast request.
func (h *InsightHandler) Forecast(c *fiber.Ctx) error {
	var req model.ForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, errInvalidJSON)
	}

	resp, err := h.service.Forecast(c.UserContext(), req)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(resp)
}
