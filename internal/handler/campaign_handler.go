package handler

import (
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CampaignHandler struct {
	service service.CampaignService
}

func NewCampaignHandler(s service.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: s}
}

// GetCampaigns query params: q, type, assignment, active (active|inactive), refresh
func (h *CampaignHandler) GetCampaigns(c *fiber.Ctx) error {
	campaigns := h.service.List(c.UserContext(), query.CampaignFilter{
		Query:      c.Query("q"),
		Type:       c.Query("type"),
		Assignment: c.Query("assignment"),
		Active:     c.Query("active"),
	}, c.QueryBool("refresh"))
	return sendList(c, campaigns, h.service, nil)
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	campaign, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(campaign)
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var campaign model.Campaign
	if err := c.BodyParser(&campaign); err != nil {
		return sendError(c, errInvalidJSON)
	}

	created, err := h.service.Create(c.UserContext(), campaign)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Campaign created", "data": created})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	var campaign model.Campaign
	if err := c.BodyParser(&campaign); err != nil {
		return sendError(c, errInvalidJSON)
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), campaign)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Campaign updated", "data": updated})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	if _, err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Campaign deleted"})
}

func (h *CampaignHandler) BulkDelete(c *fiber.Ctx) error {
	ids, err := bulkIDs(c, h.service)
	if err != nil {
		return sendError(c, err)
	}
	removed, err := h.service.Delete(c.UserContext(), ids...)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": removed})
}

func (h *CampaignHandler) ToggleSelection(c *fiber.Ctx) error {
	return toggle(c, h.service)
}

func (h *CampaignHandler) ClearSelection(c *fiber.Ctx) error {
	return clearSelection(c, h.service)
}
