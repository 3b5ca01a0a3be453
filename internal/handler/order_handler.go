package handler

import (
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/rules"
	"go-backoffice-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func orderColor(o model.Order) string {
	return rules.OrderStatusColor(o.Type, o.Status)
}

// GetOrders query params: q, type (purchase|sales), status, refresh
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders := h.service.List(c.UserContext(), query.OrderFilter{
		Query:  c.Query("q"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}, c.QueryBool("refresh"))
	return sendList(c, orders, h.service, orderColor)
}

// GetOrder returns the order with its items, counterparty and products.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	details, err := h.service.Details(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"data": details, "statusColor": orderColor(details.Order)})
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return sendError(c, errInvalidJSON)
	}

	created, err := h.service.Create(c.UserContext(), order)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order created", "data": created})
}

func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return sendError(c, errInvalidJSON)
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), order)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order updated", "data": updated})
}

// AdvanceStatus moves the order to the next status of its type, wrapping around.
func (h *OrderHandler) AdvanceStatus(c *fiber.Ctx) error {
	order, err := h.service.Advance(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"data": order, "statusColor": orderColor(*order)})
}

type statusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, errInvalidJSON)
	}

	order, err := h.service.SetStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"data": order, "statusColor": orderColor(*order)})
}

func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	if _, err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}

func (h *OrderHandler) BulkDelete(c *fiber.Ctx) error {
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

func (h *OrderHandler) ToggleSelection(c *fiber.Ctx) error {
	return toggle(c, h.service)
}

func (h *OrderHandler) ClearSelection(c *fiber.Ctx) error {
	return clearSelection(c, h.service)
}
