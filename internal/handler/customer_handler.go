package handler

import (
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// GetCustomers query params: q, segment, refresh
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers := h.service.List(c.UserContext(), query.CustomerFilter{
		Query:   c.Query("q"),
		Segment: c.Query("segment"),
	}, c.QueryBool("refresh"))
	return sendList(c, customers, h.service, nil)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return sendError(c, errInvalidJSON)
	}

	created, err := h.service.Create(c.UserContext(), customer)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Customer created", "data": created})
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return sendError(c, errInvalidJSON)
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), customer)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": updated})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if _, err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

func (h *CustomerHandler) BulkDelete(c *fiber.Ctx) error {
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

func (h *CustomerHandler) ToggleSelection(c *fiber.Ctx) error {
	return toggle(c, h.service)
}

func (h *CustomerHandler) ClearSelection(c *fiber.Ctx) error {
	return clearSelection(c, h.service)
}
