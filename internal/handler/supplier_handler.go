package handler

import (
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers := h.service.List(c.UserContext(), query.SupplierFilter{Query: c.Query("q")}, c.QueryBool("refresh"))
	return sendList(c, suppliers, h.service, nil)
}

func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	supplier, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return sendError(c, errInvalidJSON)
	}

	created, err := h.service.Create(c.UserContext(), supplier)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Supplier created", "data": created})
}

func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return sendError(c, errInvalidJSON)
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), supplier)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier updated", "data": updated})
}

// DeleteSupplier answers with the products that referenced the supplier.
func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	report, err := h.service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(report)
}

func (h *SupplierHandler) BulkDelete(c *fiber.Ctx) error {
	ids, err := bulkIDs(c, h.service)
	if err != nil {
		return sendError(c, err)
	}
	report, err := h.service.BatchDelete(c.UserContext(), ids)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(report)
}

func (h *SupplierHandler) ToggleSelection(c *fiber.Ctx) error {
	return toggle(c, h.service)
}

func (h *SupplierHandler) ClearSelection(c *fiber.Ctx) error {
	return clearSelection(c, h.service)
}
