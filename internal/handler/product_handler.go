package handler

import (
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service  service.ProductService
	insights service.InsightService
}

func NewProductHandler(s service.ProductService, insights service.InsightService) *ProductHandler {
	return &ProductHandler{service: s, insights: insights}
}

// GetProducts lists the catalogue. Query params: q, status, refresh
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products := h.service.List(c.UserContext(), query.ProductFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	}, c.QueryBool("refresh"))
	return sendList(c, products, h.service, nil)
}

// GetProduct returns the detail view with live stock.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.Detail(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) GetStock(c *fiber.Ctx) error {
	stock, err := h.service.Stock(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(stock)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return sendError(c, errInvalidJSON)
	}

	created, err := h.service.Create(c.UserContext(), product)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": created})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return sendError(c, errInvalidJSON)
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), product)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

type supplierAssignment struct {
	PreferredSupplierID *string  `json:"preferredSupplierId"`
	ActiveSupplierIDs   []string `json:"activeSupplierIds"`
}

// UpdateSuppliers replaces the preferred and active suppliers of a product.
func (h *ProductHandler) UpdateSuppliers(c *fiber.Ctx) error {
	var req supplierAssignment
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, errInvalidJSON)
	}

	updated, err := h.service.SetSuppliers(c.UserContext(), c.Params("id"), req.PreferredSupplierID, req.ActiveSupplierIDs)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Suppliers updated", "data": updated})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// BulkDelete removes the ids in the body, or the current selection.
func (h *ProductHandler) BulkDelete(c *fiber.Ctx) error {
	ids, err := bulkIDs(c, h.service)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(h.service.BulkDelete(c.UserContext(), ids))
}

func (h *ProductHandler) ToggleSelection(c *fiber.Ctx) error {
	return toggle(c, h.service)
}

func (h *ProductHandler) ClearSelection(c *fiber.Ctx) error {
	return clearSelection(c, h.service)
}

// GetSuggestion returns the restock suggestion. Query params: asOfDate
func (h *ProductHandler) GetSuggestion(c *fiber.Ctx) error {
	suggestion, err := h.insights.Suggestion(c.UserContext(), c.Params("id"), c.Query("asOfDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "data": suggestion})
	}
	return c.JSON(suggestion)
}

// GetSalesChart returns weekly sales with forecast bars.
// Query params: weeks (default 8), horizonDays (default 7), asOfDate
func (h *ProductHandler) GetSalesChart(c *fiber.Ctx) error {
	chart, err := h.insights.SalesChart(c.UserContext(), c.Params("id"),
		c.QueryInt("weeks"), c.QueryInt("horizonDays"), c.Query("asOfDate"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(chart)
}
