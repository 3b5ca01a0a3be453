package handler

import "github.com/gofiber/fiber/v2"

// Handlers groups every handler mounted under the API prefix.
type Handlers struct {
	Products  *ProductHandler
	Suppliers *SupplierHandler
	Customers *CustomerHandler
	Orders    *OrderHandler
	Campaigns *CampaignHandler
	Insights  *InsightHandler
	Changes   *ChangeHandler
}

// Register mounts the routes on api. Fixed paths come before the :id
// routes that would otherwise swallow them.
func (h Handlers) Register(api fiber.Router) {
	// Product Routes
	api.Get("/products", h.Products.GetProducts)
	api.Post("/products", h.Products.CreateProduct)
	api.Post("/products/bulk-delete", h.Products.BulkDelete)
	api.Delete("/products/selection", h.Products.ClearSelection)
	api.Get("/products/:id", h.Products.GetProduct)
	api.Put("/products/:id", h.Products.UpdateProduct)
	api.Delete("/products/:id", h.Products.DeleteProduct)
	api.Get("/products/:id/stock", h.Products.GetStock)
	api.Put("/products/:id/suppliers", h.Products.UpdateSuppliers)
	api.Get("/products/:id/suggestion", h.Products.GetSuggestion)
	api.Get("/products/:id/sales-chart", h.Products.GetSalesChart)
	api.Post("/products/:id/select", h.Products.ToggleSelection)

	// Supplier Routes
	api.Get("/suppliers", h.Suppliers.GetSuppliers)
	api.Post("/suppliers", h.Suppliers.CreateSupplier)
	api.Post("/suppliers/bulk-delete", h.Suppliers.BulkDelete)
	api.Delete("/suppliers/selection", h.Suppliers.ClearSelection)
	api.Get("/suppliers/:id", h.Suppliers.GetSupplier)
	api.Put("/suppliers/:id", h.Suppliers.UpdateSupplier)
	api.Delete("/suppliers/:id", h.Suppliers.DeleteSupplier)
	api.Post("/suppliers/:id/select", h.Suppliers.ToggleSelection)

	// Customer Routes
	api.Get("/customers", h.Customers.GetCustomers)
	api.Post("/customers", h.Customers.CreateCustomer)
	api.Post("/customers/bulk-delete", h.Customers.BulkDelete)
	api.Delete("/customers/selection", h.Customers.ClearSelection)
	api.Get("/customers/:id", h.Customers.GetCustomer)
	api.Put("/customers/:id", h.Customers.UpdateCustomer)
	api.Delete("/customers/:id", h.Customers.DeleteCustomer)
	api.Post("/customers/:id/select", h.Customers.ToggleSelection)

	// Order Routes
	api.Get("/orders", h.Orders.GetOrders)
	api.Post("/orders", h.Orders.CreateOrder)
	api.Post("/orders/bulk-delete", h.Orders.BulkDelete)
	api.Delete("/orders/selection", h.Orders.ClearSelection)
	api.Get("/orders/:id", h.Orders.GetOrder)
	api.Put("/orders/:id", h.Orders.UpdateOrder)
	api.Delete("/orders/:id", h.Orders.DeleteOrder)
	api.Post("/orders/:id/advance", h.Orders.AdvanceStatus)
	api.Put("/orders/:id/status", h.Orders.SetStatus)
	api.Post("/orders/:id/select", h.Orders.ToggleSelection)

	// Campaign Routes
	api.Get("/campaigns", h.Campaigns.GetCampaigns)
	api.Post("/campaigns", h.Campaigns.CreateCampaign)
	api.Post("/campaigns/bulk-delete", h.Campaigns.BulkDelete)
	api.Delete("/campaigns/selection", h.Campaigns.ClearSelection)
	api.Get("/campaigns/:id", h.Campaigns.GetCampaign)
	api.Put("/campaigns/:id", h.Campaigns.UpdateCampaign)
	api.Delete("/campaigns/:id", h.Campaigns.DeleteCampaign)
	api.Post("/campaigns/:id/select", h.Campaigns.ToggleSelection)

	// Insight Routes
	api.Post("/forecast", h.Insights.Forecast)

	// Change Feed Routes
	api.Get("/changes", h.Changes.GetChanges)
	api.Get("/changes/history", h.Changes.GetHistory)
	api.Get("/changes/activity", h.Changes.GetActivity)
}
