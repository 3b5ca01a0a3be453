package fixtures

import (
	"time"

	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/rules"

	"github.com/shopspring/decimal"
)

// Every call returns fresh values so callers may mutate what they get.

func ptr[T any](v T) *T { return &v }

func Products() []model.Product {
	return []model.Product{
		{
			ID:                  "ID-001",
			Name:                "Premium Coffee Beans",
			Category:            "Beverages",
			Unit:                "kg",
			Description:         ptr("High-quality arabica coffee beans from Colombia"),
			Price:               ptr(decimal.RequireFromString("25.99")),
			SafetyStock:         ptr(10.0),
			ReorderPoint:        ptr(20.0),
			CurrentStock:        ptr(5.0),
			PreferredSupplierID: ptr("SUP-001"),
			ActiveSupplierIDs:   []string{"SUP-001", "SUP-002"},
			Status:              model.StatusCritical,
		},
		{
			ID:                  "ID-002",
			Name:                "Organic Green Tea",
			Category:            "Beverages",
			Unit:                "boxes",
			Description:         ptr("Premium organic green tea leaves"),
			Price:               ptr(decimal.RequireFromString("18.50")),
			SafetyStock:         ptr(15.0),
			ReorderPoint:        ptr(25.0),
			CurrentStock:        ptr(22.0),
			PreferredSupplierID: ptr("SUP-003"),
			ActiveSupplierIDs:   []string{"SUP-003"},
			Status:              model.StatusWarning,
		},
		{
			ID:                  "ID-003",
			Name:                "Stainless Steel Mug",
			Category:            "Accessories",
			Unit:                "pieces",
			Description:         ptr("Durable stainless steel travel mug"),
			Price:               ptr(decimal.RequireFromString("12.99")),
			SafetyStock:         ptr(20.0),
			ReorderPoint:        ptr(30.0),
			CurrentStock:        ptr(45.0),
			PreferredSupplierID: ptr("SUP-002"),
			ActiveSupplierIDs:   []string{"SUP-001", "SUP-002"},
			Status:              model.StatusOK,
		},
	}
}

func Suppliers() []model.Supplier {
	return []model.Supplier{
		{ID: "SUP-001", Name: "Global Coffee Suppliers Ltd.", Email: "orders@globalcoffee.com", Phone: "+1-555-0123", City: "Seattle"},
		{ID: "SUP-002", Name: "Premium Beverage Distributors", Email: "sales@premiumbev.com", Phone: "+1-555-0456", City: "Portland"},
		{ID: "SUP-003", Name: "Organic Tea Company", Email: "info@organictea.com", Phone: "+1-555-0789", City: "San Francisco"},
	}
}

func Customers() []model.Customer {
	return []model.Customer{
		{ID: "CUST-001", Name: "Sunrise Café Chain", Segment: model.SegmentInstitutional, Email: "procurement@sunrisecafe.com", Phone: "+1-555-1001", City: "New York"},
		{ID: "CUST-002", Name: "John Smith", Segment: model.SegmentIndividual, Email: "john.smith@email.com", Phone: "+1-555-1002", City: "Los Angeles"},
		{ID: "CUST-003", Name: "Local Business Solutions", Segment: model.SegmentSME, Email: "orders@localbiz.com", Phone: "+1-555-1003", City: "Chicago"},
		{ID: "CUST-004", Name: "Metro Office Complex", Segment: model.SegmentInstitutional, Email: "facilities@metrooffice.com", Phone: "+1-555-1004", City: "Houston"},
	}
}

func Orders() []model.Order {
	return []model.Order{
		{
			ID: "SO-00001", Type: model.OrderSales, CustomerID: ptr("CUST-001"), ProductIDs: []string{},
			OrderDate: "2024-09-10", DeliveryDate: ptr("2024-09-15"),
			Quantity: 50, TotalPrice: decimal.RequireFromString("1299.50"),
			Status: model.OrderAllocated, Notes: "Rush order for new store opening",
		},
		{
			ID: "PO-00001", Type: model.OrderPurchase, SupplierID: ptr("SUP-001"), ProductIDs: []string{},
			OrderDate: "2024-09-08", DeliveryDate: ptr("2024-09-20"),
			Quantity: 100, TotalPrice: decimal.RequireFromString("2599.00"),
			Status: model.OrderPlaced, Notes: "Monthly coffee bean restock",
		},
		{
			ID: "SO-00002", Type: model.OrderSales, CustomerID: ptr("CUST-002"), ProductIDs: []string{},
			OrderDate: "2024-09-12", DeliveryDate: ptr("2024-09-14"),
			Quantity: 2, TotalPrice: decimal.RequireFromString("25.98"),
			Status: model.OrderInTransit,
		},
		{
			ID: "PO-00002", Type: model.OrderPurchase, SupplierID: ptr("SUP-003"), ProductIDs: []string{},
			OrderDate: "2024-09-11", DeliveryDate: ptr("2024-09-18"),
			Quantity: 30, TotalPrice: decimal.RequireFromString("555.00"),
			Status: model.OrderInTransit, Notes: "Organic tea variety pack",
		},
		{
			ID: "SO-00003", Type: model.OrderSales, CustomerID: ptr("CUST-003"), ProductIDs: []string{},
			OrderDate: "2024-09-05", DeliveryDate: ptr("2024-09-08"),
			Quantity: 25, TotalPrice: decimal.RequireFromString("324.75"),
			Status: model.OrderDelivered, Notes: "Delivered at: 2024-09-08T14:30:00Z",
		},
		{
			ID: "PO-00003", Type: model.OrderPurchase, SupplierID: ptr("SUP-002"), ProductIDs: []string{},
			OrderDate: "2024-09-01", DeliveryDate: ptr("2024-09-10"),
			Quantity: 75, TotalPrice: decimal.RequireFromString("974.25"),
			Status: model.OrderReceived, Notes: "Delivered at: 2024-09-10T09:15:00Z",
		},
	}
}

// Campaigns evaluates each campaign's active flag against now.
func Campaigns(now time.Time) []model.Campaign {
	cs := []model.Campaign{
		{
			ID: "CAMP-001", Name: "Summer Coffee Special",
			Description: "20% off all coffee products during summer season",
			Type: model.CampaignDiscount, AssignmentType: model.AssignProduct,
			Percentage: decimal.NewFromInt(20), StartDate: "2024-06-01", EndDate: "2024-08-31",
			ProductIDs: []string{"ID-001"}, CustomerIDs: []string{},
		},
		{
			ID: "CAMP-002", Name: "Buy 2 Get 1 Free Tea",
			Description: "Special promotion on organic tea boxes",
			Type: model.CampaignPromotion, AssignmentType: model.AssignProduct,
			Percentage: decimal.Zero, BuyQty: ptr(2), GetQty: ptr(1),
			StartDate: "2024-09-01", EndDate: "2024-09-30",
			ProductIDs: []string{"ID-002"}, CustomerIDs: []string{},
		},
		{
			ID: "CUST-OFFER-001", Name: "VIP Customer Discount",
			Description: "Special 15% discount for premium institutional customers",
			Type: model.CampaignDiscount, AssignmentType: model.AssignCustomer,
			Percentage: decimal.NewFromInt(15), StartDate: "2024-01-01", EndDate: "2024-12-31",
			ProductIDs: []string{}, CustomerIDs: []string{"CUST-001", "CUST-004"},
		},
		{
			ID: "CAMP-003", Name: "Accessory Bundle Deal",
			Description: "10% off when buying 5 or more mugs",
			Type: model.CampaignDiscount, AssignmentType: model.AssignProduct,
			Percentage: decimal.NewFromInt(10), BuyQty: ptr(5),
			StartDate: "2024-09-15", EndDate: "2024-10-15",
			ProductIDs: []string{"ID-003"}, CustomerIDs: []string{},
		},
		{
			ID: "CUST-OFFER-002", Name: "SME Partnership Discount",
			Description: "12% discount for small business partners",
			Type: model.CampaignDiscount, AssignmentType: model.AssignCustomer,
			Percentage: decimal.NewFromInt(12), StartDate: "2024-07-01", EndDate: "2024-12-31",
			ProductIDs: []string{}, CustomerIDs: []string{"CUST-003"},
		},
	}
	for i := range cs {
		cs[i].IsActive = rules.CampaignActive(cs[i].StartDate, cs[i].EndDate, now)
	}
	return cs
}
