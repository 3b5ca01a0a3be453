package query

import (
	"testing"

	"go-backoffice-console/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ids[T interface{ Key() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Key())
	}
	return out
}

var products = []model.Product{
	{ID: "ID-001", Name: "Premium Coffee Beans", Category: "Beverages", Status: model.StatusCritical, ActiveSupplierIDs: []string{"SUP-001", "SUP-002"}},
	{ID: "ID-002", Name: "Organic Green Tea", Category: "Beverages", Status: model.StatusWarning, ActiveSupplierIDs: []string{"SUP-003"}},
	{ID: "ID-003", Name: "Stainless Steel Mug", Category: "Accessories", Status: model.StatusOK, ActiveSupplierIDs: []string{"SUP-001", "SUP-002"}},
}

func TestProducts(t *testing.T) {
	assert.Equal(t, []string{"ID-001", "ID-002", "ID-003"}, ids(Products(products, ProductFilter{})))
	assert.Equal(t, []string{"ID-001", "ID-002"}, ids(Products(products, ProductFilter{Query: "  BEVERAGES "})))
	assert.Equal(t, []string{"ID-002"}, ids(Products(products, ProductFilter{Query: "sup-003"})))
	assert.Equal(t, []string{"ID-003"}, ids(Products(products, ProductFilter{Status: "ok"})))
	assert.Equal(t, []string{"ID-003"}, ids(Products(products, ProductFilter{Query: "sup-001", Status: "ok"})))
	assert.Empty(t, Products(products, ProductFilter{Query: "beverages", Status: "ok"}))
	assert.Len(t, Products(products, ProductFilter{Status: "all"}), 3)
}

func TestApplyIsIdempotentAndStable(t *testing.T) {
	f := ProductFilter{Query: "e"}
	first := Products(products, f)
	second := Products(products, f)
	assert.Equal(t, first, second)
	assert.Equal(t, ids(first), ids(Products(first, f)))
}

func TestCustomers(t *testing.T) {
	cs := []model.Customer{
		{ID: "CUST-001", Name: "Sunrise Café Chain", Segment: model.SegmentInstitutional, City: "New York"},
		{ID: "CUST-002", Name: "John Smith", Segment: model.SegmentIndividual, City: "Los Angeles"},
		{ID: "CUST-003", Name: "Local Business Solutions", Segment: model.SegmentSME, City: "Chicago"},
	}
	assert.Equal(t, []string{"CUST-003"}, ids(Customers(cs, CustomerFilter{Segment: "sme"})))
	assert.Equal(t, []string{"CUST-001"}, ids(Customers(cs, CustomerFilter{Query: "institutional"})))
	assert.Equal(t, []string{"CUST-002"}, ids(Customers(cs, CustomerFilter{Query: "angeles"})))
}

func TestOrders(t *testing.T) {
	sup, cust := "SUP-001", "CUST-002"
	os := []model.Order{
		{ID: "PO-00001", Type: model.OrderPurchase, SupplierID: &sup, Status: model.OrderPlaced, ProductIDs: []string{"ID-001"}},
		{ID: "SO-00002", Type: model.OrderSales, CustomerID: &cust, Status: model.OrderInTransit},
	}
	assert.Equal(t, []string{"SO-00002"}, ids(Orders(os, OrderFilter{Type: "sales"})))
	assert.Equal(t, []string{"PO-00001"}, ids(Orders(os, OrderFilter{Query: "id-001"})))
	assert.Equal(t, []string{"SO-00002"}, ids(Orders(os, OrderFilter{Query: "cust-002"})))
	assert.Equal(t, []string{"SO-00002"}, ids(Orders(os, OrderFilter{Status: "in_transit", Type: "all"})))
	assert.Empty(t, Orders(os, OrderFilter{Status: "placed", Type: "sales"}))
}

func TestCampaigns(t *testing.T) {
	cs := []model.Campaign{
		{ID: "CAMP-001", Name: "Summer", Type: model.CampaignDiscount, AssignmentType: model.AssignProduct, Percentage: decimal.NewFromInt(20), IsActive: false},
		{ID: "CUST-OFFER-001", Name: "VIP", Type: model.CampaignDiscount, AssignmentType: model.AssignCustomer, Percentage: decimal.NewFromInt(15), IsActive: true},
	}
	assert.Equal(t, []string{"CUST-OFFER-001"}, ids(Campaigns(cs, CampaignFilter{Query: "15"})))
	assert.Equal(t, []string{"CUST-OFFER-001"}, ids(Campaigns(cs, CampaignFilter{Active: "active"})))
	assert.Equal(t, []string{"CAMP-001"}, ids(Campaigns(cs, CampaignFilter{Active: "inactive"})))
	assert.Equal(t, []string{"CAMP-001"}, ids(Campaigns(cs, CampaignFilter{Assignment: "product"})))
	assert.Len(t, Campaigns(cs, CampaignFilter{Query: "customer"}), 1)
}

func TestSuppliers(t *testing.T) {
	ss := []model.Supplier{
		{ID: "SUP-001", Name: "Global Coffee Suppliers Ltd.", Email: "orders@globalcoffee.com", Phone: "+1-555-0123", City: "Seattle"},
		{ID: "SUP-002", Name: "Premium Beverage Distributors", Email: "sales@premiumbev.com", Phone: "+1-555-0456", City: "Portland"},
	}
	assert.Equal(t, []string{"SUP-002"}, ids(Suppliers(ss, SupplierFilter{Query: "0456"})))
	assert.Equal(t, []string{"SUP-001"}, ids(Suppliers(ss, SupplierFilter{Query: "SEATTLE"})))
}
