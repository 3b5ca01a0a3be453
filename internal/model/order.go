package model

import "github.com/shopspring/decimal"

type OrderType string

const (
	OrderPurchase OrderType = "purchase"
	OrderSales    OrderType = "sales"
)

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderReceived  OrderStatus = "received"
	OrderPending   OrderStatus = "pending"
	OrderAllocated OrderStatus = "allocated"
	OrderDelivered OrderStatus = "delivered"
	OrderInTransit OrderStatus = "in_transit"
	OrderCanceled  OrderStatus = "canceled"
)

// Order unifies purchase and sales orders. Exactly one of SupplierID and
// CustomerID is set, according to Type. Items is nil when the line items
// were never loaded, and empty when the order has none.
type Order struct {
	ID           string          `json:"id"`
	Type         OrderType       `json:"type" validate:"required,oneof=purchase sales"`
	SupplierID   *string         `json:"supplierId,omitempty"`
	CustomerID   *string         `json:"customerId,omitempty"`
	ProductIDs   []string        `json:"productIds"`
	OrderDate    string          `json:"orderDate" validate:"required,datetime=2006-01-02"`
	DeliveryDate *string         `json:"deliveryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       OrderStatus     `json:"status" validate:"required"`
	Notes        string          `json:"notes,omitempty"`
	Items        []OrderItem     `json:"items,omitempty"`
}

func (o Order) Key() string { return o.ID }

// Counterparty returns the supplier id for purchases and the customer id for sales.
func (o Order) Counterparty() string {
	if o.Type == OrderPurchase && o.SupplierID != nil {
		return *o.SupplierID
	}
	if o.Type == OrderSales && o.CustomerID != nil {
		return *o.CustomerID
	}
	return ""
}

type OrderItem struct {
	ID                 int64            `json:"id"`
	ProductID          string           `json:"productId"`
	Quantity           int              `json:"quantity"`
	UnitPrice          decimal.Decimal  `json:"unitPrice"`
	LineTotal          decimal.Decimal  `json:"lineTotal"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
	DiscountAmount     *decimal.Decimal `json:"discountAmount,omitempty"`
	CampaignID         *string          `json:"campaignId,omitempty"`
}

// OrderDetails bundles an order with everything its detail view shows.
type OrderDetails struct {
	Order    Order     `json:"order"`
	Supplier *Supplier `json:"supplier,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
	Products []Product `json:"products"`
}
