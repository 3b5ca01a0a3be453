package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Wire shapes of the REST backend. Keys are numeric, enums upper case.

var ErrMalformedPayload = errors.New("malformed backend payload")

type PageInfo struct {
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Page is the pagination envelope every list endpoint returns.
type Page[T any] struct {
	Content []T      `json:"content"`
	Page    PageInfo `json:"page"`
}

type SupplierRef struct {
	SupplierID   int64  `json:"supplierId"`
	SupplierName string `json:"supplierName"`
}

type ProductSummaryDTO struct {
	ProductID         int64         `json:"productId"`
	ProductName       string        `json:"productName"`
	Category          string        `json:"category"`
	UnitOfMeasure     string        `json:"unitOfMeasure"`
	QuantityAvailable float64       `json:"quantityAvailable"`
	ActiveSuppliers   []SupplierRef `json:"activeSuppliers"`
	PreferredSupplier *SupplierRef  `json:"preferredSupplier"`
	InventoryStatus   string        `json:"inventoryStatus"`
}

func (d ProductSummaryDTO) Validate() error {
	return positiveKey("productId", d.ProductID)
}

type ProductDetailDTO struct {
	ProductID         int64           `json:"productId"`
	ProductName       string          `json:"productName"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	UnitOfMeasure     string          `json:"unitOfMeasure"`
	SafetyStock       *float64        `json:"safetyStock"`
	ReorderPoint      *float64        `json:"reorderPoint"`
	CurrentPrice      decimal.Decimal `json:"currentPrice"`
	ActiveSuppliers   []SupplierRef   `json:"activeSuppliers"`
	PreferredSupplier *SupplierRef    `json:"preferredSupplier"`
}

func (d ProductDetailDTO) Validate() error {
	return positiveKey("productId", d.ProductID)
}

type ProductStockDTO struct {
	ProductID         int64   `json:"productId"`
	QuantityOnHand    float64 `json:"quantityOnHand"`
	QuantityReserved  float64 `json:"quantityReserved"`
	QuantityAvailable float64 `json:"quantityAvailable"`
	LastMovementID    *int64  `json:"lastMovementId"`
	LastUpdated       string  `json:"lastUpdated"`
}

// ProductPayload is the create/update body for /products.
type ProductPayload struct {
	ProductName         string          `json:"productName"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	UnitOfMeasure       string          `json:"unitOfMeasure"`
	SafetyStock         float64         `json:"safetyStock"`
	ReorderPoint        float64         `json:"reorderPoint"`
	CurrentPrice        decimal.Decimal `json:"currentPrice"`
	PreferredSupplierID *int64          `json:"preferredSupplierId,omitempty"`
	ActiveSupplierIDs   []int64         `json:"activeSupplierIds,omitempty"`
}

type SupplierDTO struct {
	SupplierID   int64  `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func (d SupplierDTO) Validate() error {
	return positiveKey("supplierId", d.SupplierID)
}

type SupplierPayload struct {
	SupplierName string `json:"supplierName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
}

type SupplierBatchDeleteRequest struct {
	SupplierIDs []int64 `json:"supplierIds"`
}

type CustomerDTO struct {
	CustomerID   int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	Segment      string `json:"segment"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
}

func (d CustomerDTO) Validate() error {
	return positiveKey("customerId", d.CustomerID)
}

type SalesOrderDTO struct {
	SalesOrderID               int64            `json:"salesOrderId"`
	CustomerID                 int64            `json:"customerId"`
	OrderDate                  string           `json:"orderDate"`
	DeliveryDate               *string          `json:"deliveryDate"`
	DeliveredAt                *string          `json:"deliveredAt"`
	Status                     string           `json:"status"`
	CustomerSpecialOfferID     *int64           `json:"customerSpecialOfferId"`
	CustomerDiscountPctApplied *decimal.Decimal `json:"customerDiscountPctApplied"`
}

func (d SalesOrderDTO) Validate() error {
	return positiveKey("salesOrderId", d.SalesOrderID)
}

type PurchaseOrderDTO struct {
	PurchaseOrderID  int64   `json:"purchaseOrderId"`
	SupplierID       int64   `json:"supplierId"`
	OrderDate        string  `json:"orderDate"`
	ExpectedDelivery *string `json:"expectedDelivery"`
	ActualDelivery   *string `json:"actualDelivery"`
	Status           string  `json:"status"`
}

func (d PurchaseOrderDTO) Validate() error {
	return positiveKey("purchaseOrderId", d.PurchaseOrderID)
}

type SalesOrderItemDTO struct {
	SalesOrderItemID   int64            `json:"salesOrderItemId"`
	SalesOrderID       int64            `json:"salesOrderId"`
	ProductID          int64            `json:"productId"`
	Quantity           int              `json:"quantity"`
	UnitPrice          decimal.Decimal  `json:"unitPrice"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	CampaignID         *int64           `json:"campaignId"`
	DiscountAmount     *decimal.Decimal `json:"discountAmount"`
	LineTotal          decimal.Decimal  `json:"lineTotal"`
	CreatedAt          string           `json:"createdAt"`
}

type PurchaseOrderItemDTO struct {
	PurchaseOrderItemID int64           `json:"purchaseOrderItemId"`
	PurchaseOrderID     int64           `json:"purchaseOrderId"`
	ProductID           int64           `json:"productId"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	LineTotal           decimal.Decimal `json:"lineTotal"`
	CreatedAt           string          `json:"createdAt"`
}

type CampaignProductRef struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
}

type CampaignDTO struct {
	CampaignID         int64                `json:"campaignId"`
	CampaignName       string               `json:"campaignName"`
	CampaignType       string               `json:"campaignType"`
	DiscountPercentage *decimal.Decimal     `json:"discountPercentage"`
	BuyQty             *int                 `json:"buyQty"`
	GetQty             *int                 `json:"getQty"`
	StartDate          string               `json:"startDate"`
	EndDate            string               `json:"endDate"`
	Products           []CampaignProductRef `json:"products"`
}

func (d CampaignDTO) Validate() error {
	return positiveKey("campaignId", d.CampaignID)
}

type CustomerSpecialOfferDTO struct {
	SpecialOfferID int64           `json:"specialOfferId"`
	CustomerID     int64           `json:"customerId"`
	PercentOff     decimal.Decimal `json:"percentOff"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
}

func (d CustomerSpecialOfferDTO) Validate() error {
	return positiveKey("specialOfferId", d.SpecialOfferID)
}

func positiveKey(field string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrMalformedPayload, field, v)
	}
	return nil
}
