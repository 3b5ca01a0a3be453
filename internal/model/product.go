package model

import "github.com/shopspring/decimal"

type InventoryStatus string

const (
	StatusOK       InventoryStatus = "ok"
	StatusWarning  InventoryStatus = "warning"
	StatusCritical InventoryStatus = "critical"
)

// Product is the console view of a catalogue item. Description, Price and
// the thresholds stay nil until the detail fetch fills them in.
type Product struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name" validate:"required,min=2,max=100"`
	Category            string           `json:"category" validate:"required,min=2,max=100"`
	Unit                string           `json:"unit" validate:"required,min=2,max=100"`
	Description         *string          `json:"description"`
	Price               *decimal.Decimal `json:"price"`
	SafetyStock         *float64         `json:"safetyStock" validate:"omitempty,gt=0"`
	ReorderPoint        *float64         `json:"reorderPoint" validate:"omitempty,gt=0"`
	CurrentStock        *float64         `json:"currentStock"`
	PreferredSupplierID *string          `json:"preferredSupplierId"`
	ActiveSupplierIDs   []string         `json:"activeSupplierIds"`
	Status              InventoryStatus  `json:"status"`
	StockDetails        *StockDetails    `json:"stockDetails,omitempty"`
}

type StockDetails struct {
	OnHand    float64 `json:"onHand"`
	Reserved  float64 `json:"reserved"`
	Available float64 `json:"available"`
}

func (p Product) Key() string { return p.ID }

// HasSupplier reports whether supplierID is the preferred or an active supplier.
func (p Product) HasSupplier(supplierID string) bool {
	if p.PreferredSupplierID != nil && *p.PreferredSupplierID == supplierID {
		return true
	}
	for _, id := range p.ActiveSupplierIDs {
		if id == supplierID {
			return true
		}
	}
	return false
}

// BulkDeleteResult lists which ids were removed and which the backend refused.
type BulkDeleteResult struct {
	Success []string `json:"success"`
	Failed  []string `json:"failed"`
}
