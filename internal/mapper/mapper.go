package mapper

import (
	"fmt"
	"strings"
	"time"

	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/rules"
	"go-backoffice-console/pkg/idcodec"

	"github.com/shopspring/decimal"
)

// Backend enumerations. Anything missing from a table maps to its default.
var (
	inventoryStatuses = map[string]model.InventoryStatus{
		"RED":    model.StatusCritical,
		"YELLOW": model.StatusWarning,
		"GREEN":  model.StatusOK,
	}
	segments = map[string]model.CustomerSegment{
		"INDIVIDUAL": model.SegmentIndividual,
		"SME":        model.SegmentSME,
		"CORPORATE":  model.SegmentInstitutional,
		"ENTERPRISE": model.SegmentInstitutional,
	}
	salesStatuses = map[string]model.OrderStatus{
		"PENDING":    model.OrderPending,
		"ALLOCATED":  model.OrderAllocated,
		"IN_TRANSIT": model.OrderInTransit,
		"DELIVERED":  model.OrderDelivered,
		"CANCELED":   model.OrderCanceled,
	}
	purchaseStatuses = map[string]model.OrderStatus{
		"PLACED":     model.OrderPlaced,
		"IN_TRANSIT": model.OrderInTransit,
		"RECEIVED":   model.OrderReceived,
		"CANCELED":   model.OrderCanceled,
	}
	campaignTypes = map[string]model.CampaignType{
		"DISCOUNT":          model.CampaignDiscount,
		"BXGY_SAME_PRODUCT": model.CampaignPromotion,
	}
)

func lookup[K comparable, V any](table map[K]V, key K, def V) V {
	if v, ok := table[key]; ok {
		return v
	}
	return def
}

// Product maps a list-endpoint product. Fields the summary omits stay nil.
func Product(d model.ProductSummaryDTO) model.Product {
	available := d.QuantityAvailable
	return model.Product{
		ID:                  idcodec.Product.Format(d.ProductID),
		Name:                d.ProductName,
		Category:            d.Category,
		Unit:                d.UnitOfMeasure,
		CurrentStock:        &available,
		PreferredSupplierID: supplierRef(d.PreferredSupplier),
		ActiveSupplierIDs:   supplierRefs(d.ActiveSuppliers),
		Status:              lookup(inventoryStatuses, strings.ToUpper(d.InventoryStatus), model.StatusOK),
	}
}

// DetailedProduct merges the detail and stock responses. Zero thresholds are
// shown as unset, but status is derived from the raw thresholds whenever the
// backend sends both, and is otherwise carried over from prior.
func DetailedProduct(d model.ProductDetailDTO, stock *model.ProductStockDTO, prior model.InventoryStatus) model.Product {
	if prior == "" {
		prior = model.StatusOK
	}
	p := model.Product{
		ID:                  idcodec.Product.Format(d.ProductID),
		Name:                d.ProductName,
		Category:            d.Category,
		Unit:                d.UnitOfMeasure,
		Description:         nonEmpty(d.Description),
		Price:               nonZeroDecimal(d.CurrentPrice),
		SafetyStock:         nonZeroPtr(d.SafetyStock),
		ReorderPoint:        nonZeroPtr(d.ReorderPoint),
		PreferredSupplierID: supplierRef(d.PreferredSupplier),
		ActiveSupplierIDs:   supplierRefs(d.ActiveSuppliers),
		Status:              prior,
	}
	if stock != nil {
		available := stock.QuantityAvailable
		p.CurrentStock = &available
		p.StockDetails = &model.StockDetails{
			OnHand:    stock.QuantityOnHand,
			Reserved:  stock.QuantityReserved,
			Available: stock.QuantityAvailable,
		}
		if d.SafetyStock != nil && d.ReorderPoint != nil {
			p.Status = rules.InventoryStatus(available, *d.SafetyStock, *d.ReorderPoint)
		}
	}
	return p
}

// ProductPayload builds the create/update body. Supplier ids must decode.
func ProductPayload(p model.Product) (model.ProductPayload, error) {
	out := model.ProductPayload{
		ProductName:   p.Name,
		Category:      p.Category,
		UnitOfMeasure: p.Unit,
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.SafetyStock != nil {
		out.SafetyStock = *p.SafetyStock
	}
	if p.ReorderPoint != nil {
		out.ReorderPoint = *p.ReorderPoint
	}
	if p.Price != nil {
		out.CurrentPrice = *p.Price
	}
	if p.PreferredSupplierID != nil {
		n, err := idcodec.Supplier.Parse(*p.PreferredSupplierID)
		if err != nil {
			return out, err
		}
		out.PreferredSupplierID = &n
	}
	for _, id := range p.ActiveSupplierIDs {
		n, err := idcodec.Supplier.Parse(id)
		if err != nil {
			return out, err
		}
		out.ActiveSupplierIDs = append(out.ActiveSupplierIDs, n)
	}
	return out, nil
}

func Supplier(d model.SupplierDTO) model.Supplier {
	return model.Supplier{
		ID:    idcodec.Supplier.Format(d.SupplierID),
		Name:  d.SupplierName,
		Email: d.Email,
		Phone: FormatPhone(d.Phone),
		City:  d.City,
	}
}

func SupplierPayload(s model.Supplier) model.SupplierPayload {
	return model.SupplierPayload{
		SupplierName: strings.TrimSpace(s.Name),
		Email:        strings.TrimSpace(s.Email),
		Phone:        NormalizePhone(s.Phone),
		City:         strings.TrimSpace(s.City),
	}
}

func Customer(d model.CustomerDTO) model.Customer {
	return model.Customer{
		ID:      idcodec.Customer.Format(d.CustomerID),
		Name:    d.CustomerName,
		Segment: lookup(segments, strings.ToUpper(d.Segment), model.SegmentIndividual),
		Email:   d.Email,
		Phone:   d.Phone,
		City:    d.City,
	}
}

// SalesOrder maps a sales order header. Quantity and total stay zero until
// the line items are folded in.
func SalesOrder(d model.SalesOrderDTO) model.Order {
	customerID := idcodec.Customer.Format(d.CustomerID)
	return model.Order{
		ID:           idcodec.SalesOrder.Format(d.SalesOrderID),
		Type:         model.OrderSales,
		CustomerID:   &customerID,
		ProductIDs:   []string{},
		OrderDate:    DateOnly(d.OrderDate),
		DeliveryDate: optionalDate(d.DeliveryDate),
		TotalPrice:   decimal.Zero,
		Status:       lookup(salesStatuses, strings.ToUpper(d.Status), model.OrderPending),
		Notes:        deliveredNote(d.DeliveredAt),
	}
}

func PurchaseOrder(d model.PurchaseOrderDTO) model.Order {
	supplierID := idcodec.Supplier.Format(d.SupplierID)
	return model.Order{
		ID:           idcodec.PurchaseOrder.Format(d.PurchaseOrderID),
		Type:         model.OrderPurchase,
		SupplierID:   &supplierID,
		ProductIDs:   []string{},
		OrderDate:    DateOnly(d.OrderDate),
		DeliveryDate: optionalDate(d.ExpectedDelivery),
		TotalPrice:   decimal.Zero,
		Status:       lookup(purchaseStatuses, strings.ToUpper(d.Status), model.OrderPlaced),
		Notes:        deliveredNote(d.ActualDelivery),
	}
}

func SalesOrderItem(d model.SalesOrderItemDTO) model.OrderItem {
	item := model.OrderItem{
		ID:                 d.SalesOrderItemID,
		ProductID:          idcodec.Product.Format(d.ProductID),
		Quantity:           d.Quantity,
		UnitPrice:          d.UnitPrice,
		LineTotal:          d.LineTotal,
		DiscountPercentage: d.DiscountPercentage,
		DiscountAmount:     d.DiscountAmount,
	}
	if d.CampaignID != nil {
		id := idcodec.Campaign.Format(*d.CampaignID)
		item.CampaignID = &id
	}
	return item
}

func PurchaseOrderItem(d model.PurchaseOrderItemDTO) model.OrderItem {
	return model.OrderItem{
		ID:        d.PurchaseOrderItemID,
		ProductID: idcodec.Product.Format(d.ProductID),
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		LineTotal: d.LineTotal,
	}
}

// ProductCampaign maps a product-assigned campaign; now decides IsActive.
func ProductCampaign(d model.CampaignDTO, now time.Time) model.Campaign {
	pct := decimal.Zero
	if d.DiscountPercentage != nil {
		pct = *d.DiscountPercentage
	}
	productIDs := make([]string, 0, len(d.Products))
	for _, p := range d.Products {
		productIDs = append(productIDs, idcodec.Product.Format(p.ProductID))
	}
	return model.Campaign{
		ID:             idcodec.Campaign.Format(d.CampaignID),
		Name:           d.CampaignName,
		Type:           lookup(campaignTypes, strings.ToUpper(d.CampaignType), model.CampaignDiscount),
		AssignmentType: model.AssignProduct,
		Percentage:     pct,
		BuyQty:         d.BuyQty,
		GetQty:         d.GetQty,
		StartDate:      DateOnly(d.StartDate),
		EndDate:        DateOnly(d.EndDate),
		ProductIDs:     productIDs,
		CustomerIDs:    []string{},
		IsActive:       rules.CampaignActive(d.StartDate, d.EndDate, now),
	}
}

// CustomerOffer turns a customer special offer into a customer-assigned
// discount campaign with a synthesized name and description.
func CustomerOffer(d model.CustomerSpecialOfferDTO, now time.Time) model.Campaign {
	return model.Campaign{
		ID:             idcodec.CustomerOffer.Format(d.SpecialOfferID),
		Name:           fmt.Sprintf("Customer %d - %s%% OFF", d.CustomerID, d.PercentOff.String()),
		Description:    fmt.Sprintf("Special discount for customer %d", d.CustomerID),
		Type:           model.CampaignDiscount,
		AssignmentType: model.AssignCustomer,
		Percentage:     d.PercentOff,
		StartDate:      DateOnly(d.StartDate),
		EndDate:        DateOnly(d.EndDate),
		ProductIDs:     []string{},
		CustomerIDs:    []string{idcodec.Customer.Format(d.CustomerID)},
		IsActive:       rules.CampaignActive(d.StartDate, d.EndDate, now),
	}
}

// DateOnly trims a timestamp to its YYYY-MM-DD part.
func DateOnly(s string) string {
	if len(s) > 10 && s[4] == '-' && s[7] == '-' && (s[10] == 'T' || s[10] == ' ') {
		return s[:10]
	}
	return s
}

func optionalDate(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	d := DateOnly(*s)
	return &d
}

func deliveredNote(at *string) string {
	if at == nil || *at == "" {
		return ""
	}
	return "Delivered at: " + *at
}

func supplierRef(ref *model.SupplierRef) *string {
	if ref == nil || ref.SupplierID <= 0 {
		return nil
	}
	id := idcodec.Supplier.Format(ref.SupplierID)
	return &id
}

func supplierRefs(refs []model.SupplierRef) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, idcodec.Supplier.Format(r.SupplierID))
	}
	return ids
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonZeroPtr(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	out := *v
	return &out
}

func nonZeroDecimal(v decimal.Decimal) *decimal.Decimal {
	if v.IsZero() {
		return nil
	}
	return &v
}
