package rules

import (
	"fmt"
	"math"
	"time"

	"go-backoffice-console/internal/model"

	"github.com/shopspring/decimal"
)

// AlertColor marks canceled and unrecognised order statuses.
const AlertColor = "#d64545"

var statusSequences = map[model.OrderType][]model.OrderStatus{
	model.OrderPurchase: {model.OrderPlaced, model.OrderInTransit, model.OrderReceived, model.OrderCanceled},
	model.OrderSales:    {model.OrderPending, model.OrderAllocated, model.OrderInTransit, model.OrderDelivered, model.OrderCanceled},
}

// InventoryStatus classifies available stock against the two thresholds.
func InventoryStatus(available, safetyStock, reorderPoint float64) model.InventoryStatus {
	switch {
	case available <= safetyStock:
		return model.StatusCritical
	case available <= reorderPoint:
		return model.StatusWarning
	default:
		return model.StatusOK
	}
}

// DeriveProductStatus recomputes p.Status when stock and both thresholds are
// known and leaves it untouched otherwise.
func DeriveProductStatus(p *model.Product) {
	if p.SafetyStock == nil || p.ReorderPoint == nil || p.CurrentStock == nil {
		return
	}
	p.Status = InventoryStatus(*p.CurrentStock, *p.SafetyStock, *p.ReorderPoint)
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts a plain date or a timestamp.
func ParseDate(s string) (t time.Time, dateOnly bool, err error) {
	for _, layout := range dateLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, layout == "2006-01-02", nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognised date %q", s)
}

// CampaignActive reports whether now falls inside [start, end]. A plain end
// date covers that whole day. Unparseable bounds are never active.
func CampaignActive(start, end string, now time.Time) bool {
	from, _, err := ParseDate(start)
	if err != nil {
		return false
	}
	to, dateOnly, err := ParseDate(end)
	if err != nil {
		return false
	}
	if dateOnly {
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	now = now.UTC()
	return !now.Before(from) && !now.After(to)
}

// StatusSequence returns the ordered statuses of an order type.
func StatusSequence(t model.OrderType) []model.OrderStatus {
	seq := statusSequences[t]
	out := make([]model.OrderStatus, len(seq))
	copy(out, seq)
	return out
}

func statusIndex(t model.OrderType, s model.OrderStatus) int {
	for i, v := range statusSequences[t] {
		if v == s {
			return i
		}
	}
	return -1
}

// ValidStatus reports whether s belongs to the status set of t.
func ValidStatus(t model.OrderType, s model.OrderStatus) bool {
	return statusIndex(t, s) >= 0
}

// NextOrderStatus advances cyclically. An unknown status moves to the first one.
func NextOrderStatus(t model.OrderType, s model.OrderStatus) model.OrderStatus {
	seq := statusSequences[t]
	if len(seq) == 0 {
		return s
	}
	return seq[(statusIndex(t, s)+1)%len(seq)]
}

// OrderStatusColor blends from rgb(51,0,204) at the first status to
// rgb(0,255,0) at the last non-canceled one.
func OrderStatusColor(t model.OrderType, s model.OrderStatus) string {
	idx := statusIndex(t, s)
	if idx < 0 || s == model.OrderCanceled {
		return AlertColor
	}
	steps := len(statusSequences[t]) - 2
	ratio := 0.0
	if steps > 0 {
		ratio = float64(idx) / float64(steps)
	}
	blue := math.Round(255 * (1 - ratio))
	green := math.Round(255 * ratio)
	return fmt.Sprintf("rgb(%d, %d, %d)", int(math.Round(blue*0.2)), int(green), int(math.Round(blue*0.8)))
}

// ApplyItemTotals replaces quantity and total with the sums over o.Items.
// Orders whose items were never loaded keep their stored figures.
func ApplyItemTotals(o *model.Order) {
	if o.Items == nil {
		return
	}
	qty := 0
	total := decimal.Zero
	for _, it := range o.Items {
		qty += it.Quantity
		total = total.Add(it.LineTotal)
	}
	o.Quantity = qty
	o.TotalPrice = total
}

// ProductIDsOf lists the distinct product ids across items, in first-seen order.
func ProductIDsOf(items []model.OrderItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}
	return ids
}

// BarHeight scales value to a percentage of peak, capped at 90 with a floor of 4.
func BarHeight(value, peak decimal.Decimal) float64 {
	if !peak.IsPositive() {
		return 4
	}
	pct, _ := value.Div(peak).Mul(decimal.NewFromInt(90)).Float64()
	return math.Max(pct, 4)
}
