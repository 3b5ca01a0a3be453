package query

import (
	"strings"

	"go-backoffice-console/internal/model"
)

// All disables an equality filter.
const All = "all"

// Predicate is one equality filter.
type Predicate[T any] func(T) bool

// Fields lists the searchable, stringified fields of one record.
type Fields[T any] func(T) []string

// Apply keeps the items that pass every predicate and, when text is not
// blank, contain it case-insensitively in one of their searchable fields.
// Relative order is preserved.
func Apply[T any](items []T, text string, fields Fields[T], preds ...Predicate[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchesAll(it, preds) && (needle == "" || contains(fields(it), needle)) {
			out = append(out, it)
		}
	}
	return out
}

func matchesAll[T any](it T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(it) {
			return false
		}
	}
	return true
}

func contains(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Eq returns a predicate comparing get(item) to want, or nil when want is
// empty or "all".
func Eq[T any, V ~string](want string, get func(T) V) Predicate[T] {
	if want == "" || strings.EqualFold(want, All) {
		return nil
	}
	return func(it T) bool { return strings.EqualFold(string(get(it)), want) }
}

var (
	ProductFields Fields[model.Product] = func(p model.Product) []string {
		return append([]string{p.ID, p.Name, p.Category}, p.ActiveSupplierIDs...)
	}
	SupplierFields Fields[model.Supplier] = func(s model.Supplier) []string {
		return []string{s.ID, s.Name, s.Email, s.Phone, s.City}
	}
	CustomerFields Fields[model.Customer] = func(c model.Customer) []string {
		return []string{c.ID, c.Name, string(c.Segment), c.Email, c.Phone, c.City}
	}
	OrderFields Fields[model.Order] = func(o model.Order) []string {
		f := []string{o.ID, string(o.Status), string(o.Type)}
		if o.SupplierID != nil {
			f = append(f, *o.SupplierID)
		}
		if o.CustomerID != nil {
			f = append(f, *o.CustomerID)
		}
		return append(f, o.ProductIDs...)
	}
	CampaignFields Fields[model.Campaign] = func(c model.Campaign) []string {
		return []string{c.ID, c.Name, string(c.Type), string(c.AssignmentType), c.Percentage.String()}
	}
)

type ProductFilter struct {
	Query  string
	Status string
}

func Products(items []model.Product, f ProductFilter) []model.Product {
	return Apply(items, f.Query, ProductFields,
		Eq(f.Status, func(p model.Product) model.InventoryStatus { return p.Status }))
}

type SupplierFilter struct {
	Query string
}

func Suppliers(items []model.Supplier, f SupplierFilter) []model.Supplier {
	return Apply(items, f.Query, SupplierFields)
}

type CustomerFilter struct {
	Query   string
	Segment string
}

func Customers(items []model.Customer, f CustomerFilter) []model.Customer {
	return Apply(items, f.Query, CustomerFields,
		Eq(f.Segment, func(c model.Customer) model.CustomerSegment { return c.Segment }))
}

type OrderFilter struct {
	Query  string
	Type   string
	Status string
}

func Orders(items []model.Order, f OrderFilter) []model.Order {
	return Apply(items, f.Query, OrderFields,
		Eq(f.Type, func(o model.Order) model.OrderType { return o.Type }),
		Eq(f.Status, func(o model.Order) model.OrderStatus { return o.Status }))
}

type CampaignFilter struct {
	Query      string
	Type       string
	Assignment string
	// Active is "active", "inactive" or empty.
	Active string
}

func Campaigns(items []model.Campaign, f CampaignFilter) []model.Campaign {
	return Apply(items, f.Query, CampaignFields,
		Eq(f.Type, func(c model.Campaign) model.CampaignType { return c.Type }),
		Eq(f.Assignment, func(c model.Campaign) model.AssignmentType { return c.AssignmentType }),
		Eq(f.Active, func(c model.Campaign) string {
			if c.IsActive {
				return "active"
			}
			return "inactive"
		}))
}
