package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"go-backoffice-console/internal/fixtures"
	"go-backoffice-console/internal/mapper"
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/internal/rules"
	"go-backoffice-console/internal/store"
	"go-backoffice-console/pkg/idcodec"

	"golang.org/x/sync/errgroup"
)

// OrderService lists purchase and sales orders with their line items.
// Edits and status changes are local to the console.
type OrderService interface {
	Selection
	List(ctx context.Context, f query.OrderFilter, refresh bool) []model.Order
	Get(ctx context.Context, id string) (*model.Order, error)
	Details(ctx context.Context, id string) (*model.OrderDetails, error)
	Advance(ctx context.Context, id string) (*model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	Create(ctx context.Context, o model.Order) (*model.Order, error)
	Update(ctx context.Context, id string, o model.Order) (*model.Order, error)
	Delete(ctx context.Context, ids ...string) ([]string, error)
}

type orderService struct {
	selection[model.Order]
	repo      repository.OrderRepository
	store     *store.Store[model.Order]
	limit     int
	products  ProductService
	suppliers SupplierService
	customers CustomerService
	loader    loader
	mu        sync.Mutex
}

// NewOrderService fetches line items with at most limit requests in flight.
func NewOrderService(
	repo repository.OrderRepository,
	st *store.Store[model.Order],
	limit int,
	products ProductService,
	suppliers SupplierService,
	customers CustomerService,
) OrderService {
	if limit <= 0 {
		limit = 10
	}
	return &orderService{
		selection: selection[model.Order]{st},
		repo:      repo,
		store:     st,
		limit:     limit,
		products:  products,
		suppliers: suppliers,
		customers: customers,
	}
}

// fetch returns sales orders followed by purchase orders, each enriched
// with its items. A failing list contributes no rows; only when both fail
// is the load an error.
func (s *orderService) fetch(ctx context.Context) ([]model.Order, error) {
	var (
		sales                 []model.SalesOrderDTO
		purchases             []model.PurchaseOrderDTO
		salesErr, purchaseErr error
	)
	var lists errgroup.Group
	lists.Go(func() error {
		if sales, salesErr = s.repo.FindSalesOrders(ctx); salesErr != nil {
			log.Printf("Error fetching sales orders: %v", salesErr)
		}
		return nil
	})
	lists.Go(func() error {
		if purchases, purchaseErr = s.repo.FindPurchaseOrders(ctx); purchaseErr != nil {
			log.Printf("Error fetching purchase orders: %v", purchaseErr)
		}
		return nil
	})
	lists.Wait()
	if salesErr != nil && purchaseErr != nil {
		return nil, errors.Join(salesErr, purchaseErr)
	}

	orders := make([]model.Order, 0, len(sales)+len(purchases))
	for _, d := range sales {
		orders = append(orders, mapper.SalesOrder(d))
	}
	for _, d := range purchases {
		orders = append(orders, mapper.PurchaseOrder(d))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i := range orders {
		g.Go(func() error {
			items, err := s.items(gctx, orders[i])
			if err != nil {
				log.Printf("Error fetching items of order %s: %v", orders[i].ID, err)
				return nil
			}
			withItems(&orders[i], items)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) items(ctx context.Context, o model.Order) ([]model.OrderItem, error) {
	if o.Type == model.OrderSales {
		n, err := idcodec.SalesOrder.Parse(o.ID)
		if err != nil {
			return nil, err
		}
		dtos, err := s.repo.FindSalesOrderItems(ctx, n)
		if err != nil {
			return nil, err
		}
		items := make([]model.OrderItem, 0, len(dtos))
		for _, d := range dtos {
			items = append(items, mapper.SalesOrderItem(d))
		}
		return items, nil
	}

	n, err := idcodec.PurchaseOrder.Parse(o.ID)
	if err != nil {
		return nil, err
	}
	dtos, err := s.repo.FindPurchaseOrderItems(ctx, n)
	if err != nil {
		return nil, err
	}
	items := make([]model.OrderItem, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, mapper.PurchaseOrderItem(d))
	}
	return items, nil
}

func withItems(o *model.Order, items []model.OrderItem) {
	o.Items = items
	o.ProductIDs = rules.ProductIDsOf(items)
	rules.ApplyItemTotals(o)
}

func (s *orderService) load(ctx context.Context) {
	orders, err := s.fetch(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch orders with items, using fallback data: %v", err)
		orders = fixtures.Orders()
	}
	s.store.Replace(orders)
}

func (s *orderService) ensure(ctx context.Context, refresh bool) {
	s.loader.ensure(refresh, func() { s.load(ctx) })
}

func (s *orderService) List(ctx context.Context, f query.OrderFilter, refresh bool) []model.Order {
	s.ensure(ctx, refresh)
	return query.Orders(s.store.All(), f)
}

func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	s.ensure(ctx, false)
	o, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

// Details loads the items of the order if the list did not, then resolves
// the counterparty and the products its items name.
func (s *orderService) Details(ctx context.Context, id string) (*model.OrderDetails, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Items == nil {
		items, err := s.items(ctx, *o)
		if err != nil {
			log.Printf("Error fetching order details %s: %v", id, err)
		} else {
			withItems(o, items)
			s.mu.Lock()
			if _, ok := s.store.Get(id); ok {
				s.store.Upsert(*o)
			}
			s.mu.Unlock()
		}
	}

	d := &model.OrderDetails{Order: *o, Products: []model.Product{}}
	switch o.Type {
	case model.OrderPurchase:
		if o.SupplierID != nil && s.suppliers != nil {
			if sup, err := s.suppliers.Get(ctx, *o.SupplierID); err == nil {
				d.Supplier = sup
			}
		}
	case model.OrderSales:
		if o.CustomerID != nil && s.customers != nil {
			if c, err := s.customers.Get(ctx, *o.CustomerID); err == nil {
				d.Customer = c
			}
		}
	}
	if s.products != nil && len(o.ProductIDs) > 0 {
		for _, p := range s.products.List(ctx, query.ProductFilter{}, false) {
			if slices.Contains(o.ProductIDs, p.ID) {
				d.Products = append(d.Products, p)
			}
		}
	}
	return d, nil
}

func (s *orderService) Advance(ctx context.Context, id string) (*model.Order, error) {
	s.ensure(ctx, false)
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = rules.NextOrderStatus(o.Type, o.Status)
	s.store.Upsert(o)
	return &o, nil
}

func (s *orderService) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	s.ensure(ctx, false)
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if !rules.ValidStatus(o.Type, status) {
		return nil, &ValidationError{Messages: []string{
			fmt.Sprintf("Status %q is not valid for %s orders", status, o.Type),
		}}
	}
	o.Status = status
	s.store.Upsert(o)
	return &o, nil
}

func orderRules(o model.Order) []string {
	var msgs []string
	switch o.Type {
	case model.OrderPurchase:
		if o.SupplierID == nil || *o.SupplierID == "" {
			msgs = append(msgs, "Purchase orders need a supplier")
		}
		if o.CustomerID != nil {
			msgs = append(msgs, "Purchase orders cannot have a customer")
		}
	case model.OrderSales:
		if o.CustomerID == nil || *o.CustomerID == "" {
			msgs = append(msgs, "Sales orders need a customer")
		}
		if o.SupplierID != nil {
			msgs = append(msgs, "Sales orders cannot have a supplier")
		}
	}
	if o.Type != "" && o.Status != "" && !rules.ValidStatus(o.Type, o.Status) {
		msgs = append(msgs, fmt.Sprintf("Status %q is not valid for %s orders", o.Status, o.Type))
	}
	if o.Items == nil && o.Quantity < 1 {
		msgs = append(msgs, "Quantity must be at least 1")
	}
	if o.TotalPrice.IsNegative() {
		msgs = append(msgs, "Total price must not be negative")
	}
	return msgs
}

func prepareOrder(o *model.Order) error {
	if o.ProductIDs == nil {
		o.ProductIDs = []string{}
	}
	if err := check(o, orderRules(*o)...); err != nil {
		return err
	}
	if o.Items != nil {
		withItems(o, o.Items)
	}
	return nil
}

func (s *orderService) Create(ctx context.Context, o model.Order) (*model.Order, error) {
	if err := prepareOrder(&o); err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	kind := idcodec.PurchaseOrder
	if o.Type == model.OrderSales {
		kind = idcodec.SalesOrder
	}
	o.ID = s.store.NextID(kind)
	s.store.Upsert(o)
	return &o, nil
}

// Update replaces the order. Items already loaded are kept when the update
// carries none, so the totals stay derived from them. The type is fixed by
// the id prefix and cannot change.
func (s *orderService) Update(ctx context.Context, id string, o model.Order) (*model.Order, error) {
	s.ensure(ctx, false)
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if o.Type != "" && o.Type != existing.Type {
		return nil, &ValidationError{Messages: []string{
			fmt.Sprintf("Order type cannot change from %s to %s", existing.Type, o.Type),
		}}
	}
	if o.Items == nil && existing.Items != nil {
		o.Items = existing.Items
	}
	if err := prepareOrder(&o); err != nil {
		return nil, err
	}
	o.ID = id
	s.store.Upsert(o)
	return &o, nil
}

func (s *orderService) Delete(ctx context.Context, ids ...string) ([]string, error) {
	s.ensure(ctx, false)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.store.Remove(ids...)
	if len(removed) == 0 {
		return nil, ErrNotFound
	}
	return removed, nil
}
