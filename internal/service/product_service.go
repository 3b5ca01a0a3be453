package service

import (
	"context"
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

type ProductService interface {
	Selection
	List(ctx context.Context, f query.ProductFilter, refresh bool) []model.Product
	Get(ctx context.Context, id string) (*model.Product, error)
	Detail(ctx context.Context, id string) (*model.Product, error)
	Stock(ctx context.Context, id string) (*model.StockDetails, error)
	Create(ctx context.Context, p model.Product) (*model.Product, error)
	Update(ctx context.Context, id string, p model.Product) (*model.Product, error)
	SetSuppliers(ctx context.Context, id string, preferred *string, active []string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) model.BulkDeleteResult
	ReferencingSuppliers(ctx context.Context, supplierIDs []string) []model.Product
}

type productService struct {
	selection[model.Product]
	repo   repository.ProductRepository
	store  *store.Store[model.Product]
	loader loader
	mu     sync.Mutex
}

func NewProductService(repo repository.ProductRepository, st *store.Store[model.Product]) ProductService {
	return &productService{
		selection: selection[model.Product]{st},
		repo:      repo,
		store:     st,
	}
}

func (s *productService) load(ctx context.Context) {
	dtos, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch products, using fallback data: %v", err)
		s.store.Replace(fixtures.Products())
		return
	}
	products := make([]model.Product, 0, len(dtos))
	for _, d := range dtos {
		products = append(products, mapper.Product(d))
	}
	s.store.Replace(products)
}

func (s *productService) ensure(ctx context.Context, refresh bool) {
	s.loader.ensure(refresh, func() { s.load(ctx) })
}

func (s *productService) List(ctx context.Context, f query.ProductFilter, refresh bool) []model.Product {
	s.ensure(ctx, refresh)
	return query.Products(s.store.All(), f)
}

func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	s.ensure(ctx, false)
	p, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Detail fetches the detail and stock records together and refreshes the
// list entry with the merged result.
func (s *productService) Detail(ctx context.Context, id string) (*model.Product, error) {
	n, err := idcodec.Product.Parse(id)
	if err != nil {
		log.Printf("Invalid product ID format: %s", id)
		return nil, err
	}
	s.ensure(ctx, false)

	var (
		detail *model.ProductDetailDTO
		stock  *model.ProductStockDTO
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.repo.FindByID(gctx, n)
		detail = d
		return err
	})
	g.Go(func() error {
		st, err := s.repo.FindStock(gctx, n)
		stock = st
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("Error fetching detailed product %s: %v", id, err)
		return nil, fmt.Errorf("product %s: %w", id, ErrDetailUnavailable)
	}

	var prior model.InventoryStatus
	if p, ok := s.store.Get(id); ok {
		prior = p.Status
	}
	p := mapper.DetailedProduct(*detail, stock, prior)
	s.store.Upsert(p)
	return &p, nil
}

func (s *productService) Stock(ctx context.Context, id string) (*model.StockDetails, error) {
	n, err := idcodec.Product.Parse(id)
	if err != nil {
		return nil, err
	}
	st, err := s.repo.FindStock(ctx, n)
	if err != nil {
		log.Printf("Error fetching product stock %s: %v", id, err)
		return nil, fmt.Errorf("stock of %s: %w", id, ErrDetailUnavailable)
	}
	return &model.StockDetails{
		OnHand:    st.QuantityOnHand,
		Reserved:  st.QuantityReserved,
		Available: st.QuantityAvailable,
	}, nil
}

// withPreferredActive puts the preferred supplier into the active set.
func withPreferredActive(p *model.Product) {
	if p.PreferredSupplierID == nil || *p.PreferredSupplierID == "" {
		p.PreferredSupplierID = nil
		return
	}
	if !slices.Contains(p.ActiveSupplierIDs, *p.PreferredSupplierID) {
		p.ActiveSupplierIDs = append(p.ActiveSupplierIDs, *p.PreferredSupplierID)
	}
}

func productRules(p model.Product) []string {
	var msgs []string
	if p.Price != nil && p.Price.IsNegative() {
		msgs = append(msgs, "Price must not be negative")
	}
	if p.SafetyStock != nil && p.ReorderPoint != nil && *p.ReorderPoint < *p.SafetyStock {
		msgs = append(msgs, "Reorder point must not be below safety stock")
	}
	return msgs
}

// confirmed rebuilds the list entry from the backend reply, keeping the
// stock figures the console already knew.
func confirmed(d model.ProductDetailDTO, prior model.Product) model.Product {
	p := mapper.DetailedProduct(d, nil, prior.Status)
	p.CurrentStock = prior.CurrentStock
	p.StockDetails = prior.StockDetails
	rules.DeriveProductStatus(&p)
	return p
}

func (s *productService) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	withPreferredActive(&p)
	if err := check(p, productRules(p)...); err != nil {
		return nil, err
	}
	payload, err := mapper.ProductPayload(p)
	if err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, &BackendError{Op: "create product", Err: err}
	}
	created := confirmed(*d, p)
	s.store.Upsert(created)
	return &created, nil
}

func (s *productService) Update(ctx context.Context, id string, p model.Product) (*model.Product, error) {
	n, err := idcodec.Product.Parse(id)
	if err != nil {
		return nil, err
	}
	withPreferredActive(&p)
	if err := check(p, productRules(p)...); err != nil {
		return nil, err
	}
	payload, err := mapper.ProductPayload(p)
	if err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	prior, ok := s.store.Get(id)
	if !ok {
		prior = p
	}
	d, err := s.repo.Update(ctx, n, payload)
	if err != nil {
		return nil, &BackendError{Op: "update product " + id, Err: err}
	}
	updated := confirmed(*d, prior)
	s.store.Upsert(updated)
	return &updated, nil
}

// SetSuppliers replaces the supplier associations of a listed product.
func (s *productService) SetSuppliers(ctx context.Context, id string, preferred *string, active []string) (*model.Product, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p := *current
	p.PreferredSupplierID = preferred
	p.ActiveSupplierIDs = append([]string{}, active...)
	return s.Update(ctx, id, p)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	n, err := idcodec.Product.Parse(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Delete(ctx, n); err != nil {
		return &BackendError{Op: "delete product " + id, Err: err}
	}
	s.store.Remove(id)
	return nil
}

// BulkDelete issues one delete per id concurrently and removes the ones the
// backend accepted. Malformed ids count as failed.
func (s *productService) BulkDelete(ctx context.Context, ids []string) model.BulkDeleteResult {
	ok := make([]bool, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			n, err := idcodec.Product.Parse(id)
			if err == nil {
				err = s.repo.Delete(ctx, n)
			}
			if err != nil {
				log.Printf("Error deleting product %s: %v", id, err)
				return nil
			}
			ok[i] = true
			return nil
		})
	}
	g.Wait()

	res := model.BulkDeleteResult{Success: []string{}, Failed: []string{}}
	for i, id := range ids {
		if ok[i] {
			res.Success = append(res.Success, id)
		} else {
			res.Failed = append(res.Failed, id)
		}
	}
	s.mu.Lock()
	s.store.Remove(res.Success...)
	s.mu.Unlock()
	return res
}

// ReferencingSuppliers lists the products that name any of supplierIDs as
// preferred or active supplier.
func (s *productService) ReferencingSuppliers(ctx context.Context, supplierIDs []string) []model.Product {
	s.ensure(ctx, false)
	var out []model.Product
	for _, p := range s.store.All() {
		for _, sid := range supplierIDs {
			if p.HasSupplier(sid) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
