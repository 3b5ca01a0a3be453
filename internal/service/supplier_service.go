package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"go-backoffice-console/internal/fixtures"
	"go-backoffice-console/internal/mapper"
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/internal/store"
	"go-backoffice-console/pkg/idcodec"
)

// SupplierDeleteReport tells the console which suppliers went away and which
// products still pointed at them.
type SupplierDeleteReport struct {
	Deleted          []string `json:"deleted"`
	AffectedProducts []string `json:"affectedProducts"`
	Warning          string   `json:"warning,omitempty"`
}

type SupplierService interface {
	Selection
	List(ctx context.Context, f query.SupplierFilter, refresh bool) []model.Supplier
	Get(ctx context.Context, id string) (*model.Supplier, error)
	Create(ctx context.Context, s model.Supplier) (*model.Supplier, error)
	Update(ctx context.Context, id string, s model.Supplier) (*model.Supplier, error)
	Delete(ctx context.Context, id string) (*SupplierDeleteReport, error)
	BatchDelete(ctx context.Context, ids []string) (*SupplierDeleteReport, error)
}

type supplierService struct {
	selection[model.Supplier]
	repo     repository.SupplierRepository
	products ProductService
	store    *store.Store[model.Supplier]
	loader   loader
	mu       sync.Mutex
}

func NewSupplierService(repo repository.SupplierRepository, products ProductService, st *store.Store[model.Supplier]) SupplierService {
	return &supplierService{
		selection: selection[model.Supplier]{st},
		repo:      repo,
		products:  products,
		store:     st,
	}
}

func (s *supplierService) load(ctx context.Context) {
	dtos, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch suppliers, using fallback data: %v", err)
		s.store.Replace(fixtures.Suppliers())
		return
	}
	suppliers := make([]model.Supplier, 0, len(dtos))
	for _, d := range dtos {
		suppliers = append(suppliers, mapper.Supplier(d))
	}
	s.store.Replace(suppliers)
}

func (s *supplierService) ensure(ctx context.Context, refresh bool) {
	s.loader.ensure(refresh, func() { s.load(ctx) })
}

func (s *supplierService) List(ctx context.Context, f query.SupplierFilter, refresh bool) []model.Supplier {
	s.ensure(ctx, refresh)
	return query.Suppliers(s.store.All(), f)
}

func (s *supplierService) Get(ctx context.Context, id string) (*model.Supplier, error) {
	s.ensure(ctx, false)
	sup, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &sup, nil
}

func trimSupplier(sup *model.Supplier) {
	sup.Name = strings.TrimSpace(sup.Name)
	sup.Email = strings.TrimSpace(sup.Email)
	sup.Phone = strings.TrimSpace(sup.Phone)
	sup.City = strings.TrimSpace(sup.City)
}

func (s *supplierService) Create(ctx context.Context, sup model.Supplier) (*model.Supplier, error) {
	trimSupplier(&sup)
	if err := check(sup); err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.repo.Create(ctx, mapper.SupplierPayload(sup))
	if err != nil {
		return nil, &BackendError{Op: "create supplier", Err: err}
	}
	created := mapper.Supplier(*d)
	s.store.Upsert(created)
	return &created, nil
}

func (s *supplierService) Update(ctx context.Context, id string, sup model.Supplier) (*model.Supplier, error) {
	n, err := idcodec.Supplier.Parse(id)
	if err != nil {
		return nil, err
	}
	trimSupplier(&sup)
	if err := check(sup); err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.repo.Update(ctx, n, mapper.SupplierPayload(sup))
	if err != nil {
		return nil, &BackendError{Op: "update supplier " + id, Err: err}
	}
	updated := mapper.Supplier(*d)
	s.store.Upsert(updated)
	return &updated, nil
}

func (s *supplierService) Delete(ctx context.Context, id string) (*SupplierDeleteReport, error) {
	n, err := idcodec.Supplier.Parse(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Delete(ctx, n); err != nil {
		return nil, &BackendError{Op: "delete supplier " + id, Err: err}
	}
	s.store.Remove(id)
	return s.report(ctx, []string{id}), nil
}

// BatchDelete tries the batch endpoint first and falls back to one delete per
// id in order, stopping at the first failure.
func (s *supplierService) BatchDelete(ctx context.Context, ids []string) (*SupplierDeleteReport, error) {
	numeric := make([]int64, 0, len(ids))
	for _, id := range ids {
		n, err := idcodec.Supplier.Parse(id)
		if err != nil {
			return nil, err
		}
		numeric = append(numeric, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.repo.BatchDelete(ctx, numeric)
	if err == nil {
		s.store.Remove(ids...)
		return s.report(ctx, ids), nil
	}
	log.Printf("Batch delete not supported, falling back to individual deletes: %v", err)

	var deleted []string
	for i, n := range numeric {
		if err := s.repo.Delete(ctx, n); err != nil {
			s.store.Remove(deleted...)
			return nil, &BackendError{Op: "delete supplier " + ids[i], Err: err}
		}
		deleted = append(deleted, ids[i])
	}
	s.store.Remove(deleted...)
	return s.report(ctx, deleted), nil
}

func (s *supplierService) report(ctx context.Context, deleted []string) *SupplierDeleteReport {
	r := &SupplierDeleteReport{Deleted: deleted, AffectedProducts: []string{}}
	if s.products == nil {
		return r
	}
	affected := s.products.ReferencingSuppliers(ctx, deleted)
	names := make([]string, 0, len(affected))
	for _, p := range affected {
		r.AffectedProducts = append(r.AffectedProducts, p.ID)
		names = append(names, p.Name)
	}
	r.Warning = AssociationWarning(names)
	return r
}

// AssociationWarning names the first three products and counts the rest.
func AssociationWarning(productNames []string) string {
	if len(productNames) == 0 {
		return ""
	}
	shown := productNames
	more := ""
	if len(productNames) > 3 {
		shown = productNames[:3]
		more = fmt.Sprintf(" and %d more", len(productNames)-3)
	}
	return fmt.Sprintf("Suppliers were associated with products: %s%s", strings.Join(shown, ", "), more)
}
