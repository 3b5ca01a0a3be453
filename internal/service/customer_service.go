package service

import (
	"context"
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

// Locally created customers are numbered after this, clear of backend ids.
const customerIDFloor = 500

// CustomerService reads customers from the backend; edits apply to the
// console list immediately and are not sent anywhere.
type CustomerService interface {
	Selection
	List(ctx context.Context, f query.CustomerFilter, refresh bool) []model.Customer
	Get(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, c model.Customer) (*model.Customer, error)
	Update(ctx context.Context, id string, c model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, ids ...string) ([]string, error)
}

type customerService struct {
	selection[model.Customer]
	repo   repository.CustomerRepository
	store  *store.Store[model.Customer]
	loader loader
	mu     sync.Mutex
}

func NewCustomerService(repo repository.CustomerRepository, st *store.Store[model.Customer]) CustomerService {
	return &customerService{
		selection: selection[model.Customer]{st},
		repo:      repo,
		store:     st,
	}
}

func (s *customerService) load(ctx context.Context) {
	dtos, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch customers, using fallback data: %v", err)
		s.store.Replace(fixtures.Customers())
		return
	}
	customers := make([]model.Customer, 0, len(dtos))
	for _, d := range dtos {
		customers = append(customers, mapper.Customer(d))
	}
	s.store.Replace(customers)
}

func (s *customerService) ensure(ctx context.Context, refresh bool) {
	s.loader.ensure(refresh, func() { s.load(ctx) })
}

func (s *customerService) List(ctx context.Context, f query.CustomerFilter, refresh bool) []model.Customer {
	s.ensure(ctx, refresh)
	return query.Customers(s.store.All(), f)
}

func (s *customerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	s.ensure(ctx, false)
	c, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func trimCustomer(c *model.Customer) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.City = strings.TrimSpace(c.City)
}

func (s *customerService) Create(ctx context.Context, c model.Customer) (*model.Customer, error) {
	trimCustomer(&c)
	if err := check(c); err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.store.NextIDAbove(idcodec.Customer, customerIDFloor)
	s.store.Upsert(c)
	return &c, nil
}

func (s *customerService) Update(ctx context.Context, id string, c model.Customer) (*model.Customer, error) {
	trimCustomer(&c)
	if err := check(c); err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.store.Get(id); !ok {
		return nil, ErrNotFound
	}
	c.ID = id
	s.store.Upsert(c)
	return &c, nil
}

func (s *customerService) Delete(ctx context.Context, ids ...string) ([]string, error) {
	s.ensure(ctx, false)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.store.Remove(ids...)
	if len(removed) == 0 {
		return nil, ErrNotFound
	}
	return removed, nil
}
