package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"go-backoffice-console/internal/fixtures"
	"go-backoffice-console/internal/mapper"
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/internal/rules"
	"go-backoffice-console/internal/store"
	"go-backoffice-console/pkg/clock"
	"go-backoffice-console/pkg/idcodec"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CampaignService merges product campaigns and customer offers. Edits are
// local to the console.
type CampaignService interface {
	Selection
	List(ctx context.Context, f query.CampaignFilter, refresh bool) []model.Campaign
	Get(ctx context.Context, id string) (*model.Campaign, error)
	Create(ctx context.Context, c model.Campaign) (*model.Campaign, error)
	Update(ctx context.Context, id string, c model.Campaign) (*model.Campaign, error)
	Delete(ctx context.Context, ids ...string) ([]string, error)
}

type campaignService struct {
	selection[model.Campaign]
	repo   repository.CampaignRepository
	store  *store.Store[model.Campaign]
	clock  clock.Clock
	loader loader
	mu     sync.Mutex
}

func NewCampaignService(repo repository.CampaignRepository, st *store.Store[model.Campaign], clk clock.Clock) CampaignService {
	return &campaignService{
		selection: selection[model.Campaign]{st},
		repo:      repo,
		store:     st,
		clock:     clk,
	}
}

// fetch reads both sources concurrently. A failing source contributes no
// rows; only when both fail is the load an error.
func (s *campaignService) fetch(ctx context.Context) ([]model.Campaign, error) {
	var (
		products             []model.CampaignDTO
		customers            []model.CustomerSpecialOfferDTO
		productErr, offerErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		if products, productErr = s.repo.FindProductCampaigns(ctx); productErr != nil {
			log.Printf("Error fetching product campaigns: %v", productErr)
		}
		return nil
	})
	g.Go(func() error {
		if customers, offerErr = s.repo.FindCustomerOffers(ctx); offerErr != nil {
			log.Printf("Error fetching customer campaigns: %v", offerErr)
		}
		return nil
	})
	g.Wait()
	if productErr != nil && offerErr != nil {
		return nil, errors.Join(productErr, offerErr)
	}

	now := s.clock.Now()
	out := make([]model.Campaign, 0, len(products)+len(customers))
	for _, d := range products {
		out = append(out, mapper.ProductCampaign(d, now))
	}
	for _, d := range customers {
		out = append(out, mapper.CustomerOffer(d, now))
	}
	return out, nil
}

func (s *campaignService) load(ctx context.Context) {
	campaigns, err := s.fetch(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch campaigns, using fallback data: %v", err)
		campaigns = fixtures.Campaigns(s.clock.Now())
	}
	s.store.Replace(campaigns)
}

func (s *campaignService) ensure(ctx context.Context, refresh bool) {
	s.loader.ensure(refresh, func() { s.load(ctx) })
}

func (s *campaignService) List(ctx context.Context, f query.CampaignFilter, refresh bool) []model.Campaign {
	s.ensure(ctx, refresh)
	return query.Campaigns(s.store.All(), f)
}

func (s *campaignService) Get(ctx context.Context, id string) (*model.Campaign, error) {
	s.ensure(ctx, false)
	c, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

var hundred = decimal.NewFromInt(100)

func campaignRules(c model.Campaign) []string {
	var msgs []string
	if c.Percentage.IsNegative() || c.Percentage.GreaterThan(hundred) {
		msgs = append(msgs, "Percentage must be between 0 and 100")
	}
	start, _, errStart := rules.ParseDate(c.StartDate)
	end, _, errEnd := rules.ParseDate(c.EndDate)
	if errStart == nil && errEnd == nil && !start.Before(end) {
		msgs = append(msgs, "End date must be after start date")
	}
	switch c.AssignmentType {
	case model.AssignProduct:
		if len(c.ProductIDs) == 0 {
			msgs = append(msgs, "Please select at least one product for this campaign")
		}
	case model.AssignCustomer:
		if len(c.CustomerIDs) == 0 {
			msgs = append(msgs, "Please select at least one customer for this campaign")
		}
	}
	if c.Type == model.CampaignPromotion && (c.BuyQty == nil || c.GetQty == nil) {
		msgs = append(msgs, "Promotion campaigns need buy and get quantities")
	}
	return msgs
}

// prepare cleans a submitted campaign and derives its active flag.
func (s *campaignService) prepare(c *model.Campaign) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.ProductIDs == nil {
		c.ProductIDs = []string{}
	}
	if c.CustomerIDs == nil {
		c.CustomerIDs = []string{}
	}
	if err := check(c, campaignRules(*c)...); err != nil {
		return err
	}
	c.IsActive = rules.CampaignActive(c.StartDate, c.EndDate, s.clock.Now())
	return nil
}

func (s *campaignService) Create(ctx context.Context, c model.Campaign) (*model.Campaign, error) {
	if err := s.prepare(&c); err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	kind := idcodec.Campaign
	if c.AssignmentType == model.AssignCustomer {
		kind = idcodec.CustomerOffer
	}
	c.ID = s.store.NextID(kind)
	s.store.Upsert(c)
	return &c, nil
}

func (s *campaignService) Update(ctx context.Context, id string, c model.Campaign) (*model.Campaign, error) {
	if err := s.prepare(&c); err != nil {
		return nil, err
	}
	s.ensure(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("campaign %s: %w", id, ErrNotFound)
	}
	if c.AssignmentType != existing.AssignmentType {
		return nil, &ValidationError{Messages: []string{
			fmt.Sprintf("Assignment type cannot change from %s to %s", existing.AssignmentType, c.AssignmentType),
		}}
	}
	c.ID = id
	s.store.Upsert(c)
	return &c, nil
}

func (s *campaignService) Delete(ctx context.Context, ids ...string) ([]string, error) {
	s.ensure(ctx, false)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.store.Remove(ids...)
	if len(removed) == 0 {
		return nil, ErrNotFound
	}
	return removed, nil
}
