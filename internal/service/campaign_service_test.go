package service

import (
	"context"
	"testing"
	"time"

	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var campaignNow = time.Date(2024, 9, 20, 12, 0, 0, 0, time.UTC)

func newCampaignService(t *testing.T, routes map[string]reply) (*fakeBackend, CampaignService) {
	b, c := newBackend(t, routes)
	clk := clock.NewFake(campaignNow)
	return b, NewCampaignService(repository.NewCampaignRepo(c), newStore[model.Campaign]("campaigns", clk), clk)
}

func ptr[T any](v T) *T { return &v }

func TestCampaignService_MergesSources(t *testing.T) {
	_, svc := newCampaignService(t, map[string]reply{
		"GET /campaigns": ok(page(`[{"campaignId":4,"campaignName":"Tea BXGY","campaignType":"BXGY_SAME_PRODUCT","buyQty":2,"getQty":1,
			"startDate":"2024-09-01","endDate":"2024-09-30","products":[{"productId":2}]}]`)),
		"GET /customer-special-offers": ok(page(`[{"specialOfferId":1,"customerId":7,"percentOff":15,"startDate":"2024-01-01","endDate":"2024-09-19"}]`)),
	})
	all := svc.List(context.Background(), query.CampaignFilter{}, false)
	require.Equal(t, []string{"CAMP-004", "CUST-OFFER-001"}, ids(all))
	assert.True(t, all[0].IsActive)
	assert.Equal(t, model.CampaignPromotion, all[0].Type)
	assert.False(t, all[1].IsActive)
	assert.Equal(t, "Customer 7 - 15% OFF", all[1].Name)
}

func TestCampaignService_OneSourceDown(t *testing.T) {
	_, svc := newCampaignService(t, map[string]reply{
		"GET /campaigns":               fail(500),
		"GET /customer-special-offers": ok(page(`[{"specialOfferId":2,"customerId":3,"percentOff":12,"startDate":"2024-07-01","endDate":"2024-12-31"}]`)),
	})
	all := svc.List(context.Background(), query.CampaignFilter{}, false)
	assert.Equal(t, []string{"CUST-OFFER-002"}, ids(all))
}

func TestCampaignService_BothSourcesDown(t *testing.T) {
	_, svc := newCampaignService(t, map[string]reply{})
	all := svc.List(context.Background(), query.CampaignFilter{}, false)
	assert.Len(t, all, 5)

	active := svc.List(context.Background(), query.CampaignFilter{Active: "active"}, false)
	assert.Equal(t, []string{"CAMP-002", "CUST-OFFER-001", "CAMP-003", "CUST-OFFER-002"}, ids(active))
}

func TestCampaignService_Validation(t *testing.T) {
	_, svc := newCampaignService(t, map[string]reply{})
	_, err := svc.Create(context.Background(), model.Campaign{
		Name: "Broken", Type: model.CampaignPromotion, AssignmentType: model.AssignProduct,
		Percentage: decimal.NewFromInt(120), StartDate: "2024-10-10", EndDate: "2024-10-10",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		"Percentage must be between 0 and 100",
		"End date must be after start date",
		"Please select at least one product for this campaign",
		"Promotion campaigns need buy and get quantities",
	}, verr.Messages)
}

func TestCampaignService_LocalEdits(t *testing.T) {
	_, svc := newCampaignService(t, map[string]reply{})
	ctx := context.Background()

	offer, err := svc.Create(ctx, model.Campaign{
		Name: "Loyalty", Type: model.CampaignDiscount, AssignmentType: model.AssignCustomer,
		Percentage: decimal.NewFromInt(5), StartDate: "2024-09-01", EndDate: "2024-09-20",
		CustomerIDs: []string{"CUST-002"},
	})
	require.NoError(t, err)
	assert.Equal(t, "CUST-OFFER-003", offer.ID)
	assert.True(t, offer.IsActive)

	camp, err := svc.Create(ctx, model.Campaign{
		Name: "Mugs", Type: model.CampaignPromotion, AssignmentType: model.AssignProduct,
		BuyQty: ptr(3), GetQty: ptr(1), StartDate: "2024-10-01", EndDate: "2024-10-31",
		ProductIDs: []string{"ID-003"},
	})
	require.NoError(t, err)
	assert.Equal(t, "CAMP-004", camp.ID)
	assert.False(t, camp.IsActive)

	camp.EndDate = "2024-11-30"
	updated, err := svc.Update(ctx, camp.ID, *camp)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-30", updated.EndDate)

	removed, err := svc.Delete(ctx, "CAMP-004", "CUST-OFFER-003")
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.Len(t, svc.List(ctx, query.CampaignFilter{}, false), 5)
}

func TestCampaignService_UpdateCannotChangeAssignment(t *testing.T) {
	_, svc := newCampaignService(t, map[string]reply{})
	ctx := context.Background()

	camp, err := svc.Create(ctx, model.Campaign{
		Name: "Mugs", Type: model.CampaignDiscount, AssignmentType: model.AssignProduct,
		Percentage: decimal.NewFromInt(10), StartDate: "2024-10-01", EndDate: "2024-10-31",
		ProductIDs: []string{"ID-003"},
	})
	require.NoError(t, err)

	camp.AssignmentType = model.AssignCustomer
	camp.CustomerIDs = []string{"CUST-002"}
	_, err = svc.Update(ctx, camp.ID, *camp)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Assignment type cannot change from product to customer"}, verr.Messages)

	stored, err := svc.Get(ctx, camp.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AssignProduct, stored.AssignmentType)
}
