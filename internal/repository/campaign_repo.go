package repository

import (
	"context"

	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/model"
)

type CampaignRepository interface {
	FindProductCampaigns(ctx context.Context) ([]model.CampaignDTO, error)
	FindCustomerOffers(ctx context.Context) ([]model.CustomerSpecialOfferDTO, error)
}

type campaignRepo struct {
	http *client.JSONClient
}

func NewCampaignRepo(c *client.JSONClient) CampaignRepository {
	return &campaignRepo{c}
}

func (r *campaignRepo) FindProductCampaigns(ctx context.Context) ([]model.CampaignDTO, error) {
	var page model.Page[model.CampaignDTO]
	if err := r.http.Get(ctx, "/campaigns", nil, &page); err != nil {
		return nil, err
	}
	if err := validateAll(page.Content); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (r *campaignRepo) FindCustomerOffers(ctx context.Context) ([]model.CustomerSpecialOfferDTO, error) {
	var page model.Page[model.CustomerSpecialOfferDTO]
	if err := r.http.Get(ctx, "/customer-special-offers", nil, &page); err != nil {
		return nil, err
	}
	if err := validateAll(page.Content); err != nil {
		return nil, err
	}
	return page.Content, nil
}
