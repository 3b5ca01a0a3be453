package repository

import (
	"context"

	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/model"
)

// CustomerRepository is read-only: customer edits stay in the console.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]model.CustomerDTO, error)
}

type customerRepo struct {
	http *client.JSONClient
}

func NewCustomerRepo(c *client.JSONClient) CustomerRepository {
	return &customerRepo{c}
}

func (r *customerRepo) FindAll(ctx context.Context) ([]model.CustomerDTO, error) {
	var page model.Page[model.CustomerDTO]
	if err := r.http.Get(ctx, "/customers", nil, &page); err != nil {
		return nil, err
	}
	if err := validateAll(page.Content); err != nil {
		return nil, err
	}
	return page.Content, nil
}
