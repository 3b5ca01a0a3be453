package repository

import (
	"context"
	"fmt"

	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/model"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.ProductSummaryDTO, error)
	FindByID(ctx context.Context, id int64) (*model.ProductDetailDTO, error)
	FindStock(ctx context.Context, id int64) (*model.ProductStockDTO, error)
	Create(ctx context.Context, payload model.ProductPayload) (*model.ProductDetailDTO, error)
	Update(ctx context.Context, id int64, payload model.ProductPayload) (*model.ProductDetailDTO, error)
	Delete(ctx context.Context, id int64) error
}

type productRepo struct {
	http *client.JSONClient
}

func NewProductRepo(c *client.JSONClient) ProductRepository {
	return &productRepo{c}
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.ProductSummaryDTO, error) {
	var page model.Page[model.ProductSummaryDTO]
	if err := r.http.Get(ctx, "/products", nil, &page); err != nil {
		return nil, err
	}
	if err := validateAll(page.Content); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*model.ProductDetailDTO, error) {
	var product model.ProductDetailDTO
	if err := r.http.Get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindStock(ctx context.Context, id int64) (*model.ProductStockDTO, error) {
	var stock model.ProductStockDTO
	if err := r.http.Get(ctx, fmt.Sprintf("/products/%d/stock", id), nil, &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *productRepo) Create(ctx context.Context, payload model.ProductPayload) (*model.ProductDetailDTO, error) {
	var product model.ProductDetailDTO
	if err := r.http.Post(ctx, "/products", payload, &product); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, id int64, payload model.ProductPayload) (*model.ProductDetailDTO, error) {
	var product model.ProductDetailDTO
	if err := r.http.Put(ctx, fmt.Sprintf("/products/%d", id), payload, &product); err != nil {
		return nil, err
	}
	if product.ProductID == 0 {
		product.ProductID = id
	}
	return &product, nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.http.Delete(ctx, fmt.Sprintf("/products/%d", id))
}

type validatable interface {
	Validate() error
}

// validateAll rejects a page holding any malformed record.
func validateAll[T validatable](items []T) error {
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
