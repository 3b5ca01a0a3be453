package repository

import (
	"context"
	"fmt"

	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/model"
)

type SupplierRepository interface {
	FindAll(ctx context.Context) ([]model.SupplierDTO, error)
	Create(ctx context.Context, payload model.SupplierPayload) (*model.SupplierDTO, error)
	Update(ctx context.Context, id int64, payload model.SupplierPayload) (*model.SupplierDTO, error)
	Delete(ctx context.Context, id int64) error
	BatchDelete(ctx context.Context, ids []int64) error
}

type supplierRepo struct {
	http *client.JSONClient
}

func NewSupplierRepo(c *client.JSONClient) SupplierRepository {
	return &supplierRepo{c}
}

func (r *supplierRepo) FindAll(ctx context.Context) ([]model.SupplierDTO, error) {
	var page model.Page[model.SupplierDTO]
	if err := r.http.Get(ctx, "/suppliers", nil, &page); err != nil {
		return nil, err
	}
	if err := validateAll(page.Content); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (r *supplierRepo) Create(ctx context.Context, payload model.SupplierPayload) (*model.SupplierDTO, error) {
	var supplier model.SupplierDTO
	if err := r.http.Post(ctx, "/suppliers", payload, &supplier); err != nil {
		return nil, err
	}
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(ctx context.Context, id int64, payload model.SupplierPayload) (*model.SupplierDTO, error) {
	var supplier model.SupplierDTO
	if err := r.http.Put(ctx, fmt.Sprintf("/suppliers/%d", id), payload, &supplier); err != nil {
		return nil, err
	}
	if supplier.SupplierID == 0 {
		supplier.SupplierID = id
	}
	return &supplier, nil
}

func (r *supplierRepo) Delete(ctx context.Context, id int64) error {
	return r.http.Delete(ctx, fmt.Sprintf("/suppliers/%d", id))
}

func (r *supplierRepo) BatchDelete(ctx context.Context, ids []int64) error {
	return r.http.Post(ctx, "/suppliers/batch-delete", model.SupplierBatchDeleteRequest{SupplierIDs: ids}, nil)
}
