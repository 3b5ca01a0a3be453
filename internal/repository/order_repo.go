package repository

import (
	"context"
	"fmt"

	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/model"
)

type OrderRepository interface {
	FindSalesOrders(ctx context.Context) ([]model.SalesOrderDTO, error)
	FindPurchaseOrders(ctx context.Context) ([]model.PurchaseOrderDTO, error)
	FindSalesOrderItems(ctx context.Context, id int64) ([]model.SalesOrderItemDTO, error)
	FindPurchaseOrderItems(ctx context.Context, id int64) ([]model.PurchaseOrderItemDTO, error)
}

type orderRepo struct {
	http *client.JSONClient
}

func NewOrderRepo(c *client.JSONClient) OrderRepository {
	return &orderRepo{c}
}

func (r *orderRepo) FindSalesOrders(ctx context.Context) ([]model.SalesOrderDTO, error) {
	var page model.Page[model.SalesOrderDTO]
	if err := r.http.Get(ctx, "/sales-orders", nil, &page); err != nil {
		return nil, err
	}
	if err := validateAll(page.Content); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (r *orderRepo) FindPurchaseOrders(ctx context.Context) ([]model.PurchaseOrderDTO, error) {
	var page model.Page[model.PurchaseOrderDTO]
	if err := r.http.Get(ctx, "/purchase-orders", nil, &page); err != nil {
		return nil, err
	}
	if err := validateAll(page.Content); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (r *orderRepo) FindSalesOrderItems(ctx context.Context, id int64) ([]model.SalesOrderItemDTO, error) {
	var page model.Page[model.SalesOrderItemDTO]
	if err := r.http.Get(ctx, fmt.Sprintf("/sales-orders/%d/items", id), nil, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (r *orderRepo) FindPurchaseOrderItems(ctx context.Context, id int64) ([]model.PurchaseOrderItemDTO, error) {
	var page model.Page[model.PurchaseOrderItemDTO]
	if err := r.http.Get(ctx, fmt.Sprintf("/purchase-orders/%d/items", id), nil, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}
