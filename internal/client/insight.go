package client

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"go-backoffice-console/internal/model"
)

var (
	ErrInvalidHorizon = errors.New("horizonDays must be 1, 7 or 14")
	ErrNoProducts     = errors.New("productIds must not be empty")
)

// Planner fetches restock suggestions.
type Planner struct {
	http *JSONClient
}

func NewPlanner(c *JSONClient) *Planner {
	return &Planner{http: c}
}

// Plan calls GET /plan for one product on the given date (YYYY-MM-DD).
func (p *Planner) Plan(ctx context.Context, productID int64, asOfDate string) (*model.PlanResponse, error) {
	q := url.Values{}
	q.Set("productId", strconv.FormatInt(productID, 10))
	q.Set("asOfDate", asOfDate)
	var out model.PlanResponse
	if err := p.http.Get(ctx, "/plan", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecaster fetches demand forecasts.
type Forecaster struct {
	http *JSONClient
}

func NewForecaster(c *JSONClient) *Forecaster {
	return &Forecaster{http: c}
}

func ValidHorizon(days int) bool {
	return days == 1 || days == 7 || days == 14
}

func (f *Forecaster) Forecast(ctx context.Context, req model.ForecastRequest) (*model.ForecastResponse, error) {
	if !ValidHorizon(req.HorizonDays) {
		return nil, ErrInvalidHorizon
	}
	if len(req.ProductIDs) == 0 {
		return nil, ErrNoProducts
	}
	var out model.ForecastResponse
	if err := f.http.Post(ctx, "/forecast", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reporter reads historical per-day sales.
type Reporter struct {
	http *JSONClient
}

func NewReporter(c *JSONClient) *Reporter {
	return &Reporter{http: c}
}

// ProductDaySales returns the daily sales of a product between from and to inclusive.
func (r *Reporter) ProductDaySales(ctx context.Context, productID int64, from, to string) ([]model.DaySales, error) {
	q := url.Values{}
	q.Set("productId", strconv.FormatInt(productID, 10))
	q.Set("from", from)
	q.Set("to", to)
	var out []model.DaySales
	if err := r.http.Get(ctx, "/reporting/product-day-sales", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
