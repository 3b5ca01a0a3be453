package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/rules"
	"go-backoffice-console/pkg/cache"
	"go-backoffice-console/pkg/clock"
	"go-backoffice-console/pkg/idcodec"

	"github.com/shopspring/decimal"
)

const (
	suggestionUnavailable = "Unable to load AI suggestion at this time."
	noSuggestion          = "No suggestion available"
	invalidProductID      = "Invalid product ID format"

	defaultChartWeeks = 8
	maxChartWeeks     = 52
	dateLayout        = "2006-01-02"
)

type PlanSource interface {
	Plan(ctx context.Context, productID int64, asOfDate string) (*model.PlanResponse, error)
}

type ForecastSource interface {
	Forecast(ctx context.Context, req model.ForecastRequest) (*model.ForecastResponse, error)
}

type SalesSource interface {
	ProductDaySales(ctx context.Context, productID int64, from, to string) ([]model.DaySales, error)
}

// InsightOptions tune the suggestion panel. An empty DefaultAsOf means
// seven days after today.
type InsightOptions struct {
	DefaultAsOf string
	CacheTTL    time.Duration
}

type InsightService interface {
	Suggestion(ctx context.Context, productID, asOfDate string) (model.Suggestion, error)
	SalesChart(ctx context.Context, productID string, weeks, horizonDays int, asOfDate string) (*model.SalesChart, error)
	Forecast(ctx context.Context, req model.ForecastRequest) (*model.ForecastResponse, error)
}

type insightService struct {
	planner    PlanSource
	forecaster ForecastSource
	reporter   SalesSource
	cache      cache.Cache
	clock      clock.Clock
	opts       InsightOptions
}

func NewInsightService(p PlanSource, f ForecastSource, r SalesSource, c cache.Cache, clk clock.Clock, opts InsightOptions) InsightService {
	if c == nil {
		c = cache.NewMemory()
	}
	return &insightService{planner: p, forecaster: f, reporter: r, cache: c, clock: clk, opts: opts}
}

func (s *insightService) defaultAsOf() string {
	if s.opts.DefaultAsOf != "" {
		return s.opts.DefaultAsOf
	}
	return s.clock.Now().AddDate(0, 0, 7).Format(dateLayout)
}

// Suggestion never fails on the planning side: errors and empty answers
// become fixed messages. Only a malformed id is reported as an error.
func (s *insightService) Suggestion(ctx context.Context, productID, asOfDate string) (model.Suggestion, error) {
	out := model.Suggestion{ProductID: productID}
	n, err := idcodec.Product.Parse(productID)
	if err != nil {
		log.Printf("Invalid product ID format: %s", productID)
		out.Message = invalidProductID
		return out, err
	}
	if asOfDate == "" {
		asOfDate = s.defaultAsOf()
	}
	out.AsOfDate = asOfDate

	key := fmt.Sprintf("suggestion:%d:%s", n, asOfDate)
	var hit model.Suggestion
	if err := s.cache.GetJSON(ctx, key, &hit); err == nil {
		hit.Cached = true
		return hit, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Warning: suggestion cache read failed: %v", err)
	}

	resp, err := s.planner.Plan(ctx, n, asOfDate)
	if err != nil {
		log.Printf("Error fetching AI suggestion for %s: %v", productID, err)
		out.Message = suggestionUnavailable
		return out, nil
	}
	out.Message = resp.Message
	if out.Message == "" {
		out.Message = noSuggestion
		return out, nil
	}
	if err := s.cache.SetJSON(ctx, key, out, s.opts.CacheTTL); err != nil {
		log.Printf("Warning: suggestion cache write failed: %v", err)
	}
	return out, nil
}

func (s *insightService) Forecast(ctx context.Context, req model.ForecastRequest) (*model.ForecastResponse, error) {
	if !client.ValidHorizon(req.HorizonDays) {
		return nil, &ValidationError{Messages: []string{client.ErrInvalidHorizon.Error()}}
	}
	if len(req.ProductIDs) == 0 {
		return nil, &ValidationError{Messages: []string{client.ErrNoProducts.Error()}}
	}
	if err := check(req); err != nil {
		return nil, err
	}
	resp, err := s.forecaster.Forecast(ctx, req)
	if err != nil {
		return nil, &BackendError{Op: "forecast", Err: err}
	}
	return resp, nil
}

func weekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
}

func weekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// SalesChart buckets the reported daily sales of the last weeks by ISO week
// and appends the forecast for the following horizonDays. The chart is
// unavailable only when the history cannot be read; a failed forecast just
// leaves its bars out.
func (s *insightService) SalesChart(ctx context.Context, productID string, weeks, horizonDays int, asOfDate string) (*model.SalesChart, error) {
	n, err := idcodec.Product.Parse(productID)
	if err != nil {
		return nil, err
	}
	if weeks <= 0 {
		weeks = defaultChartWeeks
	}
	weeks = min(weeks, maxChartWeeks)
	if horizonDays == 0 {
		horizonDays = 7
	}
	if !client.ValidHorizon(horizonDays) {
		return nil, &ValidationError{Messages: []string{client.ErrInvalidHorizon.Error()}}
	}
	end := s.clock.Now().UTC().Truncate(24 * time.Hour)
	if asOfDate != "" {
		if end, err = time.Parse(dateLayout, asOfDate); err != nil {
			return nil, &ValidationError{Messages: []string{"asOfDate must be YYYY-MM-DD"}}
		}
	}
	first := weekStart(end).AddDate(0, 0, -7*(weeks-1))

	days, err := s.reporter.ProductDaySales(ctx, n, first.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		log.Printf("Error fetching sales history for %s: %v", productID, err)
		return nil, fmt.Errorf("sales chart of %s: %w", productID, ErrDetailUnavailable)
	}

	chart := &model.SalesChart{ProductID: productID}
	index := make(map[string]int, weeks)
	for d := first; !d.After(end); d = d.AddDate(0, 0, 7) {
		index[weekKey(d)] = len(chart.Bars)
		chart.Bars = append(chart.Bars, model.WeeklySales{
			Week:       weekKey(d),
			Label:      d.Format("Jan 2"),
			TotalSales: decimal.Zero,
		})
	}
	for _, day := range days {
		t, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			continue
		}
		if i, ok := index[weekKey(t)]; ok {
			chart.Bars[i].TotalSales = chart.Bars[i].TotalSales.Add(day.SalesUnits)
		}
	}

	fc, err := s.forecaster.Forecast(ctx, model.ForecastRequest{
		ProductIDs:  []int64{n},
		HorizonDays: horizonDays,
		AsOfDate:    end.Format(dateLayout),
		ReturnDaily: true,
	})
	if err != nil {
		log.Printf("Warning: forecast unavailable for %s: %v", productID, err)
	} else {
		chart.ModelVersion = fc.ModelVersion
		chart.Bars = append(chart.Bars, forecastBars(fc, n)...)
	}

	peak := decimal.Zero
	for _, b := range chart.Bars {
		peak = decimal.Max(peak, b.TotalSales)
	}
	for i := range chart.Bars {
		chart.Bars[i].BarHeight = rules.BarHeight(chart.Bars[i].TotalSales, peak)
	}
	return chart, nil
}

// forecastBars groups the daily forecast of productID by ISO week. Without
// daily values the whole horizon becomes one bar.
func forecastBars(fc *model.ForecastResponse, productID int64) []model.WeeklySales {
	var bars []model.WeeklySales
	for _, pf := range fc.Forecasts {
		if pf.ProductID != productID {
			continue
		}
		if len(pf.Daily) == 0 {
			return []model.WeeklySales{{Week: "forecast", Label: "Forecast", TotalSales: pf.Sum, Forecast: true}}
		}
		index := make(map[string]int)
		for _, d := range pf.Daily {
			t, err := time.Parse(dateLayout, d.Date)
			if err != nil {
				continue
			}
			key := weekKey(t)
			i, ok := index[key]
			if !ok {
				i = len(bars)
				index[key] = i
				bars = append(bars, model.WeeklySales{
					Week:       key,
					Label:      weekStart(t).Format("Jan 2"),
					TotalSales: decimal.Zero,
					Forecast:   true,
				})
			}
			bars[i].TotalSales = bars[i].TotalSales.Add(d.Yhat)
		}
	}
	return bars
}
