package model

import "github.com/shopspring/decimal"

type PlanResponse struct {
	Message string `json:"message"`
}

// Suggestion is the restock recommendation shown next to a product.
type Suggestion struct {
	ProductID string `json:"productId"`
	AsOfDate  string `json:"asOfDate"`
	Message   string `json:"message"`
	Cached    bool   `json:"cached"`
}

type ForecastRequest struct {
	ProductIDs  []int64 `json:"productIds" validate:"required,min=1"`
	HorizonDays int     `json:"horizonDays" validate:"oneof=1 7 14"`
	AsOfDate    string  `json:"asOfDate" validate:"omitempty,datetime=2006-01-02"`
	ReturnDaily bool    `json:"returnDaily"`
}

type DailyForecast struct {
	Date  string           `json:"date"`
	Yhat  decimal.Decimal  `json:"yhat"`
	Lower *decimal.Decimal `json:"yhatLower,omitempty"`
	Upper *decimal.Decimal `json:"yhatUpper,omitempty"`
}

type PredictionInterval struct {
	Lower decimal.Decimal `json:"lower"`
	Upper decimal.Decimal `json:"upper"`
	Level decimal.Decimal `json:"level"`
}

type Confidence struct {
	Score          decimal.Decimal `json:"score"`
	Level          string          `json:"level"`
	Factors        []string        `json:"factors"`
	Recommendation string          `json:"recommendation"`
}

type ProductForecast struct {
	ProductID          int64               `json:"productId"`
	Daily              []DailyForecast     `json:"daily"`
	Sum                decimal.Decimal     `json:"sum"`
	PredictionInterval *PredictionInterval `json:"predictionInterval,omitempty"`
	Confidence         *Confidence         `json:"confidence,omitempty"`
}

type ForecastResponse struct {
	Forecasts    []ProductForecast `json:"forecasts"`
	ModelVersion string            `json:"modelVersion"`
}

type DaySales struct {
	Date             string          `json:"date"`
	ProductID        int64           `json:"productId"`
	SalesUnits       decimal.Decimal `json:"salesUnits"`
	OfferActiveShare decimal.Decimal `json:"offerActiveShare"`
}

// WeeklySales is one bar of the sales chart.
type WeeklySales struct {
	Week       string          `json:"week"`
	Label      string          `json:"label"`
	TotalSales decimal.Decimal `json:"totalSales"`
	Forecast   bool            `json:"forecast"`
	BarHeight  float64         `json:"barHeight"`
}

type SalesChart struct {
	ProductID    string        `json:"productId"`
	Bars         []WeeklySales `json:"bars"`
	ModelVersion string        `json:"modelVersion,omitempty"`
}
