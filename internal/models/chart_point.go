package models

import "github.com/shopspring/decimal"

// ChartDataPoint is one persisted time-series row.
type ChartDataPoint struct {
	ID         string          `json:"id"`
	SeriesName string          `json:"seriesName"`
	Time       string          `json:"time"`
	Value      decimal.Decimal `json:"value"`
}
