package domain

import "github.com/shopspring/decimal"

// ChartDataPoint is one row of a named time series. (SeriesName, Time) is not
// unique: duplicates are kept in insertion order.
type ChartDataPoint struct {
	ID         string          `json:"id"`
	SeriesName string          `json:"seriesName"`
	Time       string          `json:"time"` // YYYY-MM-DD
	Value      decimal.Decimal `json:"value"`
}

// SeriesPoint is the chart-ready form of a ChartDataPoint.
type SeriesPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// ChartSeries maps a series name to its points in storage order.
type ChartSeries map[string][]SeriesPoint
