package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a buy/sell quote for one dollar rate type ("official", "blue", ...).
// Type is unique across the collection. Sell >= Buy is expected but not enforced.
type ExchangeRate struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Buy       decimal.Decimal `json:"buy"`
	Sell      decimal.Decimal `json:"sell"`
	Trend     Trend           `json:"trend"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ExchangeRatePatch holds the fields of a partial update. Nil means unchanged.
type ExchangeRatePatch struct {
	Type  *string
	Buy   *decimal.Decimal
	Sell  *decimal.Decimal
	Trend *Trend
}

// Apply merges the patch into r and stamps UpdatedAt.
func (p ExchangeRatePatch) Apply(r *ExchangeRate, now time.Time) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Buy != nil {
		r.Buy = *p.Buy
	}
	if p.Sell != nil {
		r.Sell = *p.Sell
	}
	if p.Trend != nil {
		r.Trend = *p.Trend
	}
	r.UpdatedAt = now
}
