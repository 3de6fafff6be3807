package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the persisted form of a dollar quote. Type is unique.
type ExchangeRate struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Buy       decimal.Decimal `json:"buy"`
	Sell      decimal.Decimal `json:"sell"`
	Trend     string          `json:"trend"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
