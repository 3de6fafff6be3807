package models

import "github.com/shopspring/decimal"

// MarketQuote is the persisted form of a quote. Symbol is unique.
type MarketQuote struct {
	ID            string          `json:"id"`
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}
