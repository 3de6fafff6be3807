package domain

import "github.com/shopspring/decimal"

// MarketQuote is the latest price of an index or instrument, keyed by Symbol.
type MarketQuote struct {
	ID            string          `json:"id"`
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// MarketQuotePatch holds the fields of a partial update. Nil means unchanged.
type MarketQuotePatch struct {
	Symbol        *string
	Price         *decimal.Decimal
	ChangePercent *decimal.Decimal
}

// Apply merges the patch into q.
func (p MarketQuotePatch) Apply(q *MarketQuote) {
	if p.Symbol != nil {
		q.Symbol = *p.Symbol
	}
	if p.Price != nil {
		q.Price = *p.Price
	}
	if p.ChangePercent != nil {
		q.ChangePercent = *p.ChangePercent
	}
}
