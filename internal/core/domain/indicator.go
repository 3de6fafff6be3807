package domain

// IndicatorCategory groups indicators on the dashboard. Values outside the constants
// below are legal.
type IndicatorCategory string

const (
	CategoryCentralBank IndicatorCategory = "central_bank"
	CategoryDebt        IndicatorCategory = "debt"
)

// EconomicIndicator is a pre-formatted macro figure. Value is display text
// ("US$147,289 Millones") and is never parsed as a number.
type EconomicIndicator struct {
	ID          string            `json:"id"`
	Key         string            `json:"key"`
	Label       string            `json:"label"`
	Value       string            `json:"value"`
	Category    IndicatorCategory `json:"category"`
	Trend       *string           `json:"trend"`
	Description *string           `json:"description"`
}

// EconomicIndicatorPatch holds the fields of a partial update. Nil means unchanged.
type EconomicIndicatorPatch struct {
	Key         *string
	Label       *string
	Value       *string
	Category    *IndicatorCategory
	Trend       *string
	Description *string
}

// Apply merges the patch into ind.
func (p EconomicIndicatorPatch) Apply(ind *EconomicIndicator) {
	if p.Key != nil {
		ind.Key = *p.Key
	}
	if p.Label != nil {
		ind.Label = *p.Label
	}
	if p.Value != nil {
		ind.Value = *p.Value
	}
	if p.Category != nil {
		ind.Category = *p.Category
	}
	if p.Trend != nil {
		trend := *p.Trend
		ind.Trend = &trend
	}
	if p.Description != nil {
		desc := *p.Description
		ind.Description = &desc
	}
}
