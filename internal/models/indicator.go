package models

// EconomicIndicator is the persisted form of an indicator card. Key is unique.
type EconomicIndicator struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Value       string  `json:"value"`
	Category    string  `json:"category"`
	Trend       *string `json:"trend,omitempty"`
	Description *string `json:"description,omitempty"`
}
