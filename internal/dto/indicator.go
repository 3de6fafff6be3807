package dto

import "github.com/SscSPs/macro_dashboard_app/internal/core/domain"

// UpdateIndicatorRequest is a partial indicator. Value is display text and is not parsed.
type UpdateIndicatorRequest struct {
	Key         *string `json:"key" binding:"omitempty,min=1,max=64"`
	Label       *string `json:"label" binding:"omitempty,min=1,max=128"`
	Value       *string `json:"value" binding:"omitempty,max=128"`
	Category    *string `json:"category" binding:"omitempty,min=1,max=64"`
	Trend       *string `json:"trend" binding:"omitempty,max=32"`
	Description *string `json:"description" binding:"omitempty,max=256"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateIndicatorRequest) ToPatch() domain.EconomicIndicatorPatch {
	patch := domain.EconomicIndicatorPatch{
		Key:         r.Key,
		Label:       r.Label,
		Value:       r.Value,
		Trend:       r.Trend,
		Description: r.Description,
	}
	if r.Category != nil {
		category := domain.IndicatorCategory(*r.Category)
		patch.Category = &category
	}
	return patch
}

// IndicatorResponse mirrors domain.EconomicIndicator.
type IndicatorResponse struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Value       string  `json:"value"`
	Category    string  `json:"category"`
	Trend       *string `json:"trend"`
	Description *string `json:"description"`
}

// ToIndicatorResponse converts a domain.EconomicIndicator to IndicatorResponse DTO
func ToIndicatorResponse(ind *domain.EconomicIndicator) IndicatorResponse {
	return IndicatorResponse{
		ID:          ind.ID,
		Key:         ind.Key,
		Label:       ind.Label,
		Value:       ind.Value,
		Category:    string(ind.Category),
		Trend:       ind.Trend,
		Description: ind.Description,
	}
}

// ToListIndicatorResponse converts indicators to their DTOs.
func ToListIndicatorResponse(indicators []domain.EconomicIndicator) []IndicatorResponse {
	res := make([]IndicatorResponse, len(indicators))
	for i := range indicators {
		res[i] = ToIndicatorResponse(&indicators[i])
	}
	return res
}
