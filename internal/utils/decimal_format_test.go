package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		precision int32
		want      string
	}{
		{"pads whole numbers", "850", 2, "850.00"},
		{"keeps two places", "1150.50", 2, "1150.50"},
		{"rounds half up", "0.405", 2, "0.41"},
		{"zero precision", "83983.17", 0, "83983"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWithPrecision(decimal.RequireFromString(tt.amount), tt.precision))
		})
	}
}
