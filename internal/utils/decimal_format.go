package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision renders an amount with exactly precision decimal places.
// Example: 850 with precision 2 returns "850.00"
// Example: 0.405 with precision 2 returns "0.41"
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
