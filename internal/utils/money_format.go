package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimals shown for fines and balances.
const MoneyPrecision = 2

// FormatMoney formats an amount with MoneyPrecision decimals.
// Example: 3 returns "3.00", 0.5 returns "0.50"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}

// FormatWithPrecision formats an amount with the given precision
// Example: 33.333 with precision 1 returns "33.3"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
