package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda valores para exibição
func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}
