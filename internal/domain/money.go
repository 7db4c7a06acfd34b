package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic for money

// MoneyScale is the number of fractional digits every money column keeps
const MoneyScale = 2

// IsWholeCents reports whether d is stored by a money column without rounding
func IsWholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
