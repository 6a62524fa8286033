package utils

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds to the nearest whole currency unit, half-up.
// This domain has no fractional sub-units, so every money value that leaves
// a calculation goes through here.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

// PercentOf returns percent% of amount, rounded to a whole currency unit.
func PercentOf(amount decimal.Decimal, percent decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(percent).Div(hundred))
}

// ApplyDiscount reduces amount by discountPercent.
// A 100% discount yields exactly zero.
func ApplyDiscount(amount decimal.Decimal, discountPercent decimal.Decimal) decimal.Decimal {
	if discountPercent.GreaterThanOrEqual(hundred) {
		return decimal.Zero
	}
	return RoundMoney(amount.Mul(hundred.Sub(discountPercent)).Div(hundred))
}

// MinMoney returns the smaller of two amounts.
func MinMoney(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// InPercentRange reports whether p lies in [0, 100].
func InPercentRange(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}
