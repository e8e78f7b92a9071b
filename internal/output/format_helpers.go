package output

import (
	"github.com/shopspring/decimal"

	moneydec "github.com/rpgo/compound-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as grouped USD currency with 2 decimals,
// rounding half-up to the cent. Kept here so it can be reused by multiple
// formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return moneydec.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
