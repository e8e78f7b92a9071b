package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// DefaultPrecision is the significant-digit ceiling applied to intermediate
// products when the caller does not configure one.
const DefaultPrecision = 28

// Engine computes compound growth on exact decimals. The zero growth case
// (Periods == 0) returns the principal untouched, with no rounding.
type Engine struct {
	// Precision caps the number of significant digits an intermediate
	// product may carry. Values at or below zero disable the cap.
	Precision int32
	Logger    Logger
}

// NewEngine creates an engine with the default precision ceiling and a
// no-op logger.
func NewEngine() *Engine {
	return &Engine{
		Precision: DefaultPrecision,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// GrowthFactor converts a yearly rate in percentage units into the
// per-period multiplier 1 + rate/100. The division by 100 is a decimal
// exponent shift, so the factor is always exact.
func GrowthFactor(ratePercent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(ratePercent.Shift(-2))
}

// FutureValue applies the growth factor to principal once per period.
// Intermediate products are never rounded to cents; only the precision
// ceiling trims them.
func (e *Engine) FutureValue(principal, ratePercent decimal.Decimal, periods int) decimal.Decimal {
	factor := GrowthFactor(ratePercent)
	value := principal
	for i := 0; i < periods; i++ {
		value = e.limit(value.Mul(factor))
	}
	return value
}

// Run computes the future value for one scenario and records the running
// value after each year.
func (e *Engine) Run(sc domain.Scenario) domain.Result {
	factor := GrowthFactor(sc.AnnualRatePercent)
	e.Logger.Debugf("scenario %q: principal=%s factor=%s periods=%d",
		sc.Name, sc.Principal, factor, sc.Periods)

	value := sc.Principal
	var schedule []domain.YearValue
	if sc.Periods > 0 {
		schedule = make([]domain.YearValue, 0, sc.Periods)
	}
	for year := 1; year <= sc.Periods; year++ {
		value = e.limit(value.Mul(factor))
		schedule = append(schedule, domain.YearValue{Year: year, Value: value})
	}

	e.Logger.Debugf("scenario %q: future value=%s", sc.Name, value)
	return domain.Result{
		Scenario:    sc,
		FutureValue: value,
		Schedule:    schedule,
	}
}

// RunAll runs every scenario in order.
func (e *Engine) RunAll(scenarios []domain.Scenario) []domain.Result {
	results := make([]domain.Result, 0, len(scenarios))
	for _, sc := range scenarios {
		results = append(results, e.Run(sc))
	}
	return results
}

// limit trims d to the configured significant-digit ceiling. Only
// fractional digits are dropped; the integer part always survives.
func (e *Engine) limit(d decimal.Decimal) decimal.Decimal {
	if e.Precision <= 0 {
		return d
	}
	digits := int32(d.NumDigits())
	frac := -d.Exponent()
	if digits <= e.Precision || frac <= 0 {
		return d
	}
	excess := digits - e.Precision
	if excess > frac {
		excess = frac
	}
	return d.Round(frac - excess)
}
