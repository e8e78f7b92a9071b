package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario holds the three validated inputs for one compound interest
// calculation. Values are immutable once constructed; the calculation
// engine never writes back into a Scenario.
type Scenario struct {
	Name string `yaml:"name" json:"name,omitempty"`

	// Principal is the starting amount, always >= 0.
	Principal decimal.Decimal `yaml:"principal" json:"principal"`

	// AnnualRatePercent is the yearly rate in percentage units, e.g. 5.25
	// for 5.25%. Negative rates model decay and are valid.
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`

	// Periods is the number of whole-year compounding periods, always >= 0.
	Periods int `yaml:"periods" json:"periods"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Scenario. Decimal
// fields pass through strings so scalars like 5.25 never touch float64.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Name      string `yaml:"name"`
		Principal string `yaml:"principal"`
		Rate      string `yaml:"annual_rate_percent"`
		Periods   int    `yaml:"periods"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	s.Name = aux.Name
	s.Periods = aux.Periods

	principal, err := decimal.NewFromString(aux.Principal)
	if err != nil {
		return err
	}
	s.Principal = principal

	rate := decimal.Zero
	if aux.Rate != "" {
		if rate, err = decimal.NewFromString(aux.Rate); err != nil {
			return err
		}
	}
	s.AnnualRatePercent = rate

	return nil
}

// MarshalYAML renders decimal fields as strings, mirroring UnmarshalYAML.
func (s Scenario) MarshalYAML() (interface{}, error) {
	return struct {
		Name      string `yaml:"name"`
		Principal string `yaml:"principal"`
		Rate      string `yaml:"annual_rate_percent"`
		Periods   int    `yaml:"periods"`
	}{
		Name:      s.Name,
		Principal: s.Principal.String(),
		Rate:      s.AnnualRatePercent.String(),
		Periods:   s.Periods,
	}, nil
}

// YearValue is the running value after one compounding period.
type YearValue struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

// Result is the outcome of running one scenario: the final future value and
// the value at the end of each intermediate year.
type Result struct {
	Scenario    Scenario        `json:"scenario"`
	FutureValue decimal.Decimal `json:"future_value"`
	Schedule    []YearValue     `json:"schedule,omitempty"`
}

// Configuration is a batch input file: one or more named scenarios.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
