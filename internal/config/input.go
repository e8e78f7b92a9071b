package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// InputParser handles parsing of batch scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Scenario rates
// are unconstrained in sign; principals and periods carry the same minimums
// the interactive prompts enforce.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("principal cannot be negative")
	}
	if scenario.Periods < 0 {
		return fmt.Errorf("periods cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration creates an example scenario configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:              "Savings at 5.25% for 3 years",
				Principal:         decimal.RequireFromString("10000.00"),
				AnnualRatePercent: decimal.RequireFromString("5.25"),
				Periods:           3,
			},
			{
				Name:              "Decay at -10% for 2 years",
				Principal:         decimal.RequireFromString("1000.00"),
				AnnualRatePercent: decimal.RequireFromString("-10"),
				Periods:           2,
			},
		},
	}
}
