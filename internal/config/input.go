package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	moneyfmt "github.com/apeftrust/investment-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatForFile picks the encoding from the file extension; anything unknown is YAML.
func FormatForFile(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// InputParser handles parsing and validation of input configuration
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a configuration from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, FormatForFile(filename))
}

// Parse decodes and validates a configuration document.
func (ip *InputParser) Parse(data []byte, format Format) (*domain.Configuration, error) {
	var config domain.Configuration
	switch format {
	case FormatTOML:
		if err := decodeTOML(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration validates a complete configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Currency != "" && !moneyfmt.IsKnownCurrency(config.Currency) {
		return fmt.Errorf("unknown currency %q", config.Currency)
	}
	if config.FeeTiming != domain.FeeTimingSameDay && config.FeeTiming != domain.FeeTimingNextDay {
		return fmt.Errorf("unknown fee timing %s", config.FeeTiming)
	}
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	names := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario, config.FeeTiming); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if names[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		names[scenario.Name] = true
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario, timing domain.FeeTiming) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if scenario.EndDate.IsZero() {
		return fmt.Errorf("end date is required")
	}
	if scenario.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if ft := scenario.FeeTiming; ft != nil && *ft != domain.FeeTimingSameDay && *ft != domain.FeeTimingNextDay {
		return fmt.Errorf("unknown fee timing %s", *ft)
	}

	seen := make(map[string]bool, len(scenario.Fees))
	for _, f := range scenario.Fees {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return fmt.Errorf("fee name is required")
		}
		if seen[name] {
			return fmt.Errorf("duplicate fee %q", name)
		}
		seen[name] = true
	}

	_, err := scenario.Request(timing)
	return err
}

// CreateExampleConfiguration creates an example configuration: the Apef Trust
// fund over 2025 alongside a lower-growth comparison.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	start := dateutil.New(2025, 1, 1)
	end := dateutil.New(2025, 12, 31)
	nextDay := domain.FeeTimingNextDay

	return &domain.Configuration{
		Currency:  moneyfmt.DefaultCurrency,
		FeeTiming: domain.FeeTimingSameDay,
		Scenarios: []domain.Scenario{
			{
				Name:             "Apef Trust 2025",
				Principal:        decimal.NewFromInt(1000000),
				AnnualGrowthRate: decimal.RequireFromString("0.16"),
				StartDate:        start,
				EndDate:          end,
				Fees:             domain.DefaultFees(),
			},
			{
				Name:             "Apef Trust 2025 (fees from day two)",
				Principal:        decimal.NewFromInt(1000000),
				AnnualGrowthRate: decimal.RequireFromString("0.16"),
				StartDate:        start,
				EndDate:          end,
				FeeTiming:        &nextDay,
				Fees:             domain.DefaultFees(),
			},
			{
				Name:             "Money Market 2025",
				Principal:        decimal.NewFromInt(1000000),
				AnnualGrowthRate: decimal.RequireFromString("0.1"),
				StartDate:        start,
				EndDate:          end,
				Fees: []domain.FeeRate{
					{Name: "management", AnnualRate: decimal.RequireFromString("0.0125")},
				},
			},
		},
	}
}

// SaveConfiguration writes config to filename, encoded according to its extension.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var (
		data []byte
		err  error
	)
	switch FormatForFile(filename) {
	case FormatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(config)
		data = buf.Bytes()
	case FormatJSON:
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
