package config

import (
	"github.com/BurntSushi/toml"
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// tomlNumbers mirrors the decimal fields of a configuration, left untyped so
// TOML floats arrive as float64 instead of six-digit text.
type tomlNumbers struct {
	Scenarios []struct {
		Principal        any `toml:"principal"`
		AnnualGrowthRate any `toml:"annual_growth_rate"`
		Fees             []struct {
			AnnualRate any `toml:"annual_rate"`
		} `toml:"fees"`
	} `toml:"scenarios"`
}

// decodeTOML decodes a configuration, keeping every digit of float-typed amounts and rates.
func decodeTOML(data []byte, config *domain.Configuration) error {
	if _, err := toml.Decode(string(data), config); err != nil {
		return err
	}

	var nums tomlNumbers
	if _, err := toml.Decode(string(data), &nums); err != nil {
		return err
	}
	for i, s := range nums.Scenarios {
		if i >= len(config.Scenarios) {
			break
		}
		scenario := &config.Scenarios[i]
		setFloat(&scenario.Principal, s.Principal)
		setFloat(&scenario.AnnualGrowthRate, s.AnnualGrowthRate)
		for j, f := range s.Fees {
			if j < len(scenario.Fees) {
				setFloat(&scenario.Fees[j].AnnualRate, f.AnnualRate)
			}
		}
	}
	return nil
}

func setFloat(dst *decimal.Decimal, v any) {
	if f, ok := v.(float64); ok {
		*dst = decimal.NewFromFloat(f)
	}
}
