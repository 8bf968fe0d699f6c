package tui

import (
	"fmt"

	"gymbuddy/internal/config"
)

const lbPerKg = 2.20462

// Units provides weight conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatWeight formats a weight in kilograms to the user's preferred unit
func (u Units) FormatWeight(kg float64) string {
	if u.cfg.WeightUnit == "lb" {
		return fmt.Sprintf("%.1f lb", kg*lbPerKg)
	}
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatWeightPtr formats an optional weight; nil means bodyweight
func (u Units) FormatWeightPtr(kg *float64) string {
	if kg == nil {
		return "BW"
	}
	return u.FormatWeight(*kg)
}

// WeightLabel returns the short unit label ("kg" or "lb")
func (u Units) WeightLabel() string {
	if u.cfg.WeightUnit == "lb" {
		return "lb"
	}
	return "kg"
}

// ConvertWeightData converts chart data from kilograms if needed
func (u Units) ConvertWeightData(kgs []float64) []float64 {
	if u.cfg.WeightUnit != "lb" {
		return kgs
	}
	converted := make([]float64, len(kgs))
	for i, kg := range kgs {
		converted[i] = kg * lbPerKg
	}
	return converted
}
