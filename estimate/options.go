package estimate

import (
	"fmt"
	"strings"

	"github.com/arloliu/runeword/internal/options"
)

// Feature selects the independent variable of the fit.
type Feature uint8

const (
	// FeatureAttributes fits cost against the attribute count.
	FeatureAttributes Feature = iota
	// FeatureDigits fits cost against the token digit count.
	FeatureDigits
)

func (f Feature) String() string {
	switch f {
	case FeatureAttributes:
		return "attributes"
	case FeatureDigits:
		return "digits"
	default:
		return "unknown"
	}
}

// FeatureFromString parses a feature name as printed by String.
func FeatureFromString(name string) (Feature, error) {
	switch strings.ToLower(name) {
	case "attributes":
		return FeatureAttributes, nil
	case "digits":
		return FeatureDigits, nil
	default:
		return 0, fmt.Errorf("unknown feature %q", name)
	}
}

func (f Feature) value(s Sample) float64 {
	if f == FeatureDigits {
		return float64(s.Digits)
	}

	return float64(s.AttributeCount)
}

// AnalyzeConfig holds the analysis configuration.
type AnalyzeConfig struct {
	Feature Feature
}

func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{Feature: FeatureAttributes}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithFeature sets the independent variable.
func WithFeature(f Feature) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if f != FeatureAttributes && f != FeatureDigits {
			return fmt.Errorf("unknown feature %d", f)
		}
		cfg.Feature = f

		return nil
	})
}
