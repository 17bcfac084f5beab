package main

import (
	"github.com/pthm-cable/aquarium/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "oxygen_decay", Path: "vitals.oxygen_decay", Min: 0.005, Max: 0.1, Default: 0.02},
			{Name: "food_decay", Path: "vitals.food_decay", Min: 0.01, Max: 0.2, Default: 0.04},
			{Name: "boost", Path: "vitals.boost", Min: 0.2, Max: 1.0, Default: 0.8},
			{Name: "feed_cheer", Path: "vitals.feed_cheer", Min: 0.05, Max: 1.0, Default: 0.4},
			{Name: "happiness_decay", Path: "tank.happiness_decay", Min: 0.005, Max: 0.1, Default: 0.02},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Vitals.OxygenDecay = clamped[0]
	cfg.Vitals.FoodDecay = clamped[1]
	cfg.Vitals.Boost = clamped[2]
	cfg.Vitals.FeedCheer = clamped[3]
	cfg.Tank.HappinessDecay = clamped[4]
}
