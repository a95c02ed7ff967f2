// Package main tunes classification thresholds so generated maps hit
// target band fractions.
package main

import (
	"github.com/pthm-cable/swarm/config"
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
// Thresholds are encoded as the obstacle threshold followed by the width of
// each resource band, so every vector decodes to a descending set.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the threshold parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "obstacle", Path: "classification.obstacle", Min: 0.55, Max: 0.98, Default: 0.80},
			{Name: "energy_band", Path: "classification.energy", Min: 0.001, Max: 0.15, Default: 0.05},
			{Name: "mineral_band", Path: "classification.mineral", Min: 0.001, Max: 0.15, Default: 0.03},
			{Name: "scientific_band", Path: "classification.scientific_site", Min: 0.001, Max: 0.15, Default: 0.02},
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

// Thresholds decodes a raw vector into classification thresholds.
func (pv *ParamVector) Thresholds(values []float64) config.ClassificationConfig {
	c := pv.Clamp(values)
	obstacle := c[0]
	energy := obstacle - c[1]
	mineral := energy - c[2]
	scientific := mineral - c[3]
	return config.ClassificationConfig{
		Obstacle:       obstacle,
		Energy:         energy,
		Mineral:        mineral,
		ScientificSite: scientific,
	}
}

// ApplyToConfig writes decoded thresholds into cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	cfg.Classification = pv.Thresholds(values)
}

// ExtractFromConfig encodes the thresholds of cfg as a raw vector.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	t := cfg.Classification
	return []float64{
		t.Obstacle,
		t.Obstacle - t.Energy,
		t.Energy - t.Mineral,
		t.Mineral - t.ScientificSite,
	}
}
