// SPDX-License-Identifier: MIT
// Package: tensegra/fabric
//
// features.go — explicit numeric-feature lookup. Components receive a
// FeatureFn instead of reading ambient configuration, so every builder
// operation is a pure function of its inputs.

package fabric

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feature identifies a tunable numeric value of the core.
type Feature uint8

const (
	// FeatureStiffness is the base stiffness at 100% scale.
	FeatureStiffness Feature = iota
	// FeatureIntervalCountdown scales the rest-length adoption countdown
	// by the distance a new member must travel.
	FeatureIntervalCountdown
	// FeatureConnectorThreshold is the hub-to-hub distance at or below
	// which a pull complex is replaced by a rigid connection.
	FeatureConnectorThreshold
	// FeatureGroundTolerance is the altitude under which a joint counts
	// as touching the ground plane.
	FeatureGroundTolerance
	// FeatureBaseAltitude lifts an anchored structure above the ground
	// when lengths are adopted.
	FeatureBaseAltitude

	featureCount
)

var featureKeys = [featureCount]string{
	"stiffness",
	"interval_countdown",
	"connector_threshold",
	"ground_tolerance",
	"base_altitude",
}

// String implements fmt.Stringer, returning the YAML key of the feature.
func (f Feature) String() string {
	if int(f) < len(featureKeys) {
		return featureKeys[f]
	}
	return "unknown-feature"
}

// FeatureFn resolves a feature to its numeric value.
type FeatureFn func(Feature) float64

// Deterministic defaults.
const (
	defaultStiffness          = 1.0
	defaultIntervalCountdown  = 300.0
	defaultConnectorThreshold = 0.1
	defaultGroundTolerance    = 0.01
	defaultBaseAltitude       = 1.0
)

// DefaultFeatures returns the canonical feature table.
func DefaultFeatures() FeatureFn {
	return featureMap(map[Feature]float64{
		FeatureStiffness:          defaultStiffness,
		FeatureIntervalCountdown:  defaultIntervalCountdown,
		FeatureConnectorThreshold: defaultConnectorThreshold,
		FeatureGroundTolerance:    defaultGroundTolerance,
		FeatureBaseAltitude:       defaultBaseAltitude,
	})
}

// LoadFeatures reads a YAML feature file and overlays it on the
// defaults. Unknown keys are rejected so typos cannot silently fall
// back to default values.
func LoadFeatures(path string) (FeatureFn, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFeatures: %w", err)
	}
	overrides := map[string]float64{}
	if err = yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("LoadFeatures: parse %s: %w", path, err)
	}

	values := map[Feature]float64{}
	base := DefaultFeatures()
	for f := Feature(0); f < featureCount; f++ {
		values[f] = base(f)
	}
	for key, value := range overrides {
		found := false
		for f := Feature(0); f < featureCount; f++ {
			if featureKeys[f] == key {
				values[f] = value
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("LoadFeatures: unknown feature %q in %s", key, path)
		}
	}
	return featureMap(values), nil
}

func featureMap(values map[Feature]float64) FeatureFn {
	return func(f Feature) float64 { return values[f] }
}
