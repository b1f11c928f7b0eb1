// SPDX-License-Identifier: MIT
// Package: tensegra/life
//
// optimizer.go — post-growth stiffness redistribution from observed
// strain.

package life

import "github.com/solwyrm/tensegra/fabric"

// StrainToStiffness recomputes each pull member's stiffness in
// proportion to its observed strain relative to the population
// average. Scaffold roles and members with an endpoint at or below the
// ground tolerance are excluded, both from the average and from
// adjustment. Returns the number of members adjusted.
//
// The write goes through the engine's live stiffness array, so the new
// values take effect on the next physics tick.
func StrainToStiffness(fab *fabric.Fabric) int {
	strains := fab.Instance().Strains()
	stiffnesses := fab.Instance().Stiffnesses()
	groundTolerance := fab.Features()(fabric.FeatureGroundTolerance)

	candidates := make([]*fabric.Interval, 0, len(fab.Intervals()))
	total := 0.0
	for _, iv := range fab.Intervals() {
		if iv.Role.Push() || iv.Role.Scaffold() {
			continue
		}
		if fab.Location(iv.Alpha).Y <= groundTolerance || fab.Location(iv.Omega).Y <= groundTolerance {
			continue
		}
		candidates = append(candidates, iv)
		total += strains[iv.Index]
	}
	if len(candidates) == 0 {
		return 0
	}
	average := total / float64(len(candidates))
	if average == 0 {
		return 0
	}

	adjusted := 0
	for _, iv := range candidates {
		factor := strains[iv.Index] / average
		if factor < 0 {
			// A member strained against the population trend keeps its
			// stiffness rather than inverting it.
			continue
		}
		stiffnesses[iv.Index] *= factor
		adjusted++
	}
	return adjusted
}
