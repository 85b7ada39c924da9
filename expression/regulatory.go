package expression

import (
	"math"
	"sort"

	"github.com/axobase/egde/genome"
)

// regulatoryConvergenceThreshold and regulatoryMaxRounds bound the
// bounded fixed-point iteration over the regulatory graph: incoming edges onto a
// gene are combined with the source genes' CURRENT round values, genes are
// visited in ascending gene-id order within a round, and the process stops
// once no value moves by more than the threshold or the round cap is hit.
const (
	regulatoryConvergenceThreshold = 0.001
	regulatoryMaxRounds            = 10
	regulatoryMultiplierFloor      = 0.05
	regulatoryMultiplierCeiling    = 3.0
)

// ErrRegulatoryDidNotConverge is attached as a non-fatal ConvergenceWarning
// when the fixed-point iteration hits regulatoryMaxRounds without settling.
type ErrRegulatoryDidNotConverge struct {
	Rounds int
}

func (e *ErrRegulatoryDidNotConverge) Error() string {
	return "regulatory network did not converge"
}

// applyRegulatoryNetwork runs the fixed-point iteration over base, the
// base-expression value of every gene keyed by gene id. silenced marks
// genes that contribute zero as a regulatory source this call (permanently
// silenced, or conditionally silenced for this call per step 1). It returns
// each gene's converged regulatory multiplier, clamped to
// [regulatoryMultiplierFloor, regulatoryMultiplierCeiling], and whether the
// iteration converged within regulatoryMaxRounds.
func applyRegulatoryNetwork(g *genome.DynamicGenome, base map[string]float64, silenced map[string]bool, wallClockMillis float64) (map[string]float64, bool) {
	current := make(map[string]float64, len(base))
	for id, v := range base {
		current[id] = v
	}
	multiplier := make(map[string]float64, len(base))
	for id := range base {
		multiplier[id] = 1.0
	}

	incoming := make(map[string][]genome.RegulatoryEdge)
	for _, e := range g.Edges {
		incoming[e.TargetGeneID] = append(incoming[e.TargetGeneID], e)
	}

	ids := make([]string, 0, len(current))
	for id := range current {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	converged := false
	for round := 0; round < regulatoryMaxRounds; round++ {
		maxDelta := 0.0
		nextCurrent := make(map[string]float64, len(current))
		for id, v := range current {
			nextCurrent[id] = v
		}
		nextMultiplier := make(map[string]float64, len(multiplier))
		for id, v := range multiplier {
			nextMultiplier[id] = v
		}

		for _, id := range ids {
			edges := incoming[id]
			if len(edges) == 0 {
				continue
			}
			m := combineEdges(edges, current, silenced, wallClockMillis)
			m = clampRange(m, regulatoryMultiplierFloor, regulatoryMultiplierCeiling)
			v := base[id] * m
			if delta := math.Abs(v - current[id]); delta > maxDelta {
				maxDelta = delta
			}
			nextCurrent[id] = v
			nextMultiplier[id] = m
		}
		current, nextCurrent = nextCurrent, current
		multiplier, nextMultiplier = nextMultiplier, multiplier
		if maxDelta <= regulatoryConvergenceThreshold {
			converged = true
			break
		}
	}
	return multiplier, converged
}

// combineEdges folds every incoming edge onto one target gene into a single
// multiplier, grouping edges by logic tag and then
// multiplying each group's contribution together.
func combineEdges(edges []genome.RegulatoryEdge, current map[string]float64, silenced map[string]bool, wallClockMillis float64) float64 {
	var gateEdges []genome.RegulatoryEdge
	result := 1.0

	for _, e := range edges {
		source := sourceSignal(e, current, silenced)

		switch e.NormalizedLogic() {
		case genome.LogicAdditive, genome.LogicMultiplicative:
			result *= additiveContribution(e, source)
		case genome.LogicThreshold:
			result *= thresholdContribution(e, source)
		case genome.LogicOscillator:
			result *= oscillatorContribution(e, source, wallClockMillis)
		case genome.LogicAND, genome.LogicOR, genome.LogicNAND:
			gateEdges = append(gateEdges, e)
		default:
			result *= additiveContribution(e, source)
		}
	}

	if len(gateEdges) > 0 {
		result *= gateContribution(gateEdges, current, silenced)
	}
	return result
}

// sourceSignal is the value a source gene contributes to a regulatory edge:
// zero if the source is silenced this call, its current fixed-point value
// otherwise.
func sourceSignal(e genome.RegulatoryEdge, current map[string]float64, silenced map[string]bool) float64 {
	if silenced[e.SourceGeneID] {
		return 0
	}
	return current[e.SourceGeneID]
}

// additiveContribution implements the additive and
// multiplicative logic tags (identical formula): activators contribute
// (1 + strength*source*0.3), inhibitors contribute
// max(0.1, 1 - strength*source).
func additiveContribution(e genome.RegulatoryEdge, source float64) float64 {
	if e.Relationship == genome.RelationshipInhibition {
		return math.Max(0.1, 1-e.Strength*source)
	}
	return 1 + e.Strength*source*0.3
}

// thresholdContribution implements the Hill-function logic tag:
// (1 + strength*Hill(source, threshold, n)) for activators, mirrored as a
// dampening factor for inhibitors.
func thresholdContribution(e genome.RegulatoryEdge, source float64) float64 {
	h := hill(source, e.Threshold, e.NormalizedCooperativity())
	if e.Relationship == genome.RelationshipInhibition {
		return math.Max(0.1, 1-e.Strength*h)
	}
	return 1 + e.Strength*h
}

// oscillatorContribution implements (1 + strength*osc*0.5) where
// osc = (cos(2*pi*t/period + phase) + 1) / 2 (see oscillate), t in
// wall-clock milliseconds.
func oscillatorContribution(e genome.RegulatoryEdge, source float64, wallClockMillis float64) float64 {
	osc := oscillate(e, wallClockMillis)
	if e.Relationship == genome.RelationshipInhibition {
		return math.Max(0.1, 1-e.Strength*osc*0.5)
	}
	return 1 + e.Strength*osc*0.5
}

// gateContribution implements AND/OR/NAND over the activator edges in
// edges: AND passes the maximum activator signal only if every activator
// exceeds 0.3, OR takes the maximum activator signal, NAND is zero when every
// activator exceeds 0.3 and otherwise the maximum dampened by 0.5. The
// combined gate signal is then folded in with the same additive formula
// used for the additive/multiplicative tags.
func gateContribution(edges []genome.RegulatoryEdge, current map[string]float64, silenced map[string]bool) float64 {
	var activators []float64
	var avgStrength, n float64
	for _, e := range edges {
		if e.Relationship != genome.RelationshipActivation {
			continue
		}
		activators = append(activators, sourceSignal(e, current, silenced))
		avgStrength += e.Strength
		n++
	}
	if n == 0 {
		return 1.0
	}
	avgStrength /= n

	allAbove := true
	max := 0.0
	for _, v := range activators {
		if v <= 0.3 {
			allAbove = false
		}
		if v > max {
			max = v
		}
	}

	var gate float64
	logic := edges[0].NormalizedLogic()
	for _, e := range edges {
		if e.Logic == genome.LogicAND || e.Logic == genome.LogicOR || e.Logic == genome.LogicNAND {
			logic = e.Logic
			break
		}
	}
	switch logic {
	case genome.LogicAND:
		if allAbove {
			gate = max
		}
	case genome.LogicOR:
		gate = max
	case genome.LogicNAND:
		if allAbove {
			gate = 0
		} else {
			gate = max * 0.5
		}
	}
	return 1 + avgStrength*gate*0.3
}

// hill evaluates the Hill function x^n / (theta^n + x^n) used by
// threshold-tagged edges.
func hill(x, theta, n float64) float64 {
	if theta <= 0 {
		theta = 0.5
	}
	xn := math.Pow(x, n)
	tn := math.Pow(theta, n)
	if xn+tn == 0 {
		return 0
	}
	return xn / (tn + xn)
}

// oscillate evaluates osc = (cos(2*pi*t/period + phase) + 1) / 2 over
// wall-clock time using the edge's phase and period (milliseconds). Cosine
// rather than sine puts the peak at t=0 when phase=0, so a half-period
// later (t=period/2) lands at the trough instead of reproducing the same
// value sine would give at both endpoints.
func oscillate(e genome.RegulatoryEdge, wallClockMillis float64) float64 {
	period := e.Period
	if period <= 0 {
		period = 1
	}
	return (math.Cos(2*math.Pi*(wallClockMillis/period)+e.Phase) + 1) / 2
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
