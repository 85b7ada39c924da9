package adaptiverate

// defaultBaseRate is the undisturbed baseline the controller scales away
// from, matching the order of magnitude of operators.PointMutationRate.
const defaultBaseRate = 0.05

// diversityThreshold is the GeneticDiversity floor below which the
// controller starts boosting the base rate, via the 4x
// coefficient but not this floor; 0.3 is a judgment call (see DESIGN.md).
const diversityThreshold = 0.3

// stressBoostFloor is the environmentalStress level above which the stress
// term kicks in, per the `(stress − 0.5)` term.
const stressBoostFloor = 0.5

const (
	rateFloor   = 0.005
	rateCeiling = 0.30
)

// Rates is the controller's output: a base mutation rate plus the
// operator-specific rates derived from it.
type Rates struct {
	Base               float64
	Duplication        float64
	Structural         float64
	HorizontalTransfer float64
}

// DeriveRates implements the adaptive rate controller: the base
// rate rises when genetic diversity is low, when the population is
// stagnant, and when environmental stress is high, then clamps to
// [0.005, 0.30] and derives the duplication/structural/HGT rates as fixed
// multiples of the clamped base.
func DeriveRates(m PopulationMetrics, environmentalStress float64) Rates {
	rate := defaultBaseRate

	if m.GeneticDiversity < diversityThreshold {
		rate *= 1 + 4*(diversityThreshold-m.GeneticDiversity)
	}

	if stagnant, factor := IsStagnant(m); stagnant {
		rate *= 1 + 2*factor
	}

	if environmentalStress > stressBoostFloor {
		rate *= 1 + (environmentalStress-stressBoostFloor)*3
	}

	rate = clampRate(rate)

	return Rates{
		Base:               rate,
		Duplication:        rate * 1.5,
		Structural:         rate * 0.3,
		HorizontalTransfer: rate * 0.5,
	}
}

func clampRate(rate float64) float64 {
	if rate < rateFloor {
		return rateFloor
	}
	if rate > rateCeiling {
		return rateCeiling
	}
	return rate
}
