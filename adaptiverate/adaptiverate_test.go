package adaptiverate

import "testing"

func TestComputeDiversityIdenticalHashesIsZero(t *testing.T) {
	d := ComputeDiversity([]string{"abcd1234", "abcd1234", "abcd1234"})
	if d != 0 {
		t.Fatalf("expected 0 diversity for identical hashes, got %v", d)
	}
}

func TestComputeDiversityFullyDifferentHashesIsOne(t *testing.T) {
	d := ComputeDiversity([]string{"aaaa", "bbbb"})
	if d != 1 {
		t.Fatalf("expected 1 diversity for fully-differing hashes, got %v", d)
	}
}

func TestIsStagnantRequiresFullWindow(t *testing.T) {
	m := PopulationMetrics{FitnessHistory: []float64{0.5, 0.5, 0.5}}
	stagnant, _ := IsStagnant(m)
	if stagnant {
		t.Fatal("expected no stagnation verdict with fewer than 5 history points")
	}
}

func TestIsStagnantFlatHistory(t *testing.T) {
	m := PopulationMetrics{FitnessHistory: []float64{0.50, 0.50, 0.50, 0.50, 0.50}}
	stagnant, factor := IsStagnant(m)
	if !stagnant {
		t.Fatal("expected a perfectly flat fitness history to be flagged stagnant")
	}
	if factor != 1 {
		t.Fatalf("expected max stagnation factor for zero-variance history, got %v", factor)
	}
}

func TestIsStagnantRisingHistoryIsNotStagnant(t *testing.T) {
	m := PopulationMetrics{FitnessHistory: []float64{0.1, 0.3, 0.5, 0.7, 0.9}}
	stagnant, _ := IsStagnant(m)
	if stagnant {
		t.Fatal("expected a steadily rising fitness history not to be flagged stagnant")
	}
}

func TestDeriveRatesBaselineWhenHealthy(t *testing.T) {
	m := PopulationMetrics{GeneticDiversity: 0.8, FitnessHistory: []float64{0.1, 0.3, 0.5, 0.7, 0.9}}
	r := DeriveRates(m, 0.1)
	if r.Base != defaultBaseRate {
		t.Fatalf("expected unboosted base rate %v, got %v", defaultBaseRate, r.Base)
	}
	if r.Duplication != r.Base*1.5 || r.Structural != r.Base*0.3 || r.HorizontalTransfer != r.Base*0.5 {
		t.Fatalf("expected derived rates at fixed multiples of base, got %+v", r)
	}
}

func TestDeriveRatesBoostsOnLowDiversity(t *testing.T) {
	healthy := DeriveRates(PopulationMetrics{GeneticDiversity: 0.8}, 0.1)
	low := DeriveRates(PopulationMetrics{GeneticDiversity: 0.0}, 0.1)
	if low.Base <= healthy.Base {
		t.Fatalf("expected low diversity to boost the base rate above healthy: low=%v healthy=%v", low.Base, healthy.Base)
	}
}

func TestDeriveRatesBoostsOnHighStress(t *testing.T) {
	calm := DeriveRates(PopulationMetrics{GeneticDiversity: 0.8}, 0.1)
	stressed := DeriveRates(PopulationMetrics{GeneticDiversity: 0.8}, 1.0)
	if stressed.Base <= calm.Base {
		t.Fatalf("expected high stress to boost the base rate above calm: stressed=%v calm=%v", stressed.Base, calm.Base)
	}
}

func TestDeriveRatesClampsToCeiling(t *testing.T) {
	m := PopulationMetrics{GeneticDiversity: 0.0, FitnessHistory: []float64{0.5, 0.5, 0.5, 0.5, 0.5}}
	r := DeriveRates(m, 1.0)
	if r.Base > rateCeiling {
		t.Fatalf("expected base rate clamped to %v, got %v", rateCeiling, r.Base)
	}
}

func TestDeriveRatesClampsToFloor(t *testing.T) {
	// Even with every boost at its minimum, the base rate should never fall
	// under the floor (defaultBaseRate already exceeds it unboosted).
	m := PopulationMetrics{GeneticDiversity: 1.0}
	r := DeriveRates(m, 0.0)
	if r.Base < rateFloor {
		t.Fatalf("expected base rate at or above floor %v, got %v", rateFloor, r.Base)
	}
}
