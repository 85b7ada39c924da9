package expression

import "github.com/axobase/egde/genome"

// Default metabolic cost coefficients from the metabolic-cost step.
const (
	defaultBaseRate        = 0.001
	defaultPerGeneOverhead = 5e-5
)

// CostFloor is the cheapest any genome of totalGenes genes can run: the
// base rate plus per-gene overhead with nothing expressed.
func CostFloor(totalGenes int) float64 {
	return defaultBaseRate + float64(totalGenes)*defaultPerGeneOverhead
}

// metabolicCost implements totalCost = baseRate + totalGenes*perGeneOverhead
// + sum(gene.metabolicCost * gene.expressedValue).
func metabolicCost(totalGenes int, perGeneCost, perGeneExpressed []float64) float64 {
	cost := defaultBaseRate + float64(totalGenes)*defaultPerGeneOverhead
	for i := range perGeneCost {
		cost += perGeneCost[i] * perGeneExpressed[i]
	}
	return cost
}

// GetQuickMetabolicCost estimates a genome's per-tick cost without a full
// expression pass: each non-silenced gene is priced at its base expression
// value*weight, skipping development, regulation, and epigenetics. Useful
// for solvency checks before an environment snapshot exists.
func GetQuickMetabolicCost(g *genome.DynamicGenome) float64 {
	genes := g.AllGenes()
	cost := defaultBaseRate + float64(len(genes))*defaultPerGeneOverhead
	for _, gene := range genes {
		if gene.ExpressionState == genome.ExpressionSilenced {
			continue
		}
		base := gene.Value * gene.Weight
		if base > 3 {
			base = 3
		}
		cost += gene.MetabolicCost * base
	}
	return cost
}

// ticksPerDay assumes the default ten-minute cycle interval when converting
// per-tick cost to daily burn; the survival loop knows the real interval,
// this is the quick estimate's convention.
const ticksPerDay = 144

// CanSurvive reports whether balance covers days of metabolic burn at the
// genome's quick cost estimate.
func CanSurvive(g *genome.DynamicGenome, balance float64, days float64) bool {
	burnPerDay := GetQuickMetabolicCost(g) * ticksPerDay
	return balance >= burnPerDay*days
}
