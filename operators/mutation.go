package operators

import (
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// mutate implements the point-mutation stage in place over chromosomes, and
// returns the mutation records.
func mutate(chromosomes []genome.Chromosome, rng ports.Rng) []MutationRecord {
	var records []MutationRecord
	for ci := range chromosomes {
		for gi := range chromosomes[ci].Genes {
			g := &chromosomes[ci].Genes[gi]

			if rng.NextFloat64() < PointMutationRate {
				before := g.Value
				g.Value = clamp01(g.Value + rng.NextGaussian()*0.08)
				g.Origin = genome.OriginMutated
				records = append(records, MutationRecord{GeneID: g.ID, Kind: "point", Before: before, After: g.Value})
			}

			if rng.NextFloat64() < LargeMutationRate {
				before := g.Value
				g.Value = rng.NextFloat64()
				g.Origin = genome.OriginMutated
				records = append(records, MutationRecord{GeneID: g.ID, Kind: "large", Before: before, After: g.Value})
			}

			if rng.NextFloat64() < WeightMutationRate {
				before := g.Weight
				g.Weight = clampWeight(g.Weight + rng.NextGaussian()*0.1)
				records = append(records, MutationRecord{GeneID: g.ID, Kind: "weight", Before: before, After: g.Weight})
			}
		}
	}
	return records
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampWeight(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 3.0 {
		return 3.0
	}
	return v
}
