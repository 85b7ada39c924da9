package operators

import (
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// structuralVariation implements the structural-variation stage: (a) per non-essential
// chromosome, inversion of a random contiguous segment at InversionRate; (b)
// a single global translocation swapping suffixes between two random
// non-essential chromosomes at TranslocationRate.
func structuralVariation(chromosomes []genome.Chromosome, rng ports.Rng) []StructuralVariationRecord {
	var records []StructuralVariationRecord

	for ci := range chromosomes {
		if chromosomes[ci].IsEssential || len(chromosomes[ci].Genes) < 2 {
			continue
		}
		if rng.NextFloat64() >= InversionRate {
			continue
		}
		n := len(chromosomes[ci].Genes)
		start := rng.NextIntn(n - 1)
		segLen := 2 + rng.NextIntn(n-start-1)
		end := start + segLen
		reverseGenes(chromosomes[ci].Genes[start:end])
		records = append(records, StructuralVariationRecord{Kind: "inversion", ChromosomeID: chromosomes[ci].ID, Start: start, End: end})
	}

	if rng.NextFloat64() < TranslocationRate {
		var candidates []int
		for i, c := range chromosomes {
			if !c.IsEssential && len(c.Genes) >= 2 {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) >= 2 {
			i := candidates[rng.NextIntn(len(candidates))]
			j := i
			for j == i {
				j = candidates[rng.NextIntn(len(candidates))]
			}
			breakI := 1 + rng.NextIntn(len(chromosomes[i].Genes)-1)
			breakJ := 1 + rng.NextIntn(len(chromosomes[j].Genes)-1)

			suffixI := append([]genome.Gene{}, chromosomes[i].Genes[breakI:]...)
			suffixJ := append([]genome.Gene{}, chromosomes[j].Genes[breakJ:]...)

			chromosomes[i].Genes = append(chromosomes[i].Genes[:breakI], suffixJ...)
			chromosomes[j].Genes = append(chromosomes[j].Genes[:breakJ], suffixI...)

			records = append(records, StructuralVariationRecord{
				Kind: "translocation", ChromosomeID: chromosomes[i].ID, OtherChromosomeID: chromosomes[j].ID,
				Start: breakI, End: breakJ,
			})
		}
	}

	return records
}

func reverseGenes(genes []genome.Gene) {
	for i, j := 0, len(genes)-1; i < j; i, j = i+1, j-1 {
		genes[i], genes[j] = genes[j], genes[i]
	}
}
