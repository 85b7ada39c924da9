package operators

import (
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// LowWeightThreshold is the "low-weight gene" cutoff the deletion stage
// names without pinning an exact value; 0.5 sits below the midpoint of the
// [0.1, 3.0] weight range, so genes contributing little signal are the ones
// exposed to the elevated deletion rate.
var LowWeightThreshold = 0.5

// deletionCostThreshold is the metabolicCost above which starvation mode
// additionally multiplies the deletion probability by
// DeletionStarvationCostMultiplier.
var deletionCostThreshold = 0.005

// deleteGenes implements the deletion stage in place over chromosomes,
// returning the ids deleted (as MutationRecord{Kind: "deletion"}). An
// essential chromosome is never left empty: if every gene on it would be
// deleted, the one with the highest essentiality is reinstated.
func deleteGenes(chromosomes []genome.Chromosome, ctx BreedingContext, rng ports.Rng) []MutationRecord {
	var records []MutationRecord

	for ci := range chromosomes {
		var kept, deleted []genome.Gene
		for _, g := range chromosomes[ci].Genes {
			if g.Essentiality >= DeletionEssentialityCeiling {
				kept = append(kept, g)
				continue
			}
			p := deletionProbability(g, ctx)
			if rng.NextFloat64() < p {
				deleted = append(deleted, g)
				records = append(records, MutationRecord{GeneID: g.ID, Kind: "deletion", Before: 1, After: 0})
				continue
			}
			kept = append(kept, g)
		}

		if chromosomes[ci].IsEssential && len(kept) == 0 && len(deleted) > 0 {
			survivor := highestEssentiality(deleted)
			kept = append(kept, survivor)
			records = removeDeletionRecord(records, survivor.ID)
		}
		chromosomes[ci].Genes = kept
	}
	return records
}

func highestEssentiality(genes []genome.Gene) genome.Gene {
	best := genes[0]
	for _, g := range genes[1:] {
		if g.Essentiality > best.Essentiality {
			best = g
		}
	}
	return best
}

func removeDeletionRecord(records []MutationRecord, geneID string) []MutationRecord {
	for i, r := range records {
		if r.Kind == "deletion" && r.GeneID == geneID {
			return append(records[:i], records[i+1:]...)
		}
	}
	return records
}

func deletionProbability(g genome.Gene, ctx BreedingContext) float64 {
	rate := DeletionBaseRate
	if ctx.StarvationMode {
		rate = DeletionStarvationRate
	}
	if g.ExpressionState == genome.ExpressionSilenced && DeletionSilencedRate > rate {
		rate = DeletionSilencedRate
	}
	if g.Weight < LowWeightThreshold && DeletionLowWeightRate > rate {
		rate = DeletionLowWeightRate
	}

	p := rate * (1 - g.Essentiality)
	if ctx.StarvationMode && g.MetabolicCost > deletionCostThreshold {
		p *= DeletionStarvationCostMultiplier
	}
	return p
}
