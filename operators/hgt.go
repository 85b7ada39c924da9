package operators

import (
	"fmt"

	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// CooperationRecord is the evolution coordinator's per-pair cooperation
// ledger entry, read-only from the horizontal-transfer operation's point of
// view.
type CooperationRecord struct {
	Hours        float64
	Interactions int
}

// HorizontalTransfer implements horizontal gene transfer: a
// separate operation on a live agent, conditioned on sustained cooperation
// with the donor, that clones one highly-expressed active donor gene into a
// random recipient chromosome. It mutates recipient in place and returns
// the new gene id, or "" if the transfer did not fire.
func HorizontalTransfer(recipient *genome.DynamicGenome, donor *genome.DynamicGenome, donorID string, cooperation CooperationRecord, rng ports.Rng) (string, error) {
	if cooperation.Hours < HGTMinCooperationHours || cooperation.Interactions < HGTMinInteractions {
		return "", nil
	}
	if rng.NextFloat64() >= HGTRate {
		return "", nil
	}

	candidates := highlyExpressedActiveGenes(donor)
	if len(candidates) == 0 {
		return "", nil
	}
	source := candidates[rng.NextIntn(len(candidates))]

	clone := source
	clone.ID = fmt.Sprintf("%s.hgt.%s", source.ID, donorID)
	clone.Origin = genome.OriginHorizontalTransfer
	clone.Weight = clampWeight(source.Weight * 0.3)
	clone.AcquiredFrom = donorID
	clone.Age = 0

	target := nonEssentialChromosomeIndex(recipient.Chromosomes, rng)
	if target < 0 {
		recipient.Chromosomes = append(recipient.Chromosomes, genome.Chromosome{ID: accessoryChromosomeID, Name: accessoryChromosomeName})
		target = len(recipient.Chromosomes) - 1
	}
	if err := recipient.AddGene(recipient.Chromosomes[target].ID, clone); err != nil {
		return "", err
	}
	recipient.RecomputeHash()
	return clone.ID, nil
}

// highlyExpressedActiveGenes returns donor genes with weight > 1.0 that are
// not silenced.
func highlyExpressedActiveGenes(donor *genome.DynamicGenome) []genome.Gene {
	var out []genome.Gene
	for _, g := range donor.AllGenes() {
		if g.Weight > 1.0 && g.ExpressionState != genome.ExpressionSilenced {
			out = append(out, g)
		}
	}
	return out
}
