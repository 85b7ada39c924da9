package operators

import (
	"fmt"

	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// accessoryChromosomeID/Name is the non-essential chromosome de-novo birth
// creates when the child genome has no other non-essential chromosome to
// place a new gene on.
const (
	accessoryChromosomeID   = "accessory"
	accessoryChromosomeName = "Accessory"

	// environmentTriggerUnknown is the symbolic activation condition a
	// de-novo gene is born with: its activation condition language has no
	// identifier for "whatever prompted this gene to appear", so it starts
	// conditional on a marker evaluateCondition's unknown-identifier rule
	// resolves as conservatively true.
	environmentTriggerUnknown = "environment_trigger_unknown > 0"
)

// deNovoBirth implements the de-novo stage. It mutates chromosomes in
// place (appending the Accessory chromosome if needed) and returns the
// mutation record, or nil if the stage did not fire.
func deNovoBirth(chromosomes *[]genome.Chromosome, rng ports.Rng, idSeq *int) *MutationRecord {
	if rng.NextFloat64() >= DeNovoRate {
		return nil
	}

	domains := genome.AllDomains()
	domain := domains[rng.NextIntn(len(domains))]

	*idSeq++
	g := genome.NewGene(
		fmt.Sprintf("denovo.%d", *idSeq),
		fmt.Sprintf("De Novo %d", *idSeq),
		domain,
		rng.NextFloat64(),
		0.1+rng.NextFloat64()*0.2,
		rng.NextFloat64()*0.2,
		0.5+rng.NextFloat64()*0.5,
		rng.NextFloat64()*0.2,
		rng.NextFloat64()*0.001,
		genome.OriginDeNovo,
	)
	g.ExpressionState = genome.ExpressionConditional
	g.ActivationCondition = environmentTriggerUnknown

	target := nonEssentialChromosomeIndex(*chromosomes, rng)
	if target < 0 {
		*chromosomes = append(*chromosomes, genome.Chromosome{ID: accessoryChromosomeID, Name: accessoryChromosomeName})
		target = len(*chromosomes) - 1
	}
	(*chromosomes)[target].Genes = append((*chromosomes)[target].Genes, g)

	return &MutationRecord{GeneID: g.ID, Kind: "de-novo", Before: 0, After: g.Value}
}

// nonEssentialChromosomeIndex picks a random non-essential chromosome, or -1
// if none exists.
func nonEssentialChromosomeIndex(chromosomes []genome.Chromosome, rng ports.Rng) int {
	var candidates []int
	for i, c := range chromosomes {
		if !c.IsEssential {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[rng.NextIntn(len(candidates))]
}
