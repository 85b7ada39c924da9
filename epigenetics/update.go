package epigenetics

import (
	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/genome"
)

// Update applies the per-cycle epigenetic update to g in place:
// existing marks decay and are dropped below retentionFloor, then every
// firing trigger installs a fresh mark (overwriting any retained mark) on
// every sufficiently-plastic gene in its target domain.
func Update(g *genome.DynamicGenome, env envstate.State, generation int) {
	retainMarks(g, generation)

	for _, gene := range g.AllGenes() {
		if gene.Plasticity < minPlasticityForMark {
			continue
		}
		for _, trig := range Catalogue() {
			if gene.Domain != trig.TargetDomain || !trig.Fires(env) {
				continue
			}
			g.SetMark(genome.EpigeneticMark{
				TargetGeneID:      gene.ID,
				Modification:      trig.Modification,
				Strength:          trig.Strength * gene.Plasticity,
				Cause:             trig.Cause,
				Heritability:      trig.Heritability * gene.Plasticity,
				Decay:             trig.Decay,
				GenerationCreated: generation,
			})
		}
	}
}

// UpdateResult is the delta one UpdateEpigenome call produced.
type UpdateResult struct {
	NewMarks      []genome.EpigeneticMark
	RemovedMarks  []genome.EpigeneticMark
	TriggerCauses []string
}

// UpdateEpigenome runs Update and reports which marks appeared, which were
// dropped, and which trigger causes fired, for callers that surface the
// delta (the API layer, tests).
func UpdateEpigenome(g *genome.DynamicGenome, env envstate.State, generation int) UpdateResult {
	before := make(map[string]genome.EpigeneticMark, len(g.Epigenome))
	for _, m := range g.Epigenome {
		before[m.TargetGeneID] = m
	}

	Update(g, env, generation)

	var result UpdateResult
	after := make(map[string]genome.EpigeneticMark, len(g.Epigenome))
	for _, m := range g.Epigenome {
		after[m.TargetGeneID] = m
		if prev, ok := before[m.TargetGeneID]; !ok || prev != m {
			result.NewMarks = append(result.NewMarks, m)
		}
	}
	for id, m := range before {
		if _, ok := after[id]; !ok {
			result.RemovedMarks = append(result.RemovedMarks, m)
		}
	}

	for _, trig := range Catalogue() {
		if trig.Fires(env) {
			result.TriggerCauses = append(result.TriggerCauses, trig.Cause)
		}
	}
	return result
}

// retainMarks drops every mark whose decayed strength has fallen to or
// below retentionFloor.
func retainMarks(g *genome.DynamicGenome, generation int) {
	var retained []genome.EpigeneticMark
	for _, m := range g.Epigenome {
		if m.DecayedStrength(generation) > retentionFloor {
			retained = append(retained, m)
		}
	}
	g.Epigenome = retained
}
