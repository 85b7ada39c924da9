package operators

import (
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

func chromosomeByID(g *genome.DynamicGenome, id string) (genome.Chromosome, bool) {
	for _, c := range g.Chromosomes {
		if c.ID == id {
			return c, true
		}
	}
	return genome.Chromosome{}, false
}

func orderedChromosomeIDs(a, b *genome.DynamicGenome) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, c := range a.Chromosomes {
		if !seen[c.ID] {
			seen[c.ID] = true
			ids = append(ids, c.ID)
		}
	}
	for _, c := range b.Chromosomes {
		if !seen[c.ID] {
			seen[c.ID] = true
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func geneByID(genes []genome.Gene, id string) (genome.Gene, bool) {
	for _, g := range genes {
		if g.ID == id {
			return g, true
		}
	}
	return genome.Gene{}, false
}

func orderedGeneIDs(a, b []genome.Gene) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, g := range a {
		if !seen[g.ID] {
			seen[g.ID] = true
			ids = append(ids, g.ID)
		}
	}
	for _, g := range b {
		if !seen[g.ID] {
			seen[g.ID] = true
			ids = append(ids, g.ID)
		}
	}
	return ids
}

// crossover implements the crossover stage. It returns the child's
// chromosome list (pre-mutation) and the events that decided it.
func crossover(ctx BreedingContext, rng ports.Rng) ([]genome.Chromosome, []CrossoverEvent) {
	var result []genome.Chromosome
	var events []CrossoverEvent

	for _, chromID := range orderedChromosomeIDs(ctx.ParentA, ctx.ParentB) {
		chromA, hasA := chromosomeByID(ctx.ParentA, chromID)
		chromB, hasB := chromosomeByID(ctx.ParentB, chromID)

		switch {
		case hasA && !hasB:
			if rng.NextFloat64() < 0.5 {
				result = append(result, ageIncrementedChromosome(chromA))
				events = append(events, CrossoverEvent{ChromosomeID: chromID, FromParent: ctx.ParentAID, Mode: "single-parent"})
			}
			continue
		case hasB && !hasA:
			if rng.NextFloat64() < 0.5 {
				result = append(result, ageIncrementedChromosome(chromB))
				events = append(events, CrossoverEvent{ChromosomeID: chromID, FromParent: ctx.ParentBID, Mode: "single-parent"})
			}
			continue
		}

		if rng.NextFloat64() < ChromosomeLevelCrossoverRate {
			if rng.NextFloat64() < 0.5 {
				result = append(result, ageIncrementedChromosome(chromA))
				events = append(events, CrossoverEvent{ChromosomeID: chromID, FromParent: ctx.ParentAID, Mode: "chromosome-whole"})
			} else {
				result = append(result, ageIncrementedChromosome(chromB))
				events = append(events, CrossoverEvent{ChromosomeID: chromID, FromParent: ctx.ParentBID, Mode: "chromosome-whole"})
			}
			continue
		}

		child, geneEvents := uniformGeneCrossover(chromID, chromA, chromB, ctx, rng)
		result = append(result, child)
		events = append(events, geneEvents...)
	}
	return result, events
}

func uniformGeneCrossover(chromID string, chromA, chromB genome.Chromosome, ctx BreedingContext, rng ports.Rng) (genome.Chromosome, []CrossoverEvent) {
	meta := chromA
	if meta.ID == "" {
		meta = chromB
	}
	child := genome.Chromosome{ID: chromID, Name: meta.Name, IsEssential: meta.IsEssential}
	var events []CrossoverEvent

	for _, geneID := range orderedGeneIDs(chromA.Genes, chromB.Genes) {
		geneA, hasA := geneByID(chromA.Genes, geneID)
		geneB, hasB := geneByID(chromB.Genes, geneID)

		switch {
		case hasA && hasB:
			if rng.NextFloat64() < 0.5 {
				child.Genes = append(child.Genes, ageIncrementedGene(geneA))
				events = append(events, CrossoverEvent{ChromosomeID: chromID, GeneID: geneID, FromParent: ctx.ParentAID, Mode: "gene-uniform"})
			} else {
				child.Genes = append(child.Genes, ageIncrementedGene(geneB))
				events = append(events, CrossoverEvent{ChromosomeID: chromID, GeneID: geneID, FromParent: ctx.ParentBID, Mode: "gene-uniform"})
			}
		case hasA:
			if rng.NextFloat64() < ExtraGeneInheritanceRate {
				child.Genes = append(child.Genes, ageIncrementedGene(geneA))
				events = append(events, CrossoverEvent{ChromosomeID: chromID, GeneID: geneID, FromParent: ctx.ParentAID, Mode: "extra-gene"})
			}
		case hasB:
			if rng.NextFloat64() < ExtraGeneInheritanceRate {
				child.Genes = append(child.Genes, ageIncrementedGene(geneB))
				events = append(events, CrossoverEvent{ChromosomeID: chromID, GeneID: geneID, FromParent: ctx.ParentBID, Mode: "extra-gene"})
			}
		}
	}
	return child, events
}

func ageIncrementedChromosome(c genome.Chromosome) genome.Chromosome {
	out := genome.Chromosome{ID: c.ID, Name: c.Name, IsEssential: c.IsEssential, Genes: make([]genome.Gene, len(c.Genes))}
	for i, g := range c.Genes {
		out.Genes[i] = ageIncrementedGene(g)
	}
	return out
}

func ageIncrementedGene(g genome.Gene) genome.Gene {
	g.Age++
	return g
}
