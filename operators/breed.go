package operators

import (
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// Breed runs the full breeding pipeline: the inbreeding check, then
// crossover, point/large/weight mutation, duplication, deletion, de-novo
// birth, regulatory recombination, structural variation, and gene
// conversion, finishing with generation/gene-count/hash recomputation.
func Breed(ctx BreedingContext, lineage LineageCache, rng ports.Rng) (*BreedingResult, error) {
	if err := CheckInbreeding(ctx, lineage); err != nil {
		return nil, err
	}

	chromosomes, crossoverEvents := crossover(ctx, rng)
	mutations := mutate(chromosomes, rng)

	idSeq := 0
	mutations = append(mutations, duplicate(chromosomes, rng, &idSeq)...)
	mutations = append(mutations, deleteGenes(chromosomes, ctx, rng)...)
	if rec := deNovoBirth(&chromosomes, rng, &idSeq); rec != nil {
		mutations = append(mutations, *rec)
	}

	edges := recombineEdges(ctx.ParentA.Edges, ctx.ParentB.Edges, allGeneIDs(chromosomes), rng)
	variations := structuralVariation(chromosomes, rng)
	conversions := geneConversion(chromosomes, rng)

	generation := ctx.ParentA.Generation
	if ctx.ParentB.Generation > generation {
		generation = ctx.ParentB.Generation
	}
	generation++

	child := genome.NewGenome(childLineageID(ctx), generation, ctx.BirthTimestamp, chromosomes, edges)

	return &BreedingResult{
		Child:                child,
		Mutations:            mutations,
		CrossoverEvents:      crossoverEvents,
		StructuralVariations: variations,
		GeneConversions:      conversions,
	}, nil
}

func allGeneIDs(chromosomes []genome.Chromosome) []string {
	var ids []string
	for _, c := range chromosomes {
		ids = append(ids, c.GeneIDs()...)
	}
	return ids
}

// childLineageID derives a deterministic-looking id from both parents; the
// evolution coordinator is free to overwrite this with its own agent id
// once the child is actually adopted.
func childLineageID(ctx BreedingContext) string {
	return ctx.ParentAID + "+" + ctx.ParentBID
}
