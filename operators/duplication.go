package operators

import (
	"fmt"

	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// duplicate implements the duplication stage in place over chromosomes.
func duplicate(chromosomes []genome.Chromosome, rng ports.Rng, idSeq *int) []MutationRecord {
	var records []MutationRecord
	for ci := range chromosomes {
		originals := chromosomes[ci].Genes
		for _, source := range originals {
			if rng.NextFloat64() >= DuplicationRate {
				continue
			}
			*idSeq++
			copyGene := source
			copyGene.ID = fmt.Sprintf("%s.dup%d", source.ID, *idSeq)
			copyGene.Origin = genome.OriginDuplicated
			copyGene.Weight = clampWeight(source.Weight * 0.5)
			copyGene.Value = clamp01(source.Value + rng.NextGaussian()*0.05)
			copyGene.DuplicateOf = source.ID
			copyGene.Age = 0

			chromosomes[ci].Genes = append(chromosomes[ci].Genes, copyGene)
			records = append(records, MutationRecord{GeneID: copyGene.ID, Kind: "duplication", Before: 0, After: copyGene.Value})
		}
	}
	return records
}
