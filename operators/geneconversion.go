package operators

import (
	"strings"

	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// geneConversionFitnessProxy stands in for a per-gene fitness score (the
// spec names none) to decide which of a converting pair is "higher": a
// gene's own value*weight is the same magnitude the expression engine's
// base-expression step already uses, so it is the natural proxy here too.
func geneConversionFitnessProxy(g genome.Gene) float64 {
	return g.Value * g.Weight
}

func sharesDomainOrNamePrefix(a, b genome.Gene) bool {
	if a.Domain == b.Domain {
		return true
	}
	prefixA := namePrefix(a.Name)
	prefixB := namePrefix(b.Name)
	return prefixA != "" && prefixA == prefixB
}

func namePrefix(name string) string {
	if i := strings.IndexAny(name, " ._-"); i > 0 {
		return name[:i]
	}
	return ""
}

// geneConversion implements the gene-conversion stage in place over chromosomes.
func geneConversion(chromosomes []genome.Chromosome, rng ports.Rng) []GeneConversionRecord {
	var records []GeneConversionRecord

	for ci := range chromosomes {
		genes := chromosomes[ci].Genes
		for i := 0; i < len(genes); i++ {
			for j := i + 1; j < len(genes); j++ {
				if !sharesDomainOrNamePrefix(genes[i], genes[j]) {
					continue
				}
				if rng.NextFloat64() >= GeneConversionRate {
					continue
				}

				donor, acceptor := i, j
				if geneConversionFitnessProxy(genes[i]) < geneConversionFitnessProxy(genes[j]) {
					donor, acceptor = j, i
				}

				blended := genes[acceptor]
				blended.Value = clamp01(0.7*genes[donor].Value + 0.3*genes[acceptor].Value)
				blended.Weight = clampWeight(0.7*genes[donor].Weight + 0.3*genes[acceptor].Weight)
				genes[acceptor] = blended

				records = append(records, GeneConversionRecord{
					ChromosomeID:   chromosomes[ci].ID,
					DonorGeneID:    genes[donor].ID,
					AcceptorGeneID: genes[acceptor].ID,
				})
			}
		}
	}
	return records
}
