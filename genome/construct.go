package genome

// NewGene builds a Gene with its numeric fields clamped to their contractual
// ranges.
func NewGene(id, name string, domain Domain, value, weight, dominance, plasticity, essentiality, metabolicCost float64, origin Origin) Gene {
	g := Gene{
		ID:              id,
		Name:            name,
		Domain:          domain,
		Value:           value,
		Weight:          weight,
		Dominance:       dominance,
		Plasticity:      plasticity,
		Essentiality:    essentiality,
		MetabolicCost:   metabolicCost,
		Origin:          origin,
		ExpressionState: ExpressionActive,
	}
	g.Clamp()
	return g
}

// NewChromosome builds a Chromosome. isEssential is stored as given; it is
// not inferred from the genes' domains, so the seed pool in package genepool
// sets it explicitly.
func NewChromosome(id, name string, isEssential bool, genes ...Gene) Chromosome {
	return Chromosome{ID: id, Name: name, IsEssential: isEssential, Genes: append([]Gene{}, genes...)}
}

// NewGenome builds a DynamicGenome from chromosomes and edges, recomputing
// the gene count and hash. It panics only via CheckInvariants' caller — this
// constructor itself does not validate, to let genepool build up genomes
// incrementally before the seed set is complete; call CheckInvariants once
// construction is done.
func NewGenome(lineageID string, generation int, birthTimestamp int64, chromosomes []Chromosome, edges []RegulatoryEdge) *DynamicGenome {
	g := &DynamicGenome{
		LineageID:      lineageID,
		Generation:     generation,
		BirthTimestamp: birthTimestamp,
		Chromosomes:    chromosomes,
		Edges:          edges,
		Epigenome:      nil,
	}
	g.RecomputeTotalGeneCount()
	g.RecomputeHash()
	return g
}

// Clone returns a deep copy of g.
func (g *DynamicGenome) Clone() *DynamicGenome {
	out := &DynamicGenome{
		Generation:     g.Generation,
		LineageID:      g.LineageID,
		GenomeHash:     g.GenomeHash,
		TotalGeneCount: g.TotalGeneCount,
		BirthTimestamp: g.BirthTimestamp,
	}
	out.Chromosomes = make([]Chromosome, len(g.Chromosomes))
	for i, c := range g.Chromosomes {
		genes := make([]Gene, len(c.Genes))
		copy(genes, c.Genes)
		out.Chromosomes[i] = Chromosome{ID: c.ID, Name: c.Name, IsEssential: c.IsEssential, Genes: genes}
	}
	out.Edges = append([]RegulatoryEdge{}, g.Edges...)
	out.Epigenome = append([]EpigeneticMark{}, g.Epigenome...)
	return out
}
