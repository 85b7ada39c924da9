package genome

import "fmt"

// ErrInvariantViolated is the symbolic InvariantViolated error kind from
// unreachable outside bugs; propagated up to terminate the tick.
type ErrInvariantViolated struct {
	Reason string
}

func (e *ErrInvariantViolated) Error() string {
	return fmt.Sprintf("genome invariant violated: %s", e.Reason)
}

func invariantViolated(format string, args ...any) error {
	return &ErrInvariantViolated{Reason: fmt.Sprintf(format, args...)}
}

// CheckInvariants verifies the four structural invariants:
//  1. every edge references existing gene ids,
//  2. gene ids are unique across the genome,
//  3. essential chromosomes retain at least one gene,
//  4. (hash correctness is checked separately by HashUpToDate, since computing
//     it here would make CheckInvariants itself mutate nothing but would be
//     surprising to call from a read path).
func (g *DynamicGenome) CheckInvariants() error {
	seen := make(map[string]bool, g.TotalGeneCount)
	for _, c := range g.Chromosomes {
		for _, gene := range c.Genes {
			if seen[gene.ID] {
				return invariantViolated("duplicate gene id %q", gene.ID)
			}
			seen[gene.ID] = true
		}
		if c.IsEssential && len(c.Genes) == 0 {
			return invariantViolated("essential chromosome %q is empty", c.ID)
		}
	}
	for _, e := range g.Edges {
		if !seen[e.SourceGeneID] {
			return invariantViolated("edge references unknown source gene %q", e.SourceGeneID)
		}
		if !seen[e.TargetGeneID] {
			return invariantViolated("edge references unknown target gene %q", e.TargetGeneID)
		}
	}
	return nil
}

// AddGene appends gene to the chromosome named chromosomeID, clamping its
// numeric fields first. Returns ErrInvariantViolated if the chromosome does
// not exist or the gene id already exists.
func (g *DynamicGenome) AddGene(chromosomeID string, gene Gene) error {
	gene.Clamp()
	for _, c := range g.Chromosomes {
		for _, existing := range c.Genes {
			if existing.ID == gene.ID {
				return invariantViolated("gene id %q already exists", gene.ID)
			}
		}
	}
	for i := range g.Chromosomes {
		if g.Chromosomes[i].ID == chromosomeID {
			g.Chromosomes[i].Genes = append(g.Chromosomes[i].Genes, gene)
			g.RecomputeTotalGeneCount()
			return nil
		}
	}
	return invariantViolated("chromosome %q not found", chromosomeID)
}

// RemoveGene deletes geneID from its chromosome, along with any edge or mark
// that references it. Refuses to empty an essential chromosome.
func (g *DynamicGenome) RemoveGene(geneID string) error {
	for ci := range g.Chromosomes {
		idx := g.Chromosomes[ci].IndexOf(geneID)
		if idx < 0 {
			continue
		}
		if g.Chromosomes[ci].IsEssential && len(g.Chromosomes[ci].Genes) == 1 {
			return invariantViolated("cannot empty essential chromosome %q", g.Chromosomes[ci].ID)
		}
		genes := g.Chromosomes[ci].Genes
		g.Chromosomes[ci].Genes = append(genes[:idx], genes[idx+1:]...)

		filteredEdges := g.Edges[:0]
		for _, e := range g.Edges {
			if e.SourceGeneID != geneID && e.TargetGeneID != geneID {
				filteredEdges = append(filteredEdges, e)
			}
		}
		g.Edges = filteredEdges

		filteredMarks := g.Epigenome[:0]
		for _, m := range g.Epigenome {
			if m.TargetGeneID != geneID {
				filteredMarks = append(filteredMarks, m)
			}
		}
		g.Epigenome = filteredMarks

		g.RecomputeTotalGeneCount()
		return nil
	}
	return invariantViolated("gene %q not found", geneID)
}

// AddEdge appends edge after clamping it, refusing edges to/from unknown
// genes.
func (g *DynamicGenome) AddEdge(edge RegulatoryEdge) error {
	edge.Clamp()
	if _, ok := g.FindGene(edge.SourceGeneID); !ok {
		return invariantViolated("edge source %q not found", edge.SourceGeneID)
	}
	if _, ok := g.FindGene(edge.TargetGeneID); !ok {
		return invariantViolated("edge target %q not found", edge.TargetGeneID)
	}
	g.Edges = append(g.Edges, edge)
	return nil
}

// SetMark installs mark, overwriting any existing mark on the same gene (at
// most one mark per gene).
func (g *DynamicGenome) SetMark(mark EpigeneticMark) {
	mark.Clamp()
	for i := range g.Epigenome {
		if g.Epigenome[i].TargetGeneID == mark.TargetGeneID {
			g.Epigenome[i] = mark
			return
		}
	}
	g.Epigenome = append(g.Epigenome, mark)
}

// MarkFor returns the mark on geneID, if any.
func (g *DynamicGenome) MarkFor(geneID string) (EpigeneticMark, bool) {
	for _, m := range g.Epigenome {
		if m.TargetGeneID == geneID {
			return m, true
		}
	}
	return EpigeneticMark{}, false
}

// RemoveMark deletes the mark on geneID, if any.
func (g *DynamicGenome) RemoveMark(geneID string) {
	out := g.Epigenome[:0]
	for _, m := range g.Epigenome {
		if m.TargetGeneID != geneID {
			out = append(out, m)
		}
	}
	g.Epigenome = out
}
