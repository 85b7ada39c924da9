// Package expression computes expressed genomes from a DynamicGenome and an
// environmental snapshot: conditional gate resolution, developmental
// modulation, the regulatory fixed-point network, epigenetic modifiers,
// epistasis, and metabolic cost accounting.
package expression

import "github.com/axobase/egde/genome"

// EpistasisRelationship is how one gene's expression gates another's.
type EpistasisRelationship string

const (
	EpistasisDominant     EpistasisRelationship = "dominant"
	EpistasisRecessive    EpistasisRelationship = "recessive"
	EpistasisSuppressive  EpistasisRelationship = "suppressive"
	EpistasisSynergistic  EpistasisRelationship = "synergistic"
	EpistasisAntagonistic EpistasisRelationship = "antagonistic"
)

// EpistaticInteraction is one entry in the optional interaction list
// Express accepts.
type EpistaticInteraction struct {
	EpistaticGeneID  string
	HypostaticGeneID string
	Relationship     EpistasisRelationship
	Penetrance       float64 // [0,1]
}

// ExpressedGene is one gene's computed expression for a single call.
type ExpressedGene struct {
	GeneID         string
	Name           string
	Domain         genome.Domain
	ExpressedValue float64
	Silenced       bool
}

// ExpressedGenome is the full output of one expression pass, keyed by gene
// id for O(1) lookup and ordered for deterministic iteration.
type ExpressedGenome struct {
	Genes []ExpressedGene
	byID  map[string]int
}

// ValueFor returns a gene's expressed value, or 0 if geneID is unknown.
func (e *ExpressedGenome) ValueFor(geneID string) float64 {
	if e.byID == nil {
		return 0
	}
	if i, ok := e.byID[geneID]; ok {
		return e.Genes[i].ExpressedValue
	}
	return 0
}

func (e *ExpressedGenome) index() {
	e.byID = make(map[string]int, len(e.Genes))
	for i, g := range e.Genes {
		e.byID[g.GeneID] = i
	}
}

// Stats summarizes an expression pass across the whole genome.
type Stats struct {
	TotalGenes          int
	ActiveGenes         int
	SilencedGenes       int
	PerDomainCounts     map[genome.Domain]int
	AveragePlasticity   float64
	AverageEssentiality float64
	AverageAge          float64
	RegulatoryEdgeCount int
	MarkCount           int
}

// Result is the full output of one call to Express.
type Result struct {
	Expressed          ExpressedGenome
	Stats              Stats
	TotalMetabolicCost float64
	Converged          bool
	Warnings           []error
}
