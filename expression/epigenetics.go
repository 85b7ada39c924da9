package expression

import "github.com/axobase/egde/genome"

// epigeneticMultiplier implements the epigenetic-multiplier step: at most one mark
// applies per gene, its strength decays geometrically by generation, and
// the modification kind determines the multiplier shape. The result is
// floored at 0.
func epigeneticMultiplier(g genome.Gene, mark *genome.EpigeneticMark, currentGeneration int) float64 {
	if mark == nil {
		return 1.0
	}
	s := mark.DecayedStrength(currentGeneration)

	var m float64
	switch mark.Modification {
	case genome.MarkUpregulate:
		m = 1 + 0.5*s
	case genome.MarkDownregulate:
		m = 1 - 0.5*s
	case genome.MarkSilence:
		m = 1 - s
	case genome.MarkActivate:
		m = 1 + s
	default:
		m = 1.0
	}
	if m < 0 {
		m = 0
	}
	return m
}

// findMark returns the (at most one) mark targeting geneID, or nil.
func findMark(marks []genome.EpigeneticMark, geneID string) *genome.EpigeneticMark {
	for i := range marks {
		if marks[i].TargetGeneID == geneID {
			return &marks[i]
		}
	}
	return nil
}
