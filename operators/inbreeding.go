package operators

import "github.com/axobase/egde/genome"

// LineageCache reports whether two agent ids share an ancestor within
// maxGenerations, maintained by the evolution coordinator's breeding
// history. A nil cache skips this half of the inbreeding check, relying on
// the Jaccard gate alone.
type LineageCache interface {
	WithinGenerations(agentAID, agentBID string, maxGenerations int) bool
}

// lineageAncestorWindow is the "three generations of a shared ancestor"
// window the inbreeding check walks.
const lineageAncestorWindow = 3

// CheckInbreeding rejects a breed when the parents' gene-id sets are too
// similar (Jaccard similarity over gene ids, the kinship surrogate used in
// the absence of a full lineage graph) or when lineage places them within
// lineageAncestorWindow generations of a shared ancestor.
func CheckInbreeding(ctx BreedingContext, lineage LineageCache) error {
	similarity := jaccardGeneIDSimilarity(ctx.ParentA, ctx.ParentB)
	if similarity > InbreedingJaccardThreshold {
		return &ErrInbreeding{JaccardSimilarity: similarity}
	}
	if lineage != nil && lineage.WithinGenerations(ctx.ParentAID, ctx.ParentBID, lineageAncestorWindow) {
		return &ErrInbreeding{JaccardSimilarity: similarity}
	}
	return nil
}

func jaccardGeneIDSimilarity(a, b *genome.DynamicGenome) float64 {
	setA := make(map[string]bool)
	for _, g := range a.AllGenes() {
		setA[g.ID] = true
	}
	setB := make(map[string]bool)
	for _, g := range b.AllGenes() {
		setB[g.ID] = true
	}

	intersection := 0
	for id := range setA {
		if setB[id] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
