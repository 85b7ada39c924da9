package operators

import (
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

type edgeKey struct {
	source, target string
}

// recombineEdges implements the regulatory-recombination stage: start from the union of
// parental edge sets (duplicates — same source/target pair on both parents —
// resolved by a coin flip), drop any merged edge whose source or target gene
// is not in geneIDs, then apply at most one add, one delete, and one modify,
// each gated by its own rate.
func recombineEdges(parentA, parentB []genome.RegulatoryEdge, geneIDs []string, rng ports.Rng) []genome.RegulatoryEdge {
	merged := make(map[edgeKey]genome.RegulatoryEdge)
	order := make([]edgeKey, 0, len(parentA)+len(parentB))

	for _, e := range parentA {
		k := edgeKey{e.SourceGeneID, e.TargetGeneID}
		merged[k] = e
		order = append(order, k)
	}
	for _, e := range parentB {
		k := edgeKey{e.SourceGeneID, e.TargetGeneID}
		if _, exists := merged[k]; exists {
			if rng.NextFloat64() < 0.5 {
				merged[k] = e
			}
			continue
		}
		merged[k] = e
		order = append(order, k)
	}

	present := make(map[string]bool, len(geneIDs))
	for _, id := range geneIDs {
		present[id] = true
	}
	edges := make([]genome.RegulatoryEdge, 0, len(order))
	for _, k := range order {
		if !present[k.source] || !present[k.target] {
			continue
		}
		edges = append(edges, merged[k])
	}

	if len(geneIDs) >= 2 && rng.NextFloat64() < RegulatoryAddRate {
		src := geneIDs[rng.NextIntn(len(geneIDs))]
		tgt := geneIDs[rng.NextIntn(len(geneIDs))]
		relationship := genome.RelationshipActivation
		if rng.NextFloat64() < 0.5 {
			relationship = genome.RelationshipInhibition
		}
		edges = append(edges, genome.RegulatoryEdge{
			SourceGeneID: src,
			TargetGeneID: tgt,
			Relationship: relationship,
			Strength:     rng.NextFloat64(),
			Logic:        genome.LogicAdditive,
		})
	}

	if len(edges) > 0 && rng.NextFloat64() < RegulatoryDeleteRate {
		idx := rng.NextIntn(len(edges))
		edges = append(edges[:idx], edges[idx+1:]...)
	}

	if len(edges) > 0 && rng.NextFloat64() < RegulatoryModifyRate {
		idx := rng.NextIntn(len(edges))
		edges[idx].Strength = clamp01(edges[idx].Strength + rng.NextGaussian()*0.1)
	}

	return edges
}
