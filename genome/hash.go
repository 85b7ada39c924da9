package genome

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ComputeHash returns the 256-bit structural fingerprint
// (iv) defines: H(concat(chromosome gene-id lists) || concat(edge
// sourceId->targetId strings)). It is deliberately insensitive to everything
// except gene-id sequence and edge topology, so reordering edges or
// perturbing numeric fields without changing structure yields the same hash.
func ComputeHash(g *DynamicGenome) string {
	var sb strings.Builder
	for _, c := range g.Chromosomes {
		for _, id := range c.GeneIDs() {
			sb.WriteString(id)
			sb.WriteByte('\x1f') // unit separator, never a legal gene id char
		}
		sb.WriteByte('\x1e') // record separator between chromosomes
	}

	edgeStrs := make([]string, len(g.Edges))
	for i, e := range g.Edges {
		edgeStrs[i] = e.SourceGeneID + "->" + e.TargetGeneID
	}
	sort.Strings(edgeStrs)
	for _, s := range edgeStrs {
		sb.WriteString(s)
		sb.WriteByte('\x1f')
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// RecomputeHash recomputes and stores GenomeHash on g.
func (g *DynamicGenome) RecomputeHash() {
	g.GenomeHash = ComputeHash(g)
}

// HashUpToDate reports whether g.GenomeHash matches ComputeHash(g).
func (g *DynamicGenome) HashUpToDate() bool {
	return g.GenomeHash == ComputeHash(g)
}
