package genepool

import "testing"

func TestGenesisGenomeShape(t *testing.T) {
	g := CreateGenesisGenome("lineage-L")
	if g.TotalGeneCount != 63 {
		t.Fatalf("expected 63 genes, got %d", g.TotalGeneCount)
	}
	if g.Generation != 0 {
		t.Fatalf("expected generation 0, got %d", g.Generation)
	}
	if len(g.Chromosomes) != 8 {
		t.Fatalf("expected 8 chromosomes, got %d", len(g.Chromosomes))
	}
	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("genesis genome violates invariants: %v", err)
	}
}

func TestGenesisHashIsDeterministic(t *testing.T) {
	a := CreateGenesisGenome("L")
	b := CreateGenesisGenome("L")
	if a.GenomeHash != b.GenomeHash {
		t.Fatal("genesis genome hash must be a pure function of the seed pool")
	}
	if a.GenomeHash == "" {
		t.Fatal("genesis genome hash must not be empty")
	}
}

func TestGenesisHashIndependentOfLineageID(t *testing.T) {
	// GenomeHash is defined over gene ids and edge topology only, so two
	// lineages sharing the same seed pool share
	// the same genesis hash even though their LineageID differs.
	a := CreateGenesisGenome("lineage-A")
	b := CreateGenesisGenome("lineage-B")
	if a.GenomeHash != b.GenomeHash {
		t.Fatal("genesis hash should not depend on lineage id")
	}
}

func TestEssentialChromosomesMarked(t *testing.T) {
	essential := map[string]bool{
		"metabolism-survival":  true,
		"perception-cognition": true,
		"stress-response":      true,
		"regulatory-control":   true,
	}
	for _, c := range SeedChromosomes() {
		if essential[c.ID] != c.IsEssential {
			t.Fatalf("chromosome %s essential flag mismatch: got %v want %v", c.ID, c.IsEssential, essential[c.ID])
		}
	}
}

func TestSeedEdgesReferenceExistingGenes(t *testing.T) {
	g := CreateGenesisGenome("L")
	for _, e := range g.Edges {
		if _, ok := g.FindGene(e.SourceGeneID); !ok {
			t.Fatalf("seed edge source %s not found", e.SourceGeneID)
		}
		if _, ok := g.FindGene(e.TargetGeneID); !ok {
			t.Fatalf("seed edge target %s not found", e.TargetGeneID)
		}
	}
}
