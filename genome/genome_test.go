package genome

import "testing"

func sampleGenome() *DynamicGenome {
	a := NewGene("gA", "Regulator", DomainMetabolism, 1.0, 1.0, 0.5, 0.5, 0.9, 0.002, OriginPrimordial)
	b := NewGene("gB", "Target", DomainMetabolism, 0.5, 1.0, 0.5, 0.5, 0.1, 0.001, OriginPrimordial)
	chr := NewChromosome("c1", "Metabolism", true, a, b)
	edge := RegulatoryEdge{SourceGeneID: "gA", TargetGeneID: "gB", Relationship: RelationshipActivation, Strength: 1.0}
	return NewGenome("lineage-1", 0, 0, []Chromosome{chr}, []RegulatoryEdge{edge})
}

func TestClampRanges(t *testing.T) {
	g := NewGene("x", "X", DomainMetabolism, 5, 10, 2, -1, 2, 1, OriginPrimordial)
	if g.Value != 1 || g.Weight != 3.0 || g.Dominance != 1 || g.Plasticity != 0 || g.Essentiality != 1 || g.MetabolicCost != 0.01 {
		t.Fatalf("clamp failed: %+v", g)
	}
}

func TestInvariantsHold(t *testing.T) {
	g := sampleGenome()
	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("unexpected invariant failure: %v", err)
	}
}

func TestInvariantDanglingEdge(t *testing.T) {
	g := sampleGenome()
	g.Edges = append(g.Edges, RegulatoryEdge{SourceGeneID: "gA", TargetGeneID: "ghost"})
	if err := g.CheckInvariants(); err == nil {
		t.Fatal("expected invariant violation for dangling edge")
	}
}

func TestRemoveGeneRefusesToEmptyEssentialChromosome(t *testing.T) {
	g := sampleGenome()
	if err := g.RemoveGene("gA"); err != nil {
		t.Fatalf("first removal should succeed: %v", err)
	}
	if err := g.RemoveGene("gB"); err == nil {
		t.Fatal("expected refusal to empty essential chromosome")
	}
}

func TestHashInsensitiveToNumericDrift(t *testing.T) {
	g1 := sampleGenome()
	g2 := sampleGenome()
	// perturb every gene value below the 6-decimal rounding
	for i := range g2.Chromosomes[0].Genes {
		g2.Chromosomes[0].Genes[i].Value += 1e-9
	}
	if ComputeHash(g1) != ComputeHash(g2) {
		t.Fatal("hash should be insensitive to numeric drift")
	}
}

func TestHashSensitiveToGeneOrder(t *testing.T) {
	g1 := sampleGenome()
	g2 := sampleGenome()
	g2.Chromosomes[0].Genes[0], g2.Chromosomes[0].Genes[1] = g2.Chromosomes[0].Genes[1], g2.Chromosomes[0].Genes[0]
	if ComputeHash(g1) == ComputeHash(g2) {
		t.Fatal("hash should be sensitive to gene order within a chromosome")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	g := sampleGenome()
	rec, err := Serialize(g)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	back, err := Deserialize(rec)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if !Equal(g, back) {
		t.Fatal("round trip did not preserve structural equality")
	}
}

func TestDeserializeRejectsWrongVersion(t *testing.T) {
	g := sampleGenome()
	rec, _ := Serialize(g)
	rec.Version = 1
	if _, err := Deserialize(rec); err == nil {
		t.Fatal("expected IncompatibleGenome error")
	}
}

func TestEqualIgnoresEdgeOrder(t *testing.T) {
	g := sampleGenome()
	g.Edges = append(g.Edges, RegulatoryEdge{SourceGeneID: "gB", TargetGeneID: "gA", Relationship: RelationshipInhibition, Strength: 0.2})
	h := g.Clone()
	h.Edges[0], h.Edges[1] = h.Edges[1], h.Edges[0]
	if !Equal(g, h) {
		t.Fatal("Equal should ignore edge order")
	}
}
