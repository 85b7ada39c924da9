package operators

import (
	"testing"

	"github.com/axobase/egde/genepool"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

func breedingCtx(a, b *genome.DynamicGenome) BreedingContext {
	return BreedingContext{
		ParentA:        a,
		ParentB:        b,
		ParentAID:      "agent-a",
		ParentBID:      "agent-b",
		BirthTimestamp: 1000,
	}
}

// divergedGenesis builds a genesis genome that has drifted far enough from
// the seed pool to clear the inbreeding gate: half of every multi-gene
// chromosome is dropped, leaving a gene-id Jaccard overlap of about 0.5
// against an unmodified genesis genome.
func divergedGenesis(lineageID string) *genome.DynamicGenome {
	g := genepool.CreateGenesisGenome(lineageID)
	for i := range g.Chromosomes {
		if len(g.Chromosomes[i].Genes) > 1 {
			g.Chromosomes[i].Genes = g.Chromosomes[i].Genes[:len(g.Chromosomes[i].Genes)/2]
		}
	}
	g.RecomputeTotalGeneCount()
	g.RecomputeHash()
	return g
}

func TestBreedProducesValidChild(t *testing.T) {
	a := genepool.CreateGenesisGenome("lineage-a")
	b := divergedGenesis("lineage-b")
	rng := ports.NewSeededRng(1, 2)

	result, err := Breed(breedingCtx(a, b), nil, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := result.Child.CheckInvariants(); err != nil {
		t.Fatalf("child genome violates invariants: %v", err)
	}
	wantGen := a.Generation
	if b.Generation > wantGen {
		wantGen = b.Generation
	}
	wantGen++
	if result.Child.Generation != wantGen {
		t.Fatalf("expected generation %d, got %d", wantGen, result.Child.Generation)
	}
}

func TestBreedIsDeterministicGivenSeed(t *testing.T) {
	a := genepool.CreateGenesisGenome("lineage-a")
	b := divergedGenesis("lineage-b")

	r1, err := Breed(breedingCtx(a, b), nil, ports.NewSeededRng(42, 7))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Breed(breedingCtx(a, b), nil, ports.NewSeededRng(42, 7))
	if err != nil {
		t.Fatal(err)
	}
	if r1.Child.GenomeHash != r2.Child.GenomeHash {
		t.Fatal("identical seeds over identical parents must produce identical children")
	}
	if len(r1.Mutations) != len(r2.Mutations) {
		t.Fatal("identical seeds must produce identical mutation records")
	}
}

func TestInbreedingRejectsIdenticalParents(t *testing.T) {
	a := genepool.CreateGenesisGenome("lineage-a")
	b := a.Clone()
	rng := ports.NewSeededRng(1, 1)

	_, err := Breed(breedingCtx(a, b), nil, rng)
	if err == nil {
		t.Fatal("expected an inbreeding error for two structurally identical parents")
	}
	if _, ok := err.(*ErrInbreeding); !ok {
		t.Fatalf("expected *ErrInbreeding, got %T", err)
	}
}

func TestInbreedingCheckAllowsDissimilarParents(t *testing.T) {
	a := genepool.CreateGenesisGenome("lineage-a")
	b := genepool.CreateGenesisGenome("lineage-b")
	// Jaccard similarity of two identical seed pools is 1.0; simulate
	// divergence by dropping half of b's genes.
	for i := range b.Chromosomes {
		if len(b.Chromosomes[i].Genes) > 1 {
			b.Chromosomes[i].Genes = b.Chromosomes[i].Genes[:len(b.Chromosomes[i].Genes)/2]
		}
	}
	b.RecomputeTotalGeneCount()

	if err := CheckInbreeding(breedingCtx(a, b), nil); err != nil {
		t.Fatalf("expected no inbreeding error once gene-id overlap drops, got %v", err)
	}
}

func TestDeletionNeverEmptiesEssentialChromosome(t *testing.T) {
	a := genepool.CreateGenesisGenome("lineage-a")
	chromosomes := make([]genome.Chromosome, len(a.Chromosomes))
	copy(chromosomes, a.Chromosomes)
	rng := ports.NewSeededRng(9, 9)

	// Run deletion many times over fresh copies; essential chromosomes must
	// never end up empty.
	for i := 0; i < 20; i++ {
		working := make([]genome.Chromosome, len(chromosomes))
		for ci, c := range chromosomes {
			genes := make([]genome.Gene, len(c.Genes))
			copy(genes, c.Genes)
			working[ci] = genome.Chromosome{ID: c.ID, Name: c.Name, IsEssential: c.IsEssential, Genes: genes}
		}
		deleteGenes(working, BreedingContext{StarvationMode: true}, rng)
		for _, c := range working {
			if c.IsEssential && len(c.Genes) == 0 {
				t.Fatalf("essential chromosome %q was emptied by deletion", c.ID)
			}
		}
	}
}

func TestHorizontalTransferRequiresSustainedCooperation(t *testing.T) {
	recipient := genepool.CreateGenesisGenome("recipient")
	donor := genepool.CreateGenesisGenome("donor")
	rng := ports.NewSeededRng(3, 3)

	id, err := HorizontalTransfer(recipient, donor, "donor-agent", CooperationRecord{Hours: 1, Interactions: 1}, rng)
	if err != nil {
		t.Fatal(err)
	}
	if id != "" {
		t.Fatal("expected no transfer below the cooperation thresholds")
	}
}

func TestHorizontalTransferClonesHighWeightGene(t *testing.T) {
	recipient := genepool.CreateGenesisGenome("recipient")
	donor := genepool.CreateGenesisGenome("donor")

	// A seeded rng that is guaranteed to clear the HGTRate gate: try several
	// seeds and require at least one transfer to fire, since HGTRate is
	// probabilistic.
	var transferred string
	for seed := uint64(0); seed < 200 && transferred == ""; seed++ {
		rng := ports.NewSeededRng(seed, seed+1)
		id, err := HorizontalTransfer(recipient, donor, "donor-agent", CooperationRecord{Hours: 100, Interactions: 50}, rng)
		if err != nil {
			t.Fatal(err)
		}
		transferred = id
	}
	if transferred == "" {
		t.Fatal("expected at least one transfer to fire across many seeds at hgtRate=0.05")
	}
	gene, ok := recipient.FindGene(transferred)
	if !ok {
		t.Fatal("transferred gene not found in recipient")
	}
	if gene.Origin != genome.OriginHorizontalTransfer {
		t.Fatalf("expected origin horizontal-transfer, got %v", gene.Origin)
	}
	if gene.AcquiredFrom != "donor-agent" {
		t.Fatalf("expected acquiredFrom donor-agent, got %v", gene.AcquiredFrom)
	}
}
