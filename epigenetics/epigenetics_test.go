package epigenetics

import (
	"testing"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

func plasticGene(id string, domain genome.Domain, plasticity float64) genome.Gene {
	return genome.NewGene(id, id, domain, 0.5, 1.0, 0.5, plasticity, 0.5, 0, genome.OriginPrimordial)
}

func TestUpdateCreatesMarkOnFiringTrigger(t *testing.T) {
	gene := plasticGene("meta1", genome.DomainMetabolism, 0.8)
	chrom := genome.NewChromosome("c1", "Test", false, gene)
	g := genome.NewGenome("L", 0, 0, []genome.Chromosome{chrom}, nil)

	Update(g, envstate.State{DaysStarving: 5}, 0)

	mark, ok := g.MarkFor("meta1")
	if !ok {
		t.Fatal("expected a mark to be created by the starvation trigger")
	}
	if mark.Modification != genome.MarkUpregulate {
		t.Fatalf("expected upregulate, got %v", mark.Modification)
	}
	if mark.Strength != 0.6*0.8 {
		t.Fatalf("expected strength trigger.Strength*plasticity = %v, got %v", 0.6*0.8, mark.Strength)
	}
}

func TestUpdateSkipsLowPlasticityGenes(t *testing.T) {
	gene := plasticGene("meta1", genome.DomainMetabolism, 0.1)
	chrom := genome.NewChromosome("c1", "Test", false, gene)
	g := genome.NewGenome("L", 0, 0, []genome.Chromosome{chrom}, nil)

	Update(g, envstate.State{DaysStarving: 5}, 0)

	if _, ok := g.MarkFor("meta1"); ok {
		t.Fatal("expected no mark on a gene below the plasticity floor")
	}
}

func TestRetainedMarksDecayAndDrop(t *testing.T) {
	gene := plasticGene("meta1", genome.DomainMetabolism, 0.8)
	chrom := genome.NewChromosome("c1", "Test", false, gene)
	g := genome.NewGenome("L", 5, 0, []genome.Chromosome{chrom}, nil)
	g.SetMark(genome.EpigeneticMark{TargetGeneID: "meta1", Modification: genome.MarkUpregulate, Strength: 0.15, Decay: 0.5, GenerationCreated: 0})

	// No trigger fires; the existing mark should decay below 0.1 and drop
	// after enough generations at decay=0.5.
	Update(g, envstate.State{}, 5)

	if _, ok := g.MarkFor("meta1"); ok {
		t.Fatal("expected the stale mark to be dropped once its decayed strength fell below the retention floor")
	}
}

func TestInheritMarksRespectsHeritability(t *testing.T) {
	always := []genome.EpigeneticMark{{TargetGeneID: "g1", Strength: 1.0, Heritability: 1.0}}
	never := []genome.EpigeneticMark{{TargetGeneID: "g2", Strength: 1.0, Heritability: 0.0}}

	inherited := InheritMarks(always, never, ports.NewSeededRng(1, 1))
	found1, found2 := false, false
	for _, m := range inherited {
		if m.TargetGeneID == "g1" {
			found1 = true
			if m.Strength != 0.8 {
				t.Fatalf("expected strength attenuated by 20%%, got %v", m.Strength)
			}
		}
		if m.TargetGeneID == "g2" {
			found2 = true
		}
	}
	if !found1 {
		t.Fatal("expected heritability=1.0 mark to always be inherited")
	}
	if found2 {
		t.Fatal("expected heritability=0.0 mark to never be inherited")
	}
}

func TestInheritMarksResolvesCollision(t *testing.T) {
	a := []genome.EpigeneticMark{{TargetGeneID: "g1", Strength: 1.0, Heritability: 1.0, Cause: "a"}}
	b := []genome.EpigeneticMark{{TargetGeneID: "g1", Strength: 1.0, Heritability: 1.0, Cause: "b"}}

	inherited := InheritMarks(a, b, ports.NewSeededRng(2, 2))
	if len(inherited) != 1 {
		t.Fatalf("expected exactly one mark to survive a collision, got %d", len(inherited))
	}
}

func TestUpdateEpigenomeIdempotentInSteadyState(t *testing.T) {
	g := genome.NewGenome("L", 0, 0, []genome.Chromosome{
		genome.NewChromosome("c1", "Metabolism", true,
			plasticGene("m1", genome.DomainMetabolism, 0.8),
			plasticGene("cog1", genome.DomainCognition, 0.8)),
	}, nil)
	env := envstate.State{DaysStarving: 4}

	first := UpdateEpigenome(g, env, 0)
	if len(first.NewMarks) == 0 {
		t.Fatal("starvation must create at least one mark on the first update")
	}

	second := UpdateEpigenome(g, env, 0)
	if len(second.NewMarks) != 0 {
		t.Fatalf("steady-state second update must add no new marks, got %d", len(second.NewMarks))
	}
}

func TestStarvationShiftsExpression(t *testing.T) {
	g := genome.NewGenome("L", 0, 0, []genome.Chromosome{
		genome.NewChromosome("c1", "Metabolism", true,
			plasticGene("m1", genome.DomainMetabolism, 0.9)),
		genome.NewChromosome("c2", "Cognition", true,
			plasticGene("cog1", genome.DomainCognition, 0.9)),
	}, nil)

	calm := envstate.State{Balance: 100, Mode: envstate.ModeNormal}
	starved := envstate.State{Balance: 0.1, DaysStarving: 7, Mode: envstate.ModeEmergency}

	before := expression.Express(g, calm, 40, 0, nil)

	res := UpdateEpigenome(g, starved, 0)
	var sawMetabolismUp, sawCognitionSilence bool
	for _, m := range res.NewMarks {
		if m.TargetGeneID == "m1" && m.Modification == genome.MarkUpregulate {
			sawMetabolismUp = true
		}
		if m.TargetGeneID == "cog1" && m.Modification == genome.MarkSilence {
			sawCognitionSilence = true
		}
	}
	if !sawMetabolismUp || !sawCognitionSilence {
		t.Fatalf("expected metabolism upregulation and cognition silencing, got %+v", res.NewMarks)
	}

	after := expression.Express(g, calm, 40, 0, nil)
	if after.Expressed.ValueFor("m1") <= before.Expressed.ValueFor("m1") {
		t.Fatal("metabolism expression must rise after starvation marks")
	}
	if after.Expressed.ValueFor("cog1") >= before.Expressed.ValueFor("cog1") {
		t.Fatal("cognition expression must fall after starvation marks")
	}
}
