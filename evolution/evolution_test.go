package evolution

import (
	"errors"
	"testing"
	"time"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genepool"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/operators"
	"github.com/axobase/egde/ports"
)

func newTestCoordinator() *Coordinator {
	clock := ports.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewCoordinator(ports.NewSeededRng(11, 13), clock)
}

func express(g *genome.DynamicGenome) *expression.Result {
	env := envstate.State{Balance: 20, Mode: envstate.ModeNormal}
	res := expression.Express(g, env, 40, 0, nil)
	return &res
}

// diverged drops half of every multi-gene chromosome so two genomes clear
// the inbreeding Jaccard gate.
func diverged(lineageID string) *genome.DynamicGenome {
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

func TestFitnessIsBounded(t *testing.T) {
	g := genepool.CreateGenesisGenome("L")
	f := Fitness(g, express(g))
	if f <= 0 || f > 1 {
		t.Fatalf("fitness out of (0,1]: %v", f)
	}
}

func TestCooperationLedgerIsPairSymmetric(t *testing.T) {
	c := newTestCoordinator()
	c.RecordInteraction("a", "b", 2.5, 3)
	c.RecordInteraction("b", "a", 1.5, 1)

	rec := c.CooperationBetween("a", "b")
	if rec.Hours != 4.0 || rec.Interactions != 4 {
		t.Fatalf("expected accumulated {4.0h, 4}, got %+v", rec)
	}
}

func TestMatingSignalInflatesWithDishonesty(t *testing.T) {
	c := newTestCoordinator()
	g := genepool.CreateGenesisGenome("L")
	res := express(g)

	signal := c.GenerateMatingSignal("agent-a", g, res)
	trueFitness := Fitness(g, res)
	if signal.AdvertisedFitness < trueFitness {
		t.Fatalf("advertised fitness %v must never undercut true fitness %v", signal.AdvertisedFitness, trueFitness)
	}
	if signal.AdvertisedFitness > trueFitness*(1+maxSignalInflation)+1e-9 {
		t.Fatalf("advertised fitness %v exceeds the inflation bound over %v", signal.AdvertisedFitness, trueFitness)
	}
}

func TestEvaluatePartnerScoresCloneZeroCompatibility(t *testing.T) {
	c := newTestCoordinator()
	g := genepool.CreateGenesisGenome("L")
	res := express(g)

	signal := c.GenerateMatingSignal("other", g, res)
	ev := c.EvaluatePartner("me", g, res, signal)
	if ev.GeneticCompatibility != 0 {
		t.Fatalf("identical genome hash must score zero compatibility, got %v", ev.GeneticCompatibility)
	}
}

func TestEvaluatePartnerRejectsKin(t *testing.T) {
	c := newTestCoordinator()
	c.lineage.RecordBirth("me", "mom", "dad")
	c.lineage.RecordBirth("sibling", "mom", "dad")

	g := genepool.CreateGenesisGenome("L")
	other := diverged("M")
	res := express(g)

	signal := c.GenerateMatingSignal("sibling", other, express(other))
	ev := c.EvaluatePartner("me", g, res, signal)
	if ev.Kinship == 0 {
		t.Fatal("siblings must register nonzero kinship")
	}
	if ev.Decision != DecisionReject {
		t.Fatalf("expected kin rejection, got %v (%s)", ev.Decision, ev.Reason)
	}
	if ev.RiskAssessment != RiskHigh {
		t.Fatalf("kin mating must be flagged high risk, got %v", ev.RiskAssessment)
	}
}

func TestExecuteBreedingRejectsIdenticalParents(t *testing.T) {
	c := newTestCoordinator()
	a := genepool.CreateGenesisGenome("A")
	b := a.Clone()

	_, err := c.ExecuteBreeding("agent-a", a, "agent-b", b, 0.2, false)
	if err == nil {
		t.Fatal("expected an inbreeding rejection for identical parents")
	}
	var inbreeding *operators.ErrInbreeding
	if !errors.As(err, &inbreeding) {
		t.Fatalf("expected *operators.ErrInbreeding in chain, got %v", err)
	}
}

func TestExecuteBreedingRecordsLineage(t *testing.T) {
	c := newTestCoordinator()
	a := genepool.CreateGenesisGenome("A")
	b := diverged("B")

	result, err := c.ExecuteBreeding("agent-a", a, "agent-b", b, 0.2, false)
	if err != nil {
		t.Fatal(err)
	}
	if result.Child.Generation != 1 {
		t.Fatalf("expected child generation 1, got %d", result.Child.Generation)
	}
	if !c.lineage.WithinGenerations(result.Child.LineageID, "agent-a", 1) {
		t.Fatal("child must be within one generation of parent A")
	}

	// Breeding a parent with its own child must now trip the lineage half
	// of the inbreeding check even if gene overlap were low.
	if !c.lineage.WithinGenerations(result.Child.LineageID, "agent-b", 3) {
		t.Fatal("child and parent B must share an ancestor within the lineage window")
	}
}

func TestRespondToProposalCountersWhenMarginal(t *testing.T) {
	c := newTestCoordinator()
	my := genepool.CreateGenesisGenome("ME")
	myRes := express(my)
	other := diverged("OTHER")

	proposal := c.ProposeMating("other", "me", other, express(other))
	// Force a marginal offer: strip the investment so the receiver's own
	// offspring_investment trait drives a counter when it negotiates.
	proposal.OfferedInvestment = 0

	resp := c.RespondToProposal("me", my, myRes, proposal)
	switch resp.Outcome {
	case ProposalCountered:
		if resp.CounterInvestment <= 0 {
			t.Fatal("a counter-offer must demand nonzero investment")
		}
	case ProposalAccepted, ProposalRejected:
		// Acceptable outcomes depending on attractiveness; nothing to assert.
	default:
		t.Fatalf("unexpected outcome %v", resp.Outcome)
	}

	if resp.Outcome == ProposalCountered {
		next := AcceptCounter(proposal, resp)
		if next.Round != proposal.Round+1 {
			t.Fatal("counter acceptance must advance the negotiation round")
		}
		if next.OfferedInvestment != resp.CounterInvestment {
			t.Fatal("counter acceptance must carry the countered investment")
		}
	}
}
