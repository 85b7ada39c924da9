package strategy

import (
	"testing"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
)

func gene(id string, domain genome.Domain, value float64) expression.ExpressedGene {
	return expression.ExpressedGene{GeneID: id, Name: id, Domain: domain, ExpressedValue: value}
}

func fullyCapableExpressed() expression.ExpressedGenome {
	return expression.ExpressedGenome{Genes: []expression.ExpressedGene{
		gene("econ.risk_appetite", genome.DomainRiskAssessment, 0.9),
		gene("econ.uncertainty_tolerance", genome.DomainRiskAssessment, 0.9),
		gene("stress.acute_stress_response", genome.DomainStressResponse, 0.1),
		gene("percog.working_memory", genome.DomainMemory, 0.9),
		gene("percog.metacognition", genome.DomainCognition, 0.9),
		gene("percog.learning_rate", genome.DomainCognition, 0.9),
		gene("social.agent_cooperation", genome.DomainCooperation, 0.9),
		gene("social.trust_default", genome.DomainTrustModel, 0.9),
		gene("stress.dormancy_threshold", genome.DomainDormancy, 0.9),
		gene("percog.environment_sensing", genome.DomainPerception, 0.9),
	}}
}

func allTools() map[string]bool {
	return map[string]bool{
		ToolLLMLocal: true, ToolLLMPremium: true, ToolDEXSwap: true, ToolStaking: true,
		ToolHumanHiring: true, ToolBroadcast: true, ToolMessaging: true, ToolMemoryStore: true,
		ToolInscription: true, ToolWebFetch: true, ToolSocialPost: true, ToolWebScrape: true,
		ToolTokenTransfer: true, ToolLiquidityProvision: true, ToolRewardClaim: true,
		ToolHumanEvaluation: true, ToolMigration: true, ToolMatingProposal: true,
	}
}

func baseContext() Context {
	return Context{
		Expressed:          fullyCapableExpressed(),
		AvailableTools:     allTools(),
		Mode:               envstate.ModeNormal,
		Balance:            1000,
		TotalMetabolicCost: 0.01,
		RunwayDays:         60,
		DaysThriving:       0,
	}
}

func TestRiskToleranceFormula(t *testing.T) {
	expressed := fullyCapableExpressed()
	got := RiskTolerance(expressed)
	want := 0.4*0.9 + 0.3*0.9 + 0.2*(1-0.1) + 0.1*0.9
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("riskTolerance = %v, want %v", got, want)
	}
}

func TestFilterRejectsMissingTool(t *testing.T) {
	ctx := baseContext()
	ctx.AvailableTools = map[string]bool{}
	surviving := Filter(Catalogue(), ctx)
	for _, s := range surviving {
		if len(s.RequiredTools) > 0 {
			t.Fatalf("expected no tool-requiring strategy to survive with no tools available, got %s", s.ID)
		}
	}
}

func TestFilterEmergencyOverrideRestrictsToSurvivalAndLowRiskDefense(t *testing.T) {
	ctx := baseContext()
	ctx.Mode = envstate.ModeEmergency
	surviving := Filter(Catalogue(), ctx)
	for _, s := range surviving {
		if s.Category != CategorySurvival && !(s.Category == CategoryDefense && s.Risk <= 0.3) {
			t.Fatalf("expected only survival or low-risk defense strategies in emergency mode, got %s (%s, risk %v)", s.ID, s.Category, s.Risk)
		}
	}
}

func TestFilterRejectsSocialBelowOrientationFloor(t *testing.T) {
	ctx := baseContext()
	ctx.Expressed = expression.ExpressedGenome{Genes: []expression.ExpressedGene{
		gene("social.agent_cooperation", genome.DomainCooperation, 0),
		gene("social.trust_default", genome.DomainTrustModel, 0),
	}}
	surviving := Filter(Catalogue(), ctx)
	for _, s := range surviving {
		if s.Category == CategorySocial {
			t.Fatalf("expected social strategies rejected at zero social orientation, got %s", s.ID)
		}
	}
}

func TestFilterRejectsLongHorizonUnderRunwayFloor(t *testing.T) {
	ctx := baseContext()
	ctx.RunwayDays = 5
	surviving := Filter(Catalogue(), ctx)
	for _, s := range surviving {
		if s.Horizon == HorizonLong {
			t.Fatalf("expected long-horizon strategies rejected under the 14-day runway floor, got %s", s.ID)
		}
	}
}

func TestFilterResourceCheckRejectsInsufficientRunwayForNonSurvival(t *testing.T) {
	ctx := baseContext()
	ctx.Balance = 0.001
	ctx.TotalMetabolicCost = 10
	surviving := Filter(Catalogue(), ctx)
	for _, s := range surviving {
		if s.Category != CategorySurvival && s.TypicalPayoff <= 0 {
			t.Fatalf("expected non-positive-payoff non-survival strategy rejected under low balance, got %s", s.ID)
		}
	}
}

func TestGenomeMatchPerfectWhenAllRequirementsMet(t *testing.T) {
	ctx := baseContext()
	s := Strategy{GeneRequirements: []GeneRequirement{{"risk_appetite", 0.5}}}
	if m := genomeMatch(s, ctx); m != 1.0 {
		t.Fatalf("expected perfect genome match, got %v", m)
	}
}

func TestGenomeMatchPartialWhenBelowRequirement(t *testing.T) {
	ctx := baseContext()
	ctx.Expressed = expression.ExpressedGenome{Genes: []expression.ExpressedGene{
		gene("econ.risk_appetite", genome.DomainRiskAssessment, 0.25),
	}}
	s := Strategy{GeneRequirements: []GeneRequirement{{"risk_appetite", 0.5}}}
	if m := genomeMatch(s, ctx); m != 0.5 {
		t.Fatalf("expected genome match 0.5 for half-satisfied requirement, got %v", m)
	}
}

func TestEstimatedSuccessClampsToBounds(t *testing.T) {
	s := Strategy{RequiredTools: nil}
	ctx := baseContext()
	ctx.ExperienceBonus = 10
	if v := estimatedSuccess(s, ctx, 1.0); v != estimatedSuccessCeiling {
		t.Fatalf("expected estimatedSuccess clamped to ceiling, got %v", v)
	}
	ctx.ExperienceBonus = -10
	if v := estimatedSuccess(s, ctx, 0.0); v != estimatedSuccessFloor {
		t.Fatalf("expected estimatedSuccess clamped to floor, got %v", v)
	}
}

func TestCandidatesSortedByDescendingPriority(t *testing.T) {
	candidates := Candidates(Catalogue(), baseContext())
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Priority > candidates[i-1].Priority {
			t.Fatalf("expected descending priority order, got %v before %v", candidates[i-1].Priority, candidates[i].Priority)
		}
	}
}

func TestCandidatesSurvivalUrgencyRisesAsRunwayShrinks(t *testing.T) {
	longRunway := baseContext()
	longRunway.RunwayDays = 60
	shortRunway := baseContext()
	shortRunway.RunwayDays = 1

	findSurvival := func(cs []Candidate) *Candidate {
		for _, c := range cs {
			if c.Strategy.ID == "enter-dormancy" {
				return &c
			}
		}
		return nil
	}

	low := findSurvival(Candidates(Catalogue(), longRunway))
	high := findSurvival(Candidates(Catalogue(), shortRunway))
	if low == nil || high == nil {
		t.Fatal("expected enter-dormancy to survive the filter in both contexts")
	}
	if high.Priority <= low.Priority {
		t.Fatalf("expected short-runway urgency to raise priority: short=%v long=%v", high.Priority, low.Priority)
	}
}
