package decision

import (
	"context"
	"testing"
	"time"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
	"github.com/axobase/egde/strategy"
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
		gene("percog.pattern_recognition", genome.DomainCognition, 0.9),
		gene("social.agent_cooperation", genome.DomainCooperation, 0.9),
		gene("social.trust_default", genome.DomainTrustModel, 0.9),
		gene("stress.dormancy_threshold", genome.DomainDormancy, 0.9),
		gene("percog.environment_sensing", genome.DomainPerception, 0.9),
	}}
}

func allTools() map[string]bool {
	return map[string]bool{
		strategy.ToolLLMLocal: true, strategy.ToolLLMPremium: true, strategy.ToolDEXSwap: true,
		strategy.ToolStaking: true, strategy.ToolHumanHiring: true, strategy.ToolBroadcast: true,
		strategy.ToolMessaging: true, strategy.ToolMemoryStore: true, strategy.ToolInscription: true,
		strategy.ToolWebFetch: true, strategy.ToolSocialPost: true, strategy.ToolWebScrape: true,
		strategy.ToolTokenTransfer: true, strategy.ToolLiquidityProvision: true, strategy.ToolRewardClaim: true,
		strategy.ToolHumanEvaluation: true, strategy.ToolMigration: true, strategy.ToolMatingProposal: true,
	}
}

func basePerception() Perception {
	return Perception{
		AgentID:        "agent-1",
		Expressed:      fullyCapableExpressed(),
		Env:            envstate.State{Balance: 1000, Mode: envstate.ModeNormal},
		AvailableTools: allTools(),
		RunwayDays:     60,
	}
}

func wellFormedReply(strategyID string) string {
	return "STRATEGY_ID: " + strategyID + "\n" +
		"ACTION: think about it\n" +
		"CONFIDENCE: 0.8\n" +
		"REASONING: Balance is healthy and this strategy fits.\n" +
		"RISK_ASSESSMENT: low\n"
}

func TestDecideUsesLLMSelection(t *testing.T) {
	llm := &ports.MockLLM{Response: wellFormedReply("think-local-opportunity")}
	clock := ports.NewFakeClock(time.Unix(0, 0))
	e := NewEngine(llm, clock)

	d, err := e.Decide(context.Background(), "agent-1", basePerception(), strategy.Catalogue())
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if d.SelectedStrategy != "think-local-opportunity" {
		t.Errorf("SelectedStrategy = %q, want think-local-opportunity", d.SelectedStrategy)
	}
	if d.SelectedAction != ActionThinkLocal {
		t.Errorf("SelectedAction = %q, want %q", d.SelectedAction, ActionThinkLocal)
	}
	if d.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8", d.Confidence)
	}
	if d.RiskAssessment != RiskLow {
		t.Errorf("RiskAssessment = %q, want low", d.RiskAssessment)
	}
}

func TestDecideFallsBackOnLLMError(t *testing.T) {
	llm := &ports.MockLLM{Err: ports.NewPortFailure("llm", context.DeadlineExceeded)}
	clock := ports.NewFakeClock(time.Unix(0, 0))
	e := NewEngine(llm, clock)

	d, err := e.Decide(context.Background(), "agent-1", basePerception(), strategy.Catalogue())
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if d.Confidence != 0.4 {
		t.Errorf("Confidence = %v, want 0.4 on fallback", d.Confidence)
	}
	if d.SelectedAction != ActionFor(d.SelectedStrategy) {
		t.Errorf("SelectedAction %q does not match ActionFor(%q)", d.SelectedAction, d.SelectedStrategy)
	}
}

func TestDecideFallsBackOnUnparseableResponse(t *testing.T) {
	llm := &ports.MockLLM{Response: "I am not sure what to do here, sorry."}
	clock := ports.NewFakeClock(time.Unix(0, 0))
	e := NewEngine(llm, clock)

	d, err := e.Decide(context.Background(), "agent-1", basePerception(), strategy.Catalogue())
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if d.Confidence != 0.4 {
		t.Errorf("Confidence = %v, want 0.4 on unparseable fallback", d.Confidence)
	}
}

func TestDecideEmergencyFallbackOnEmptyCandidates(t *testing.T) {
	llm := &ports.MockLLM{Response: wellFormedReply("think-local-opportunity")}
	clock := ports.NewFakeClock(time.Unix(0, 0))
	e := NewEngine(llm, clock)

	starving := basePerception()
	starving.Expressed = expression.ExpressedGenome{}
	starving.AvailableTools = map[string]bool{}
	starving.RunwayDays = 0

	d, err := e.Decide(context.Background(), "agent-1", starving, strategy.Catalogue())
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if d.SelectedStrategy != "emergency-survival" {
		t.Errorf("SelectedStrategy = %q, want emergency-survival", d.SelectedStrategy)
	}
	if d.SelectedAction != ActionEnterDormancy {
		t.Errorf("SelectedAction = %q, want %q", d.SelectedAction, ActionEnterDormancy)
	}
}

func TestDecideRateLimitsRepeatedCalls(t *testing.T) {
	llm := &ports.MockLLM{Response: wellFormedReply("think-local-opportunity")}
	clock := ports.NewFakeClock(time.Unix(0, 0))
	e := NewEngine(llm, clock)

	if _, err := e.Decide(context.Background(), "agent-1", basePerception(), strategy.Catalogue()); err != nil {
		t.Fatalf("first Decide returned error: %v", err)
	}

	_, err := e.Decide(context.Background(), "agent-1", basePerception(), strategy.Catalogue())
	if err == nil {
		t.Fatal("expected ports.ErrRateLimited on immediate repeat call, got nil")
	}

	clock.Advance(DefaultMinDecisionInterval)
	if _, err := e.Decide(context.Background(), "agent-1", basePerception(), strategy.Catalogue()); err != nil {
		t.Fatalf("Decide after advancing clock returned error: %v", err)
	}
}

func TestDecideUnknownStrategyFromLLMFallsBackToTopCandidate(t *testing.T) {
	llm := &ports.MockLLM{Response: wellFormedReply("not-a-real-strategy-id")}
	clock := ports.NewFakeClock(time.Unix(0, 0))
	e := NewEngine(llm, clock)

	d, err := e.Decide(context.Background(), "agent-1", basePerception(), strategy.Catalogue())
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	candidates := strategy.Candidates(strategy.Catalogue(), strategyContext(basePerception()))
	if len(candidates) == 0 {
		t.Fatal("expected at least one surviving candidate")
	}
	if d.SelectedStrategy != candidates[0].Strategy.ID {
		t.Errorf("SelectedStrategy = %q, want top candidate %q", d.SelectedStrategy, candidates[0].Strategy.ID)
	}
}
