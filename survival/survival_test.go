package survival

import (
	"context"
	"testing"
	"time"

	"github.com/axobase/egde/decision"
	"github.com/axobase/egde/exprcache"
	"github.com/axobase/egde/genepool"
	"github.com/axobase/egde/ports"
	"github.com/axobase/egde/strategy"
)

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

func wellFormedReply(strategyID string) string {
	return "STRATEGY_ID: " + strategyID + "\n" +
		"ACTION: act\n" +
		"CONFIDENCE: 0.8\n" +
		"REASONING: Plenty of runway, worth pursuing.\n" +
		"RISK_ASSESSMENT: low\n"
}

func newTestAgent(t *testing.T, llm ports.LLM, wallet *ports.MockWallet) (*Agent, *ports.MockMessaging, *ports.MockPermanentStorage, *ports.MockLedger, *ports.FakeClock) {
	t.Helper()
	g := genepool.CreateGenesisGenome("lineage-test")
	clock := ports.NewFakeClock(time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC))
	messaging := ports.NewMockMessaging()
	storage := &ports.MockPermanentStorage{}
	ledger := &ports.MockLedger{}

	cache := exprcache.New(exprcache.DefaultMaxSize, exprcache.DefaultCleanupInterval)
	t.Cleanup(cache.Close)

	a := NewAgent("agent-1", g, clock, wallet, llm, storage, messaging, ledger, cache)
	a.Catalogue = strategy.Catalogue()
	a.AvailableTools = allTools()
	return a, messaging, storage, ledger, clock
}

func TestTickAdvancesCycleAndDerivesMode(t *testing.T) {
	wallet := ports.NewMockWallet()
	wallet.Fund("agent-1", ports.Balances{Native: 1, Stable: 1000})
	llm := &ports.MockLLM{Response: wellFormedReply("think-local-opportunity")}

	a, _, _, _, _ := newTestAgent(t, llm, wallet)

	result, err := a.Tick(context.Background())
	if err != nil {
		t.Fatalf("Tick returned error: %v", err)
	}
	if result.Cycle != 1 {
		t.Errorf("Cycle = %d, want 1", result.Cycle)
	}
	if result.Mode != "normal" {
		t.Errorf("Mode = %q, want normal", result.Mode)
	}
	if result.Decision.SelectedAction == "" {
		t.Error("expected a non-empty selected action")
	}
}

func TestTickTransitionsToHibernationMode(t *testing.T) {
	wallet := ports.NewMockWallet()
	wallet.Fund("agent-1", ports.Balances{Native: 1, Stable: 0})
	llm := &ports.MockLLM{Response: wellFormedReply("enter-dormancy")}

	a, _, _, _, _ := newTestAgent(t, llm, wallet)

	result, err := a.Tick(context.Background())
	if err != nil {
		t.Fatalf("Tick returned error: %v", err)
	}
	if result.Mode != "hibernation" {
		t.Errorf("Mode = %q, want hibernation", result.Mode)
	}
	if result.Died {
		t.Error("should not die on the first hibernation cycle")
	}
}

func TestAgentDiesAfterSecondConsecutiveHibernationCycle(t *testing.T) {
	wallet := ports.NewMockWallet()
	wallet.Fund("agent-1", ports.Balances{Native: 1, Stable: 0})
	llm := &ports.MockLLM{Response: wellFormedReply("enter-dormancy")}

	a, _, storage, ledger, clock := newTestAgent(t, llm, wallet)

	if _, err := a.Tick(context.Background()); err != nil {
		t.Fatalf("first Tick returned error: %v", err)
	}
	clock.Advance(a.cycleInterval())

	result, err := a.Tick(context.Background())
	if err != nil {
		t.Fatalf("second Tick returned error: %v", err)
	}
	if !result.Died {
		t.Fatal("expected agent to die after a second consecutive hibernation cycle")
	}
	if a.Snapshot().Status != StatusDead {
		t.Errorf("Status = %q, want dead", a.Snapshot().Status)
	}
	if len(storage.Records()) == 0 {
		t.Error("expected a final inscription to be recorded on death")
	}
	_ = ledger

	if _, err := a.Tick(context.Background()); err != ErrAgentDead {
		t.Errorf("Tick on a dead agent: got err %v, want ErrAgentDead", err)
	}
}

func TestDispatchBroadcastGoesThroughMessaging(t *testing.T) {
	wallet := ports.NewMockWallet()
	wallet.Fund("agent-1", ports.Balances{Native: 1, Stable: 1000})
	llm := &ports.MockLLM{Response: wellFormedReply("broadcast-presence")}

	a, messaging, _, _, _ := newTestAgent(t, llm, wallet)

	if _, err := a.Tick(context.Background()); err != nil {
		t.Fatalf("Tick returned error: %v", err)
	}
	if len(messaging.Broadcasts) != 1 {
		t.Errorf("Broadcasts = %d, want 1", len(messaging.Broadcasts))
	}
}

func TestRunStopsCooperatively(t *testing.T) {
	wallet := ports.NewMockWallet()
	wallet.Fund("agent-1", ports.Balances{Native: 1, Stable: 1000})
	llm := &ports.MockLLM{Response: wellFormedReply("think-local-opportunity")}

	a, _, _, _, _ := newTestAgent(t, llm, wallet)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	// Give the goroutine a moment to reach its first select, then stop it.
	time.Sleep(10 * time.Millisecond)
	a.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

var _ decision.Decision // keep decision import referenced for godoc link clarity in tests above
