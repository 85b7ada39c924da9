// Package survival implements the per-agent cooperative tick loop: perceive
// through the wallet, express the genome via the cache, update the
// epigenome, decide, dispatch the chosen action through the appropriate
// port, and track environment counters.
package survival

import (
	"context"
	"sync"
	"time"

	"github.com/axobase/egde/decision"
	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/exprcache"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
	"github.com/axobase/egde/strategy"
)

// Status is an agent's lifecycle state.
type Status string

const (
	StatusAlive Status = "alive"
	StatusDead  Status = "dead"
)

// Contractual balance thresholds (stable units).
const (
	HibernationThreshold = 0.5
	EmergencyThreshold   = 2.0
	LowPowerThreshold    = 5.0
	GasEmergencyFloor    = 1e-3 // native-token floor that forces emergency regardless of stable balance
)

// runwayStarvingFloorDays and runwayThrivingCeilDays bound the
// starving/thriving running counters.
const (
	runwayStarvingFloorDays = 3.0
	runwayThrivingCeilDays  = 14.0
	deceptionDecayPerCycle  = 0.1
)

// hibernationDeathStreak is how "remains below the hibernation threshold for a
// full cycle" is read: the agent must still be in hibernation on the tick
// immediately following the one that first entered it.
const hibernationDeathStreak = 2

// ActionExecutor dispatches an action through "the action
// executor" — everything outside the five named ports (swaps, staking,
// hiring human labor, transfers, migration, liquidity, reward claims, human
// evaluation, web fetch/scrape/post). The core never implements these
// itself; it only records their outcome.
type ActionExecutor interface {
	Execute(ctx context.Context, agentID string, action decision.ActionType, d decision.Decision) (outcome string, err error)
}

// MatingHandler routes a propose-mating/accept-mating decision to the
// evolution coordinator. The core treats it as an opaque collaborator.
type MatingHandler func(ctx context.Context, agentID string, d decision.Decision) error

// DeathHandler is notified once an agent transitions to StatusDead; its
// behavior is outside the core.
type DeathHandler func(ctx context.Context, agentID string, cause string)

// Agent is one running survival loop. All mutation of Genome, Env, and the
// logs happens only between suspension points (port calls), per the per-agent
// ordering guarantee, so the mutex only needs to guard against
// concurrent external reads (e.g. an insights endpoint) rather than
// concurrent ticks.
type Agent struct {
	ID        string
	Catalogue []strategy.Strategy

	AvailableTools  map[string]bool
	MarketRisk      float64
	ExperienceBonus float64

	Wallet    ports.Wallet
	Storage   ports.PermanentStorage
	Messaging ports.Messaging
	Ledger    ports.Ledger
	Clock     ports.Clock

	Cache    *exprcache.Cache
	Decision *decision.Engine

	Executor ActionExecutor
	OnMating MatingHandler
	OnDeath  DeathHandler
	Peers    []string

	mu                sync.Mutex
	Genome            *genome.DynamicGenome
	Env               envstate.State
	Status            Status
	Cycle             int
	hibernationStreak int
	thoughtLog        []string
	transactionLog    []string
	opportunities     []decision.Opportunity
	memory            []decision.MemoryEvent
	lastDecision      decision.Decision
	lastExpression    expression.Result

	stop chan struct{}
}

// NewAgent wires a genome and its ports into a running Agent, generation 0
// unless g already carries history. BirthTimestamp is stamped from clock if
// g was never born (BirthTimestamp == 0 and Generation == 0 is genesis-like
// but still gets a real wall-clock birth so ageDays advances).
func NewAgent(id string, g *genome.DynamicGenome, clock ports.Clock, wallet ports.Wallet, llm ports.LLM, storage ports.PermanentStorage, messaging ports.Messaging, ledger ports.Ledger, cache *exprcache.Cache) *Agent {
	if g.BirthTimestamp == 0 {
		g.BirthTimestamp = clock.Now().UnixMilli()
	}
	return &Agent{
		ID:             id,
		Catalogue:      strategy.Catalogue(),
		AvailableTools: map[string]bool{},
		Wallet:         wallet,
		Storage:        storage,
		Messaging:      messaging,
		Ledger:         ledger,
		Clock:          clock,
		Cache:          cache,
		Decision:       decision.NewEngine(llm, clock),
		Genome:         g,
		Status:         StatusAlive,
	}
}

// RecordOpportunity queues an externally-observed opportunity for the next
// perception build.
func (a *Agent) RecordOpportunity(o decision.Opportunity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.opportunities = append(a.opportunities, o)
}

// RecordMemory appends an entry to the agent's recent-memory trail.
func (a *Agent) RecordMemory(m decision.MemoryEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.memory = append(a.memory, m)
}

// Snapshot is a read-only copy of an agent's externally-visible state, for
// insights and the API layer.
type Snapshot struct {
	ID         string
	GenomeHash string
	Generation int
	Status     Status
	Cycle      int
	Env        envstate.State
}

// Snapshot returns the agent's current externally-visible state.
func (a *Agent) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		ID:         a.ID,
		GenomeHash: a.Genome.GenomeHash,
		Generation: a.Genome.Generation,
		Status:     a.Status,
		Cycle:      a.Cycle,
		Env:        a.Env,
	}
}

// GenomeClone returns a deep copy of the agent's current genome, for
// insights and the API layer.
func (a *Agent) GenomeClone() *genome.DynamicGenome {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Genome.Clone()
}

// LastDecision returns the most recent decision, or false before the first
// one is made.
func (a *Agent) LastDecision() (decision.Decision, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastDecision, a.lastDecision.SelectedStrategy != ""
}

// LastExpression returns the most recent expression result, or false
// before the first tick.
func (a *Agent) LastExpression() (expression.Result, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastExpression, len(a.lastExpression.Expressed.Genes) > 0
}

// TickResult is one Tick call's outcome, returned for logging and tests.
type TickResult struct {
	Cycle         int
	Mode          envstate.Mode
	Decision      decision.Decision
	DispatchError error
	Died          bool
}

func ageInDays(now time.Time, birthTimestampMillis int64) float64 {
	birth := time.UnixMilli(birthTimestampMillis)
	return now.Sub(birth).Hours() / 24
}
