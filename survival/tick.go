package survival

import (
	"context"
	"errors"
	"fmt"

	"github.com/axobase/egde/decision"
	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/epigenetics"
	"github.com/axobase/egde/exprcache"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/ports"
)

// ErrAgentDead is returned by Tick once an agent has transitioned to
// StatusDead.
var ErrAgentDead = errors.New("survival: agent is dead")

// Tick runs one full cycle of the nine survival steps. It never
// interleaves with another Tick of the same Agent, so the caller must not
// invoke it concurrently for one Agent.
func (a *Agent) Tick(ctx context.Context) (TickResult, error) {
	a.mu.Lock()
	if a.Status == StatusDead {
		a.mu.Unlock()
		return TickResult{}, ErrAgentDead
	}
	a.Cycle++
	cycle := a.Cycle
	a.mu.Unlock()

	// Step 1: query balances.
	balances, err := a.Wallet.GetBalances(ctx, a.ID)
	if err != nil {
		return TickResult{Cycle: cycle}, ports.NewPortFailure("wallet", err)
	}

	// Step 2: derive mode.
	mode := deriveMode(balances)

	// Step 3: build environmental state.
	a.mu.Lock()
	a.Env.Balance = balances.Stable
	a.Env.Mode = mode
	a.Env.Clamp()
	env := a.Env
	g := a.Genome
	a.mu.Unlock()

	// Step 4: express the genome through the cache.
	now := a.Clock.Now()
	result := a.Cache.GetOrCompute(exprcache.Key(g.GenomeHash, env), exprcache.DefaultTTL, func() expression.Result {
		ageDays := ageInDays(now, g.BirthTimestamp)
		return expression.Express(g, env, ageDays, float64(now.UnixMilli()), nil)
	})

	// Step 5: update the epigenome; the stored genome is replaced in place.
	a.mu.Lock()
	epigenetics.Update(a.Genome, env, a.Genome.Generation)
	a.mu.Unlock()

	runwayDays := a.runwayDays(balances.Stable, result.TotalMetabolicCost)

	// Step 6: build perception and decide.
	a.mu.Lock()
	perception := decision.Perception{
		AgentID:              a.ID,
		Expressed:            result.Expressed,
		Env:                  env,
		TotalMetabolicCost:   result.TotalMetabolicCost,
		AvailableTools:       a.AvailableTools,
		MarketRisk:           a.MarketRisk,
		ExperienceBonus:      a.ExperienceBonus,
		RunwayDays:           runwayDays,
		DaysThriving:         env.DaysThriving,
		RecentDeceptionCount: env.RecentDeceptionCount,
		Opportunities:        append([]decision.Opportunity{}, a.opportunities...),
		RecentMemory:         append([]decision.MemoryEvent{}, a.memory...),
	}
	catalogue := a.Catalogue
	a.mu.Unlock()

	d, err := a.Decision.Decide(ctx, a.ID, perception, catalogue)
	if err != nil {
		if errors.Is(err, ports.ErrRateLimited) {
			return TickResult{Cycle: cycle, Mode: mode}, nil
		}
		return TickResult{Cycle: cycle, Mode: mode}, err
	}

	a.mu.Lock()
	a.thoughtLog = append(a.thoughtLog, fmt.Sprintf("cycle %d: %s -> %s (%s)", cycle, d.SelectedStrategy, d.SelectedAction, d.Reasoning))
	a.lastDecision = d
	a.lastExpression = result
	a.mu.Unlock()

	// Step 7: dispatch.
	dispatchErr := a.dispatch(ctx, d)

	// Step 8: update environment counters.
	a.updateCounters(runwayDays, d, dispatchErr)

	// Step 9: death transition.
	died := a.checkDeath(ctx, mode)

	return TickResult{Cycle: cycle, Mode: mode, Decision: d, DispatchError: dispatchErr, Died: died}, nil
}

// runwayDays estimates remaining solvent days from the current stable
// balance and the per-cycle metabolic burn rate, annualized to cycles per
// day via the agent's own cycle interval. The runway
// formula itself is an implementation choice.
func (a *Agent) runwayDays(balance, totalMetabolicCost float64) float64 {
	if totalMetabolicCost <= 0 {
		return 365 // no measurable burn: treat as indefinitely solvent, capped
	}
	cyclesPerDay := float64(24) / a.cycleInterval().Hours()
	burnPerDay := totalMetabolicCost * cyclesPerDay
	if burnPerDay <= 0 {
		return 365
	}
	days := balance / burnPerDay
	if days > 365 {
		return 365
	}
	if days < 0 {
		return 0
	}
	return days
}

// updateCounters maintains the per-cycle environment counters.
func (a *Agent) updateCounters(runwayDays float64, d decision.Decision, dispatchErr error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case runwayDays < runwayStarvingFloorDays:
		a.Env.DaysStarving++
		a.Env.DaysThriving = 0
	case runwayDays > runwayThrivingCeilDays:
		a.Env.DaysThriving++
	}

	a.Env.RecentDeceptionCount -= deceptionDecayPerCycle
	if a.Env.RecentDeceptionCount < 0 {
		a.Env.RecentDeceptionCount = 0
	}

	if dispatchErr == nil && (d.SelectedAction == decision.ActionSendMessage || d.SelectedAction == decision.ActionBroadcast) {
		a.Env.CooperationCount++
	}

	a.Env.Clamp()
}

// checkDeath handles the death transition: death requires the agent to
// still be in hibernation on the tick immediately following the one that
// first entered it (see hibernationDeathStreak).
func (a *Agent) checkDeath(ctx context.Context, mode envstate.Mode) bool {
	a.mu.Lock()
	if mode == envstate.ModeHibernation {
		a.hibernationStreak++
	} else {
		a.hibernationStreak = 0
	}
	dead := a.hibernationStreak >= hibernationDeathStreak
	if dead {
		a.Status = StatusDead
	}
	genomeHash := a.Genome.GenomeHash
	thoughts := joinLog(a.thoughtLog)
	transactions := joinLog(a.transactionLog)
	a.mu.Unlock()

	if !dead {
		return false
	}

	if a.Storage != nil {
		summary := fmt.Sprintf("final inscription for %s at cycle %d", a.ID, a.Cycle)
		_, _ = a.Storage.DailyInscribe(ctx, genomeHash, thoughts, transactions, summary)
	}
	if a.Ledger != nil {
		_, _ = a.Ledger.RecordDeath(ctx, a.ID, "hibernation-starvation")
	}
	if a.OnDeath != nil {
		a.OnDeath(ctx, a.ID, "hibernation-starvation")
	}
	return true
}

func joinLog(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
