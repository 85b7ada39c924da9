package survival

import (
	"context"
	"errors"
	"log"
)

// Run is the agent's long-running task: it awaits either the next cycle
// timer or the daily inscription boundary, whichever comes first, and
// surrenders control at no other point. It returns when ctx is
// cancelled, Stop is called, or the agent dies.
func (a *Agent) Run(ctx context.Context) error {
	a.mu.Lock()
	if a.stop != nil {
		a.mu.Unlock()
		return errors.New("survival: agent is already running")
	}
	stop := make(chan struct{})
	a.stop = stop
	a.mu.Unlock()

	for {
		interval := a.cycleInterval()
		untilDaily := nextDailyBoundary(a.Clock.Now())

		wait := interval
		daily := false
		if untilDaily < wait {
			wait = untilDaily
			daily = true
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		case <-a.Clock.After(wait):
		}

		if daily {
			a.runDailyInscription(ctx)
			continue
		}

		result, err := a.Tick(ctx)
		if err != nil {
			if errors.Is(err, ErrAgentDead) {
				return nil
			}
			log.Printf("egde: survival tick failed for %s: %v", a.ID, err)
			continue
		}
		if result.DispatchError != nil {
			log.Printf("egde: dispatch failed for %s action %s: %v", a.ID, result.Decision.SelectedAction, result.DispatchError)
		}
		if result.Died {
			return nil
		}
	}
}

// Stop requests the agent's task exit before its next suspension returns.
func (a *Agent) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stop != nil {
		close(a.stop)
		a.stop = nil
	}
}

// runDailyInscription inscribes the accumulated thoughts and transactions,
// clearing them only on success; a failure is logged and retried at the
// next boundary rather than treated as fatal.
func (a *Agent) runDailyInscription(ctx context.Context) {
	if a.Storage == nil {
		return
	}
	a.mu.Lock()
	thoughts := joinLog(a.thoughtLog)
	transactions := joinLog(a.transactionLog)
	genomeHash := a.Genome.GenomeHash
	cycle := a.Cycle
	a.mu.Unlock()

	if thoughts == "" && transactions == "" {
		return
	}

	summary := "daily inscription"
	if _, err := a.Storage.DailyInscribe(ctx, genomeHash, thoughts, transactions, summary); err != nil {
		log.Printf("egde: daily inscription failed for %s at cycle %d, retrying next boundary: %v", a.ID, cycle, err)
		return
	}

	a.mu.Lock()
	a.thoughtLog = nil
	a.transactionLog = nil
	a.mu.Unlock()
}
