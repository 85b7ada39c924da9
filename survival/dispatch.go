package survival

import (
	"context"
	"errors"
	"fmt"

	"github.com/axobase/egde/decision"
)

// errNoExecutor and errNoMatingHandler are returned, not panicked, since a
// missing collaborator is a configuration fact the caller should see in
// DispatchError rather than a bug.
var (
	errNoExecutor      = errors.New("survival: no action executor configured")
	errNoMatingHandler = errors.New("survival: no mating handler configured")
)

// dispatch routes the chosen action to the
// port or collaborator responsible for it. A port failure here aborts only
// this tick's dispatch — the tick itself still completes through step 9.
func (a *Agent) dispatch(ctx context.Context, d decision.Decision) error {
	switch d.SelectedAction {
	case decision.ActionEnterDormancy, decision.ActionExitDormancy, decision.ActionStoreMemory:
		a.recordLocalOutcome(d)
		return nil

	case decision.ActionBroadcast:
		if a.Messaging == nil {
			return nil // best-effort port: absence is not an error
		}
		return a.Messaging.Broadcast(ctx, d)

	case decision.ActionSendMessage:
		if a.Messaging == nil {
			return nil
		}
		peer := a.choosePeer()
		if peer == "" {
			return nil
		}
		return a.Messaging.SendMessage(ctx, peer, d)

	case decision.ActionInscribe:
		if a.Storage == nil {
			return nil
		}
		a.mu.Lock()
		thoughts := joinLog(a.thoughtLog)
		transactions := joinLog(a.transactionLog)
		genomeHash := a.Genome.GenomeHash
		cycle := a.Cycle
		a.mu.Unlock()
		summary := fmt.Sprintf("cycle %d inscription for %s", cycle, a.ID)
		if _, err := a.Storage.DailyInscribe(ctx, genomeHash, thoughts, transactions, summary); err != nil {
			return err
		}
		a.mu.Lock()
		a.thoughtLog = nil
		a.transactionLog = nil
		a.mu.Unlock()
		return nil

	case decision.ActionProposeMating, decision.ActionAcceptMating:
		if a.OnMating == nil {
			return errNoMatingHandler
		}
		return a.OnMating(ctx, a.ID, d)

	default:
		if a.Executor == nil {
			return errNoExecutor
		}
		outcome, err := a.Executor.Execute(ctx, a.ID, d.SelectedAction, d)
		if err != nil {
			return err
		}
		a.mu.Lock()
		a.transactionLog = append(a.transactionLog, fmt.Sprintf("%s: %s", d.SelectedAction, outcome))
		a.mu.Unlock()
		return nil
	}
}

func (a *Agent) recordLocalOutcome(d decision.Decision) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transactionLog = append(a.transactionLog, fmt.Sprintf("%s: local state change", d.SelectedAction))
}

// choosePeer picks the first configured peer. A richer selection (by
// partner-selectivity or reciprocity tracking) belongs to the evolution
// coordinator, not the survival loop.
func (a *Agent) choosePeer() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.Peers) == 0 {
		return ""
	}
	return a.Peers[0]
}
