package ledgeradapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	types "github.com/cometbft/cometbft/abci/types"

	"github.com/axobase/egde/ports"
)

// Ledger implements ports.Ledger by submitting opaque transactions to the
// local ABCI application. Each call runs CheckTx then DeliverTx directly,
// the in-process equivalent of a broadcast_tx_commit against a one-node
// chain.
type Ledger struct {
	app *Application
}

// NewLedger wraps an application as a ports.Ledger.
func NewLedger(app *Application) *Ledger {
	return &Ledger{app: app}
}

func (l *Ledger) submit(tx LedgerTx) (string, error) {
	raw, err := json.Marshal(tx)
	if err != nil {
		return "", ports.NewPortFailure("ledger", err)
	}

	if res := l.app.CheckTx(types.RequestCheckTx{Tx: raw}); res.Code != 0 {
		return "", ports.NewPortFailure("ledger", fmt.Errorf("tx rejected: %s", res.Log))
	}
	res := l.app.DeliverTx(types.RequestDeliverTx{Tx: raw})
	if res.Code != 0 {
		return "", ports.NewPortFailure("ledger", fmt.Errorf("tx failed: %s", res.Log))
	}
	l.app.Commit()
	return string(res.Data), nil
}

// RegisterBirth commits a birth record and returns its opaque id.
func (l *Ledger) RegisterBirth(ctx context.Context, lineageID, genomeHash string) (string, error) {
	return l.submit(LedgerTx{
		Kind:       "birth",
		AgentID:    lineageID,
		LineageID:  lineageID,
		GenomeHash: genomeHash,
		Timestamp:  time.Now().UnixMilli(),
	})
}

// UpdateGenome commits a genome-update record.
func (l *Ledger) UpdateGenome(ctx context.Context, agentID, genomeHash string) (string, error) {
	return l.submit(LedgerTx{
		Kind:       "genome-update",
		AgentID:    agentID,
		GenomeHash: genomeHash,
		Timestamp:  time.Now().UnixMilli(),
	})
}

// RecordDeath commits a death record.
func (l *Ledger) RecordDeath(ctx context.Context, agentID, cause string) (string, error) {
	return l.submit(LedgerTx{
		Kind:      "death",
		AgentID:   agentID,
		Cause:     cause,
		Timestamp: time.Now().UnixMilli(),
	})
}

var _ ports.Ledger = (*Ledger)(nil)
