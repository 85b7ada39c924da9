// Package ledgeradapter backs the ports.Ledger capability with a local
// CometBFT ABCI application. Birth, genome-update, and death records are
// submitted as opaque JSON transactions; the sha256 of the committed tx is
// the opaque record id the core receives. Committed entries are persisted
// through the badger record store so a restarted process keeps its ledger.
package ledgeradapter

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"sync"

	types "github.com/cometbft/cometbft/abci/types"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"github.com/axobase/egde/storage"
)

// LedgerTx is the opaque transaction shape the application commits. The
// core never sees this type; it only receives the record id.
type LedgerTx struct {
	Kind       string `json:"kind"` // "birth", "genome-update", "death"
	AgentID    string `json:"agentId"`
	LineageID  string `json:"lineageId,omitempty"`
	GenomeHash string `json:"genomeHash,omitempty"`
	Cause      string `json:"cause,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// Application is the ABCI app that records EGDE lifecycle transactions.
type Application struct {
	populationID string
	mu           sync.RWMutex
	height       int64
	store        storage.Storage
	validators   []types.ValidatorUpdate
}

// NewApplication builds the ledger application over a record store. A nil
// store keeps the ledger memory-only.
func NewApplication(populationID string, store storage.Storage) *Application {
	return &Application{
		populationID: populationID,
		store:        store,
		validators:   make([]types.ValidatorUpdate, 0),
	}
}

func (app *Application) Info(req types.RequestInfo) types.ResponseInfo {
	return types.ResponseInfo{
		Data:             "Axobase EGDE ledger",
		Version:          "1.0.0",
		AppVersion:       1,
		LastBlockHeight:  app.height,
		LastBlockAppHash: []byte{},
	}
}

func (app *Application) InitChain(req types.RequestInitChain) types.ResponseInitChain {
	app.validators = req.Validators
	if len(app.validators) == 0 {
		log.Printf("WARNING: No validators in genesis, consensus may not work properly")
	}
	return types.ResponseInitChain{
		Validators: app.validators,
		ConsensusParams: &tmproto.ConsensusParams{
			Block: &tmproto.BlockParams{
				MaxBytes: 1048576, // 1MB; EGDE records are tiny
				MaxGas:   -1,
			},
			Validator: &tmproto.ValidatorParams{
				PubKeyTypes: []string{"ed25519"},
			},
		},
	}
}

func (app *Application) Query(req types.RequestQuery) types.ResponseQuery {
	return types.ResponseQuery{}
}

func (app *Application) CheckTx(req types.RequestCheckTx) types.ResponseCheckTx {
	var tx LedgerTx
	if err := json.Unmarshal(req.Tx, &tx); err != nil {
		return types.ResponseCheckTx{Code: 1, Log: "malformed ledger tx"}
	}
	if tx.Kind == "" || tx.AgentID == "" {
		return types.ResponseCheckTx{Code: 1, Log: "ledger tx missing kind or agent id"}
	}
	return types.ResponseCheckTx{Code: 0}
}

func (app *Application) DeliverTx(req types.RequestDeliverTx) types.ResponseDeliverTx {
	var tx LedgerTx
	if err := json.Unmarshal(req.Tx, &tx); err != nil {
		return types.ResponseDeliverTx{Code: 1, Log: "malformed ledger tx"}
	}

	app.mu.Lock()
	app.height++
	height := app.height
	app.mu.Unlock()

	recordID := txHash(req.Tx)
	if app.store != nil {
		entry := storage.LedgerEntry{
			RecordID:  recordID,
			Kind:      tx.Kind,
			AgentID:   tx.AgentID,
			Payload:   string(req.Tx),
			Height:    height,
			Timestamp: tx.Timestamp,
		}
		if err := app.store.SaveLedgerEntry(app.populationID, entry); err != nil {
			log.Printf("Failed to persist ledger entry %s: %v", recordID, err)
		}
	}

	log.Printf("Ledger committed %s record for %s at height %d (%s)", tx.Kind, tx.AgentID, height, recordID[:12])
	return types.ResponseDeliverTx{Code: 0, Data: []byte(recordID)}
}

func (app *Application) BeginBlock(req types.RequestBeginBlock) types.ResponseBeginBlock {
	return types.ResponseBeginBlock{}
}

func (app *Application) EndBlock(req types.RequestEndBlock) types.ResponseEndBlock {
	return types.ResponseEndBlock{ValidatorUpdates: app.validators}
}

func (app *Application) Commit() types.ResponseCommit {
	return types.ResponseCommit{}
}

func (app *Application) ListSnapshots(req types.RequestListSnapshots) types.ResponseListSnapshots {
	return types.ResponseListSnapshots{}
}

func (app *Application) OfferSnapshot(req types.RequestOfferSnapshot) types.ResponseOfferSnapshot {
	return types.ResponseOfferSnapshot{}
}

func (app *Application) LoadSnapshotChunk(req types.RequestLoadSnapshotChunk) types.ResponseLoadSnapshotChunk {
	return types.ResponseLoadSnapshotChunk{}
}

func (app *Application) ApplySnapshotChunk(req types.RequestApplySnapshotChunk) types.ResponseApplySnapshotChunk {
	return types.ResponseApplySnapshotChunk{}
}

func (app *Application) PrepareProposal(req types.RequestPrepareProposal) types.ResponsePrepareProposal {
	return types.ResponsePrepareProposal{Txs: req.Txs}
}

func (app *Application) ProcessProposal(req types.RequestProcessProposal) types.ResponseProcessProposal {
	return types.ResponseProcessProposal{Status: types.ResponseProcessProposal_ACCEPT}
}

func txHash(tx []byte) string {
	sum := sha256.Sum256(tx)
	return hex.EncodeToString(sum[:])
}

var _ types.Application = (*Application)(nil)
