// Package ports defines the capability-typed collaborators EGDE consumes from
// the surrounding system. The core never imports a transport, database, or LLM
// SDK directly — it calls these interfaces, and the concrete adapters under
// ports/*adapter wire them to real services.
package ports

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPortFailure wraps any inbound port failure with the identity of the port
// that failed.
type ErrPortFailure struct {
	Port string
	Err  error
}

func (e *ErrPortFailure) Error() string {
	return fmt.Sprintf("port %s failed: %v", e.Port, e.Err)
}

func (e *ErrPortFailure) Unwrap() error { return e.Err }

// NewPortFailure builds an ErrPortFailure, or nil if err is nil.
func NewPortFailure(port string, err error) error {
	if err == nil {
		return nil
	}
	return &ErrPortFailure{Port: port, Err: err}
}

// ErrRateLimited is returned when a caller invokes a rate-limited operation
// (the decision engine's minDecisionInterval) too soon.
var ErrRateLimited = errors.New("rate limited")

// Balances is the response shape of Wallet.GetBalances.
type Balances struct {
	Native float64 // gas surrogate, e.g. ETH
	Stable float64 // stable unit, e.g. USDC
}

// Wallet reports an agent's on-chain balances. Transaction signing happens
// only through the action executor — the core itself never signs.
type Wallet interface {
	GetBalances(ctx context.Context, address string) (Balances, error)
}

// LLMOptions bounds a single think() call.
type LLMOptions struct {
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// LLM is the single door the core has to a language model provider.
type LLM interface {
	Think(ctx context.Context, prompt string, opts LLMOptions) (string, error)
}

// PermanentStorage records the day's accumulated thoughts and transactions,
// once per day and at death.
type PermanentStorage interface {
	DailyInscribe(ctx context.Context, genomeHash, thoughts, transactions, summary string) (recordID string, err error)
}

// Messaging is best-effort; failures are swallowed by the survival loop.
type Messaging interface {
	Broadcast(ctx context.Context, msg any) error
	SendMessage(ctx context.Context, peer string, msg any) error
	RecordCooperation(ctx context.Context, peer string, interactions int) error
}

// Ledger is opaque to the core except for the record ids it returns.
type Ledger interface {
	RegisterBirth(ctx context.Context, lineageID string, genomeHash string) (recordID string, err error)
	UpdateGenome(ctx context.Context, agentID string, genomeHash string) (recordID string, err error)
	RecordDeath(ctx context.Context, agentID string, cause string) (recordID string, err error)
}

// Clock supplies monotonic time, wall-clock time for oscillators, and
// scheduled callbacks, so that survival loops are testable without sleeping.
type Clock interface {
	Now() time.Time
	Monotonic() time.Duration
	After(d time.Duration) <-chan time.Time
}

// Rng is the one injected source of randomness every probabilistic operator
// draws from (no ambient randomness).
type Rng interface {
	NextFloat64() float64 // in [0,1)
	NextBytes(n int) []byte
	// NextGaussian returns a sample from N(0,1); operators scale it themselves.
	NextGaussian() float64
	// NextIntn returns a uniform int in [0,n).
	NextIntn(n int) int
}
