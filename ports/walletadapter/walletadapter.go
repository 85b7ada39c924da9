// Package walletadapter backs the ports.Wallet capability with an
// in-process balance ledger. Live deployments would point the same
// interface at a real chain RPC; the survival loop cannot tell the
// difference, which is the point of the port.
package walletadapter

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/axobase/egde/ports"
)

// PopulationFunds tracks stable and native balances for every agent in one
// population.
type PopulationFunds struct {
	PopulationID string
	mutex        sync.RWMutex
	balances     map[string]ports.Balances // agent address -> balances
}

var (
	fundsRegistry = make(map[string]*PopulationFunds)
	registryMutex sync.RWMutex
)

// InitializePopulationFunds creates (or returns) the fund ledger for a
// population.
func InitializePopulationFunds(populationID string) *PopulationFunds {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if funds, exists := fundsRegistry[populationID]; exists {
		return funds
	}
	funds := &PopulationFunds{
		PopulationID: populationID,
		balances:     make(map[string]ports.Balances),
	}
	fundsRegistry[populationID] = funds
	log.Printf("Initialized fund ledger for population %s", populationID)
	return funds
}

// GetPopulationFunds returns a population's ledger, or nil.
func GetPopulationFunds(populationID string) *PopulationFunds {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	return fundsRegistry[populationID]
}

// Fund credits an agent's balances.
func (pf *PopulationFunds) Fund(address string, stable, native float64) {
	pf.mutex.Lock()
	defer pf.mutex.Unlock()

	b := pf.balances[address]
	b.Stable += stable
	b.Native += native
	pf.balances[address] = b
	log.Printf("Funded %s with %.4f stable / %.6f native, new balance %.4f / %.6f",
		address, stable, native, b.Stable, b.Native)
}

// Debit withdraws from an agent's stable balance, refusing overdrafts.
func (pf *PopulationFunds) Debit(address string, stable float64) error {
	pf.mutex.Lock()
	defer pf.mutex.Unlock()

	b := pf.balances[address]
	if b.Stable < stable {
		return fmt.Errorf("insufficient funds for %s: have %.4f, need %.4f", address, b.Stable, stable)
	}
	b.Stable -= stable
	pf.balances[address] = b
	return nil
}

// Transfer moves stable units between two agents atomically.
func (pf *PopulationFunds) Transfer(from, to string, stable float64) error {
	pf.mutex.Lock()
	defer pf.mutex.Unlock()

	src := pf.balances[from]
	if src.Stable < stable {
		return fmt.Errorf("insufficient funds for %s: have %.4f, need %.4f", from, src.Stable, stable)
	}
	dst := pf.balances[to]
	src.Stable -= stable
	dst.Stable += stable
	pf.balances[from] = src
	pf.balances[to] = dst
	log.Printf("Transferred %.4f stable from %s to %s", stable, from, to)
	return nil
}

// GetBalances implements ports.Wallet.
func (pf *PopulationFunds) GetBalances(ctx context.Context, address string) (ports.Balances, error) {
	pf.mutex.RLock()
	defer pf.mutex.RUnlock()
	return pf.balances[address], nil
}

var _ ports.Wallet = (*PopulationFunds)(nil)
