package ports

import (
	"context"
	"fmt"
	"sync"
)

// MockWallet is an in-memory Wallet backed by a map+mutex, answering
// GetBalances directly from test-seeded balances.
type MockWallet struct {
	mu       sync.RWMutex
	balances map[string]Balances
}

// NewMockWallet builds a MockWallet with no addresses funded.
func NewMockWallet() *MockWallet {
	return &MockWallet{balances: make(map[string]Balances)}
}

// Fund sets address's balances directly, for test setup.
func (w *MockWallet) Fund(address string, b Balances) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[address] = b
}

func (w *MockWallet) GetBalances(ctx context.Context, address string) (Balances, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.balances[address], nil
}

// MockLLM returns a fixed canned response regardless of prompt.
type MockLLM struct {
	Response string
	Err      error
}

func (m *MockLLM) Think(ctx context.Context, prompt string, opts LLMOptions) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// ScriptedLLM replies with the next entry of Responses on each call, for
// tests that need a sequence of distinct decisions.
type ScriptedLLM struct {
	mu        sync.Mutex
	Responses []string
	calls     int
}

func (s *ScriptedLLM) Think(ctx context.Context, prompt string, opts LLMOptions) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls >= len(s.Responses) {
		return "", fmt.Errorf("scripted LLM exhausted after %d calls", s.calls)
	}
	r := s.Responses[s.calls]
	s.calls++
	return r, nil
}

// MockPermanentStorage records every inscription in memory.
type MockPermanentStorage struct {
	mu      sync.Mutex
	records []InscribeRecord
	seq     int
}

// InscribeRecord is one call MockPermanentStorage.DailyInscribe recorded.
type InscribeRecord struct {
	GenomeHash, Thoughts, Transactions, Summary string
}

func (m *MockPermanentStorage) DailyInscribe(ctx context.Context, genomeHash, thoughts, transactions, summary string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, InscribeRecord{genomeHash, thoughts, transactions, summary})
	m.seq++
	return fmt.Sprintf("inscription-%d", m.seq), nil
}

// Records returns a copy of every inscription recorded so far.
func (m *MockPermanentStorage) Records() []InscribeRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]InscribeRecord{}, m.records...)
}

// MockMessaging records broadcasts, direct messages, and cooperation
// events in memory; all calls always succeed, matching the best-effort
// contract this port carries.
type MockMessaging struct {
	mu             sync.Mutex
	Broadcasts     []any
	DirectMessages map[string][]any
	Cooperation    map[string]int
}

// NewMockMessaging builds an empty MockMessaging.
func NewMockMessaging() *MockMessaging {
	return &MockMessaging{
		DirectMessages: make(map[string][]any),
		Cooperation:    make(map[string]int),
	}
}

func (m *MockMessaging) Broadcast(ctx context.Context, msg any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Broadcasts = append(m.Broadcasts, msg)
	return nil
}

func (m *MockMessaging) SendMessage(ctx context.Context, peer string, msg any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DirectMessages[peer] = append(m.DirectMessages[peer], msg)
	return nil
}

func (m *MockMessaging) RecordCooperation(ctx context.Context, peer string, interactions int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cooperation[peer] += interactions
	return nil
}

// MockLedger assigns a monotonically increasing opaque record id to every
// call, in memory.
type MockLedger struct {
	mu  sync.Mutex
	seq int
}

func (l *MockLedger) next() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	return fmt.Sprintf("record-%d", l.seq)
}

func (l *MockLedger) RegisterBirth(ctx context.Context, lineageID, genomeHash string) (string, error) {
	return l.next(), nil
}

func (l *MockLedger) UpdateGenome(ctx context.Context, agentID, genomeHash string) (string, error) {
	return l.next(), nil
}

func (l *MockLedger) RecordDeath(ctx context.Context, agentID, cause string) (string, error) {
	return l.next(), nil
}
