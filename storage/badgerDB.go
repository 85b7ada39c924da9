package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/axobase/egde/genome"
)

// Storage is the persistence surface the ledger and permanent-storage
// adapters build on: a generic KV layer plus the EGDE record operations.
type Storage interface {
	// Generic operations
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	GetByPrefix(prefix string) (map[string][]byte, error)
	DeleteByPrefix(prefix string) error
	PutObject(key string, obj interface{}) error
	GetObject(key string, obj interface{}) error

	// Domain-specific operations
	SaveGenomeRecord(populationID, agentID string, rec genome.Record) error
	GetGenomeRecord(populationID, agentID string) (genome.Record, error)
	SaveLedgerEntry(populationID string, entry LedgerEntry) error
	GetLedgerEntries(populationID string) ([]LedgerEntry, error)
	SaveInscription(populationID string, ins Inscription) error
	GetInscriptions(populationID string) ([]Inscription, error)
	ClearPopulationData(populationID string) error

	// Management operations
	Close()
	RunGC() error
}

// LedgerEntry is one opaque birth/genome-update/death record as the ledger
// adapter committed it.
type LedgerEntry struct {
	RecordID  string `json:"recordId"`
	Kind      string `json:"kind"` // "birth", "genome-update", "death"
	AgentID   string `json:"agentId"`
	Payload   string `json:"payload"`
	Height    int64  `json:"height"`
	Timestamp int64  `json:"timestamp"`
}

// Inscription is one daily inscription blob, kept locally as the offchain
// fallback and the retrieval index for EigenDA blobs.
type Inscription struct {
	RecordID     string `json:"recordId"`
	GenomeHash   string `json:"genomeHash"`
	Thoughts     string `json:"thoughts"`
	Transactions string `json:"transactions"`
	Summary      string `json:"summary"`
	Timestamp    int64  `json:"timestamp"`
	Offchain     bool   `json:"offchain"` // true when EigenDA was unreachable
}

type DBMetrics struct {
	PutCount         int64
	GetCount         int64
	DeleteCount      int64
	GetByPrefixCount int64
	Errors           int64
}

func (s *DBStorage) recordMetric(name string) {
	switch name {
	case "put":
		atomic.AddInt64(&s.metrics.PutCount, 1)
	case "get":
		atomic.AddInt64(&s.metrics.GetCount, 1)
	case "delete":
		atomic.AddInt64(&s.metrics.DeleteCount, 1)
	case "prefix":
		atomic.AddInt64(&s.metrics.GetByPrefixCount, 1)
	}
}

func (s *DBStorage) logOperation(op string, key string, err error) {
	if err != nil {
		log.Printf("BadgerDB %s operation failed for key %s: %v", op, key, err)
		atomic.AddInt64(&s.metrics.Errors, 1)
	}
}

// DBStorage represents a persistent storage using BadgerDB
type DBStorage struct {
	db      *badger.DB
	mu      sync.Mutex
	config  BadgerDBConfig
	metrics DBMetrics
}

var (
	// Map of populationID -> DBStorage
	instances = make(map[string]*DBStorage)
	mu        sync.RWMutex
)

// GetDBStorage returns a DB instance for the specified population
func GetDBStorage(dataDir, populationID string) (*DBStorage, error) {
	return GetDBStorageWithConfig(DefaultConfig(dataDir), populationID)
}

// GetDBStorageWithConfig returns a DB instance with custom configuration
func GetDBStorageWithConfig(config BadgerDBConfig, populationID string) (*DBStorage, error) {
	mu.RLock()
	instance, exists := instances[populationID]
	mu.RUnlock()

	if exists {
		return instance, nil
	}

	mu.Lock()
	defer mu.Unlock()

	// Check again in case another goroutine created it while we were waiting
	instance, exists = instances[populationID]
	if exists {
		return instance, nil
	}

	dbPath := filepath.Join(config.DataDir, "badgerdb", populationID)
	instance, err := newDBStorage(dbPath, config)
	if err != nil {
		return nil, err
	}

	instances[populationID] = instance

	if config.GCInterval > 0 {
		go instance.startGCRoutine(time.Duration(config.GCInterval) * time.Second)
	}

	return instance, nil
}

// newDBStorage creates a new BadgerDB storage instance
func newDBStorage(dbPath string, config BadgerDBConfig) (*DBStorage, error) {
	opts := badger.DefaultOptions(dbPath)
	if config.InMemory {
		// Badger refuses a directory in disk-less mode.
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	if config.DisableLogging {
		opts.Logger = nil
	}
	opts.SyncWrites = config.SyncWrites

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %v", err)
	}

	return &DBStorage{
		db:     db,
		config: config,
	}, nil
}

func (s *DBStorage) startGCRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := s.RunGC(); err != nil {
			log.Printf("BadgerDB GC failed: %v", err)
		}
	}
}

// Close closes the BadgerDB database
func (s *DBStorage) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// CloseAll closes all BadgerDB instances
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()

	for _, instance := range instances {
		instance.Close()
	}
	instances = make(map[string]*DBStorage)
}

// Put stores a key-value pair in the database
func (s *DBStorage) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	s.recordMetric("put")
	s.logOperation("put", key, err)
	return err
}

// Get retrieves a value from the database by key
func (s *DBStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var valCopy []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil // Key not found, return nil value
			}
			return err
		}

		return item.Value(func(val []byte) error {
			valCopy = append([]byte{}, val...)
			return nil
		})
	})
	s.recordMetric("get")

	if err != nil {
		s.logOperation("get", key, err)
		return nil, fmt.Errorf("failed to get value: %v", err)
	}

	return valCopy, nil
}

// Delete removes a key-value pair from the database
func (s *DBStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	s.recordMetric("delete")
	s.logOperation("delete", key, err)
	return err
}

// GetByPrefix retrieves all key-value pairs with a given prefix
func (s *DBStorage) GetByPrefix(prefix string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string][]byte)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			k := item.Key()
			err := item.Value(func(v []byte) error {
				// Copy the key and value since they are only valid during this transaction
				keyCopy := append([]byte{}, k...)
				valCopy := append([]byte{}, v...)
				result[string(keyCopy)] = valCopy
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	s.recordMetric("prefix")

	if err != nil {
		return nil, fmt.Errorf("failed to get values by prefix: %v", err)
	}

	return result, nil
}

// DeleteByPrefix deletes all key-value pairs with a given prefix
func (s *DBStorage) DeleteByPrefix(prefix string) error {
	keys, err := s.GetByPrefix(prefix)
	if err != nil {
		return err
	}
	for key := range keys {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// PutObject serializes and stores an object in the database
func (s *DBStorage) PutObject(key string, obj interface{}) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal object: %v", err)
	}

	return s.Put(key, data)
}

// GetObject retrieves and deserializes an object from the database
func (s *DBStorage) GetObject(key string, obj interface{}) error {
	data, err := s.Get(key)
	if err != nil {
		return err
	}

	if data == nil {
		return fmt.Errorf("key not found: %s", key)
	}

	if err := json.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("failed to unmarshal object: %v", err)
	}

	return nil
}

// RunGC runs garbage collection on the database
func (s *DBStorage) RunGC() error {
	return s.db.RunValueLogGC(0.5) // Clean up if at least 50% can be discarded
}
