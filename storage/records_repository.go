package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/axobase/egde/genome"
)

// Key layouts. Everything is namespaced by population so one process can
// host several isolated populations.
func genomeKey(populationID, agentID string) string {
	return fmt.Sprintf("population:%s:genome:%s", populationID, agentID)
}

func ledgerKey(populationID, recordID string) string {
	return fmt.Sprintf("population:%s:ledger:%s", populationID, recordID)
}

func inscriptionKey(populationID, recordID string) string {
	return fmt.Sprintf("population:%s:inscription:%s", populationID, recordID)
}

// SaveGenomeRecord persists an agent's serialized genome envelope.
func (s *DBStorage) SaveGenomeRecord(populationID, agentID string, rec genome.Record) error {
	return s.PutObject(genomeKey(populationID, agentID), rec)
}

// GetGenomeRecord loads an agent's serialized genome envelope.
func (s *DBStorage) GetGenomeRecord(populationID, agentID string) (genome.Record, error) {
	var rec genome.Record
	if err := s.GetObject(genomeKey(populationID, agentID), &rec); err != nil {
		return genome.Record{}, err
	}
	return rec, nil
}

// SaveLedgerEntry persists one opaque birth/genome-update/death record.
func (s *DBStorage) SaveLedgerEntry(populationID string, entry LedgerEntry) error {
	return s.PutObject(ledgerKey(populationID, entry.RecordID), entry)
}

// GetLedgerEntries returns every ledger entry for a population, ordered by
// commit height.
func (s *DBStorage) GetLedgerEntries(populationID string) ([]LedgerEntry, error) {
	raw, err := s.GetByPrefix(fmt.Sprintf("population:%s:ledger:", populationID))
	if err != nil {
		return nil, err
	}
	entries := make([]LedgerEntry, 0, len(raw))
	for key, data := range raw {
		var entry LedgerEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("corrupt ledger entry at %s: %v", key, err)
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Height < entries[j].Height })
	return entries, nil
}

// SaveInscription persists one daily inscription.
func (s *DBStorage) SaveInscription(populationID string, ins Inscription) error {
	return s.PutObject(inscriptionKey(populationID, ins.RecordID), ins)
}

// GetInscriptions returns every stored inscription for a population,
// oldest first.
func (s *DBStorage) GetInscriptions(populationID string) ([]Inscription, error) {
	raw, err := s.GetByPrefix(fmt.Sprintf("population:%s:inscription:", populationID))
	if err != nil {
		return nil, err
	}
	out := make([]Inscription, 0, len(raw))
	for key, data := range raw {
		var ins Inscription
		if err := json.Unmarshal(data, &ins); err != nil {
			return nil, fmt.Errorf("corrupt inscription at %s: %v", key, err)
		}
		out = append(out, ins)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

// ClearPopulationData removes everything stored for one population.
func (s *DBStorage) ClearPopulationData(populationID string) error {
	return s.DeleteByPrefix(fmt.Sprintf("population:%s:", populationID))
}
