package ledgeradapter

import (
	"context"
	"testing"

	"github.com/axobase/egde/storage"
)

func inMemoryStore(t *testing.T) *storage.DBStorage {
	t.Helper()
	cfg := storage.BadgerDBConfig{InMemory: true, DisableLogging: true}
	store, err := storage.GetDBStorageWithConfig(cfg, "test-"+t.Name())
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	return store
}

func TestRegisterBirthCommitsAndPersists(t *testing.T) {
	store := inMemoryStore(t)
	app := NewApplication("test-pop", store)
	ledger := NewLedger(app)

	recordID, err := ledger.RegisterBirth(context.Background(), "lineage-1", "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if recordID == "" {
		t.Fatal("expected an opaque record id")
	}

	entries, err := store.GetLedgerEntries("test-pop")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one persisted ledger entry, got %d", len(entries))
	}
	if entries[0].Kind != "birth" || entries[0].RecordID != recordID {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestLifecycleRecordsOrderByHeight(t *testing.T) {
	store := inMemoryStore(t)
	app := NewApplication("test-pop2", store)
	ledger := NewLedger(app)
	ctx := context.Background()

	if _, err := ledger.RegisterBirth(ctx, "a", "h1"); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.UpdateGenome(ctx, "a", "h2"); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.RecordDeath(ctx, "a", "starved"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.GetLedgerEntries("test-pop2")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected three entries, got %d", len(entries))
	}
	kinds := []string{entries[0].Kind, entries[1].Kind, entries[2].Kind}
	want := []string{"birth", "genome-update", "death"}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected kinds %v in height order, got %v", want, kinds)
		}
	}
}

func TestCheckTxRejectsMalformedTx(t *testing.T) {
	app := NewApplication("test-pop3", nil)
	ledger := NewLedger(app)

	if _, err := ledger.RegisterBirth(context.Background(), "", ""); err == nil {
		t.Fatal("expected rejection of a birth record with no agent id")
	}
}
