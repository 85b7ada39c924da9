package exprcache

import (
	"testing"
	"time"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
)

func TestKeyStableAcrossCoarseBuckets(t *testing.T) {
	a := envstate.State{Balance: 101, DaysStarving: 0.5, DaysThriving: 1, Mode: envstate.ModeNormal}
	b := envstate.State{Balance: 109, DaysStarving: 1.5, DaysThriving: 6, Mode: envstate.ModeNormal}
	if Key("deadbeef00000000", a) != Key("deadbeef00000000", b) {
		t.Fatal("environments in the same coarse buckets should produce the same key")
	}
}

func TestKeyDiffersAcrossBuckets(t *testing.T) {
	a := envstate.State{Balance: 0, Mode: envstate.ModeNormal}
	b := envstate.State{Balance: 500, Mode: envstate.ModeEmergency}
	if Key("deadbeef00000000", a) == Key("deadbeef00000000", b) {
		t.Fatal("environments in different coarse buckets should produce different keys")
	}
}

func TestGetPutRoundTrip(t *testing.T) {
	c := New(10, time.Hour)
	defer c.Close()

	result := expression.Result{TotalMetabolicCost: 0.42}
	c.Put("k1", result, time.Minute)

	got, ok := c.Get("k1")
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if got.TotalMetabolicCost != 0.42 {
		t.Fatalf("expected round-tripped result, got %+v", got)
	}
}

func TestGetMissOnExpiredEntry(t *testing.T) {
	c := New(10, time.Hour)
	defer c.Close()

	c.Put("k1", expression.Result{}, time.Nanosecond)
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("k1"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2, time.Hour)
	defer c.Close()

	c.Put("a", expression.Result{}, time.Hour)
	c.Put("b", expression.Result{}, time.Hour)
	c.Get("a") // a is now most-recently-used; b is next to evict
	c.Put("c", expression.Result{}, time.Hour)

	if _, ok := c.Get("b"); ok {
		t.Fatal("expected b to be evicted as least-recently-used")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected a to survive eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("expected c to survive as the newest entry")
	}
}

func TestInvalidateByGenomeHashPrefix(t *testing.T) {
	c := New(10, time.Hour)
	defer c.Close()

	c.Put("aaaa0000envdigest", expression.Result{}, time.Hour)
	c.Put("bbbb0000envdigest", expression.Result{}, time.Hour)

	removed := c.Invalidate(InvalidateOptions{GenomeHashPrefix: "aaaa"})
	if removed != 1 {
		t.Fatalf("expected 1 entry removed, got %d", removed)
	}
	if _, ok := c.Get("bbbb0000envdigest"); !ok {
		t.Fatal("entry not matching the prefix should survive")
	}
}

func TestGetOrComputeDedupesConcurrentCalls(t *testing.T) {
	c := New(10, time.Hour)
	defer c.Close()

	var calls int
	started := make(chan struct{})
	release := make(chan struct{})
	compute := func() expression.Result {
		calls++
		close(started)
		<-release
		return expression.Result{TotalMetabolicCost: 1}
	}

	secondComputed := false
	results := make(chan expression.Result, 2)
	go func() { results <- c.GetOrCompute("k", time.Hour, compute) }()
	<-started
	go func() {
		results <- c.GetOrCompute("k", time.Hour, func() expression.Result {
			secondComputed = true
			return expression.Result{}
		})
	}()

	close(release)
	r1 := <-results
	r2 := <-results
	if secondComputed {
		t.Fatal("second caller should not recompute while the first is in flight")
	}
	if calls != 1 {
		t.Fatalf("expected exactly 1 compute call, got %d", calls)
	}
	if r1.TotalMetabolicCost != r2.TotalMetabolicCost {
		t.Fatal("both callers should observe the same computed result")
	}
}

func TestStatsReportHitsAndMisses(t *testing.T) {
	c := New(10, time.Hour)
	defer c.Close()

	c.Get("missing")
	c.Put("k", expression.Result{}, time.Hour)
	c.Get("k")

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("expected 1 hit and 1 miss, got %+v", stats)
	}
	if stats.Size != 1 {
		t.Fatalf("expected size 1, got %d", stats.Size)
	}
}
