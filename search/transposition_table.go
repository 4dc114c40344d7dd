package search

import (
	"sync"
	"sync/atomic"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// DefaultMemFraction is the share of system memory the table may grow to.
const DefaultMemFraction = 0.05

// Rough size of one map slot: key, entry, and bucket overhead.
const entrySize = 48

// Never size the table below this many entries.
const minEntries = 1 << 16

// A TableEntry is a cached search score together with the remaining depth
// it was computed at. check is a digest of the board contents, used to
// detect two positions sharing a zobrist key.
type TableEntry struct {
	score int32
	depth int16
	check uint64
}

func (t TableEntry) Score() int {
	return int(t.score)
}

func (t TableEntry) Depth() int {
	return int(t.depth)
}

type TableLock interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type FakeLock struct{}

func (f FakeLock) Lock()    {}
func (f FakeLock) Unlock()  {}
func (f FakeLock) RLock()   {}
func (f FakeLock) RUnlock() {}

// TableStats are counters since the last Reset or Clear.
type TableStats struct {
	Entries    int
	Created    uint64
	Lookups    uint64
	Hits       uint64
	Collisions uint64
}

type TranspositionTable struct {
	TableLock
	table      map[uint64]TableEntry
	maxEntries int

	created atomic.Uint64
	lookups atomic.Uint64
	hits    atomic.Uint64
	// collisions counts lookups whose key matched but whose board digest
	// did not: two different positions with the same zobrist key.
	collisions atomic.Uint64
}

func NewTranspositionTable(fractionOfMemory float64) *TranspositionTable {
	t := &TranspositionTable{}
	t.SetSingleThreadedMode()
	t.Reset(fractionOfMemory)
	return t
}

func (t *TranspositionTable) SetSingleThreadedMode() {
	t.TableLock = &FakeLock{}
}

func (t *TranspositionTable) SetMultiThreadedMode() {
	t.TableLock = new(sync.RWMutex)
}

// Lookup returns the entry stored under zval if its digest matches check.
func (t *TranspositionTable) Lookup(zval, check uint64) (TableEntry, bool) {
	t.RLock()
	defer t.RUnlock()
	t.lookups.Add(1)
	entry, ok := t.table[zval]
	if !ok {
		return TableEntry{}, false
	}
	if entry.check != check {
		t.collisions.Add(1)
		return TableEntry{}, false
	}
	t.hits.Add(1)
	return entry, true
}

// Store records score for zval. An existing entry is only replaced by one
// searched at least as deep. Once the table is full no new keys are added.
func (t *TranspositionTable) Store(zval, check uint64, score, depth int) {
	t.Lock()
	defer t.Unlock()
	old, ok := t.table[zval]
	if ok && depth < int(old.depth) {
		return
	}
	if !ok && len(t.table) >= t.maxEntries {
		return
	}
	t.table[zval] = TableEntry{score: int32(score), depth: int16(depth), check: check}
	t.created.Add(1)
}

// Clear drops every entry but keeps the table's capacity.
func (t *TranspositionTable) Clear() {
	t.Lock()
	defer t.Unlock()
	clear(t.table)
	t.resetCounters()
}

// Reset sizes the table to a fraction of total system memory and empties it.
func (t *TranspositionTable) Reset(fractionOfMemory float64) {
	t.Lock()
	defer t.Unlock()
	totalMem := memory.TotalMemory()
	desired := int(fractionOfMemory * float64(totalMem) / entrySize)
	if desired < minEntries {
		desired = minEntries
	}
	t.maxEntries = desired
	if t.table == nil {
		t.table = make(map[uint64]TableEntry)
	} else {
		clear(t.table)
	}
	log.Debug().Int("max-entries", t.maxEntries).
		Int("estimated-max-bytes", t.maxEntries*entrySize).
		Uint64("total-system-memory-bytes", totalMem).
		Msg("transposition-table-size")
	t.resetCounters()
}

func (t *TranspositionTable) resetCounters() {
	t.created.Store(0)
	t.lookups.Store(0)
	t.hits.Store(0)
	t.collisions.Store(0)
}

func (t *TranspositionTable) Len() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.table)
}

func (t *TranspositionTable) Stats() TableStats {
	return TableStats{
		Entries:    t.Len(),
		Created:    t.created.Load(),
		Lookups:    t.lookups.Load(),
		Hits:       t.hits.Load(),
		Collisions: t.collisions.Load(),
	}
}
