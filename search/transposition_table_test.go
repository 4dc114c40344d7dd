package search

import (
	"testing"

	"github.com/matryer/is"
)

func TestTranspositionTableLookup(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(DefaultMemFraction)

	_, ok := tt.Lookup(1234, 99)
	is.True(!ok)

	tt.Store(1234, 99, -750, 2)
	te, ok := tt.Lookup(1234, 99)
	is.True(ok)
	is.Equal(te.Score(), -750)
	is.Equal(te.Depth(), 2)

	// same key, different board: a detected collision.
	te, ok = tt.Lookup(1234, 100)
	is.True(!ok)
	is.Equal(te, TableEntry{})

	stats := tt.Stats()
	is.Equal(stats.Lookups, uint64(3))
	is.Equal(stats.Hits, uint64(1))
	is.Equal(stats.Collisions, uint64(1))
	is.Equal(stats.Entries, 1)
}

func TestTranspositionTableKeepsDeeperEntries(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(DefaultMemFraction)

	tt.Store(7, 1, 100, 2)
	tt.Store(7, 1, 300, 1)
	te, _ := tt.Lookup(7, 1)
	is.Equal(te.Score(), 100)

	tt.Store(7, 1, 200, 2)
	te, _ = tt.Lookup(7, 1)
	is.Equal(te.Score(), 200)

	tt.Store(7, 1, -5, 3)
	te, _ = tt.Lookup(7, 1)
	is.Equal(te.Score(), -5)
	is.Equal(te.Depth(), 3)
}

func TestTranspositionTableCapacity(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(DefaultMemFraction)
	tt.maxEntries = 2

	tt.Store(1, 1, 10, 1)
	tt.Store(2, 2, 20, 1)
	tt.Store(3, 3, 30, 1)
	is.Equal(tt.Len(), 2)
	_, ok := tt.Lookup(3, 3)
	is.True(!ok)

	// known keys can still be deepened.
	tt.Store(2, 2, 25, 2)
	te, ok := tt.Lookup(2, 2)
	is.True(ok)
	is.Equal(te.Score(), 25)
}

func TestTranspositionTableClear(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(DefaultMemFraction)
	tt.Store(1, 1, 10, 1)
	tt.Lookup(1, 1)
	tt.Clear()
	is.Equal(tt.Len(), 0)
	is.Equal(tt.Stats(), TableStats{})
	_, ok := tt.Lookup(1, 1)
	is.True(!ok)
}

func TestTranspositionTableMultiThreaded(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(DefaultMemFraction)
	tt.SetMultiThreadedMode()
	defer tt.SetSingleThreadedMode()

	done := make(chan bool)
	for w := 0; w < 4; w++ {
		go func(w int) {
			for i := 0; i < 1000; i++ {
				key := uint64(w*1000 + i)
				tt.Store(key, key, i, 1)
				tt.Lookup(key, key)
			}
			done <- true
		}(w)
	}
	for w := 0; w < 4; w++ {
		<-done
	}
	is.Equal(tt.Len(), 4000)
	is.Equal(tt.Stats().Hits, uint64(4000))
}
