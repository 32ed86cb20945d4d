package engine

import (
	"github.com/tempo-chess/tempo/board"
)

type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

const DefaultTableSize = 1 << 22 // number of entries

// Entry is a cached search result for one position key.
type Entry struct {
	Key   uint64
	Move  board.Move
	Score Score
	Depth uint8
	Bound Bound

	generation uint8
}

// TranspositionTable is a fixed-capacity map from position key to Entry.
// Slots are addressed by key truncation; the full key is verified on
// probe, so an index collision degrades to a miss. Capacity is bounded by
// construction and entries are only reclaimed by replacement.
//
// The table is written by the single active search only; it must not be
// shared between concurrently running searches.
type TranspositionTable struct {
	entries    []Entry
	maskKey    uint64
	generation uint8

	// stats
	hits   int
	misses int
	writes int
}

// NewTranspositionTable allocates a table of the largest power-of-two
// entry count not exceeding size.
func NewTranspositionTable(size uint64) *TranspositionTable {
	capacity := uint64(1)
	for capacity<<1 <= size {
		capacity <<= 1
	}
	return &TranspositionTable{
		entries: make([]Entry, capacity),
		maskKey: capacity - 1,
	}
}

// Probe returns the cached entry for key. A stored key mismatch is a
// detected collision and reported as a miss, never an error.
func (t *TranspositionTable) Probe(key uint64) (Entry, bool) {
	e := &t.entries[key&t.maskKey]
	if e.Bound == BoundNone || e.Key != key {
		t.misses++
		return Entry{}, false
	}
	t.hits++
	return *e, true
}

// Store caches a finished subtree result under the replace-if-not-worse
// policy: empty slots, older generations and shallower results are
// overwritten; a same-key result of equal depth refreshes the entry; an
// equal-or-deeper current-generation result for a different key is kept.
func (t *TranspositionTable) Store(key uint64, depth uint8, score Score, bound Bound, bestMove board.Move) {
	e := &t.entries[key&t.maskKey]
	if e.Bound != BoundNone && e.generation == t.generation {
		if e.Depth > depth || (e.Depth == depth && e.Key != key) {
			return // do not downgrade quality
		}
	}
	t.writes++
	*e = Entry{
		Key:        key,
		Move:       bestMove,
		Score:      score,
		Depth:      depth,
		Bound:      bound,
		generation: t.generation,
	}
}

// NewGeneration ages all existing entries by one search. Stale entries
// stay probeable as heuristic hints until replacement evicts them.
func (t *TranspositionTable) NewGeneration() {
	t.generation++
}

func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.generation = 0
}

func (t *TranspositionTable) Capacity() int {
	return len(t.entries)
}

func (t *TranspositionTable) Filled() int {
	filled := 0
	for i := range t.entries {
		if t.entries[i].Bound != BoundNone {
			filled++
		}
	}
	return filled
}

func (t *TranspositionTable) ResetStats() {
	t.hits = 0
	t.misses = 0
	t.writes = 0
}

func (t *TranspositionTable) Stats() (hits, misses, writes int) {
	return t.hits, t.misses, t.writes
}
