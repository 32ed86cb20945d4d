package engine

import (
	"testing"

	"github.com/tempo-chess/tempo/board"
)

func TestTranspositionTableProbeStore(t *testing.T) {
	t.Parallel()

	tt := NewTranspositionTable(1 << 10)
	mv := board.Move{From: board.E2, To: board.E4}
	tt.Store(0xDEADBEEF, 5, 120, BoundExact, mv)

	entry, ok := tt.Probe(0xDEADBEEF)
	if !ok {
		t.Fatal("expected hit")
	}
	if entry.Key != 0xDEADBEEF || entry.Depth != 5 || entry.Score != 120 ||
		entry.Bound != BoundExact || !entry.Move.Equals(mv) {
		t.Errorf("unexpected entry: got=%+v", entry)
	}

	if _, ok := tt.Probe(0xCAFEBABE); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestTranspositionTableCollision(t *testing.T) {
	t.Parallel()

	tt := NewTranspositionTable(4)
	if tt.Capacity() != 4 {
		t.Fatalf("unexpected capacity: got=%d want=4", tt.Capacity())
	}

	// Both keys truncate to slot 1.
	tt.Store(0x01, 5, 120, BoundExact, board.Move{From: board.E2, To: board.E4})
	if _, ok := tt.Probe(0x05); ok {
		t.Error("expected colliding key to miss")
	}
	if _, ok := tt.Probe(0x01); !ok {
		t.Error("expected stored key to hit")
	}
}

func TestTranspositionTableReplacement(t *testing.T) {
	t.Parallel()
	mv1 := board.Move{From: board.E2, To: board.E4}
	mv2 := board.Move{From: board.D2, To: board.D4}

	// Single-slot table: every key maps to the same entry.
	t.Run("deeper entry kept", func(t *testing.T) {
		t.Parallel()
		tt := NewTranspositionTable(1)
		tt.Store(0x01, 5, 100, BoundExact, mv1)
		tt.Store(0x02, 3, 200, BoundExact, mv2)
		if _, ok := tt.Probe(0x01); !ok {
			t.Error("expected deeper entry to survive")
		}
		if _, ok := tt.Probe(0x02); ok {
			t.Error("expected shallower entry to be rejected")
		}
	})

	t.Run("equal depth different key kept", func(t *testing.T) {
		t.Parallel()
		tt := NewTranspositionTable(1)
		tt.Store(0x01, 3, 100, BoundExact, mv1)
		tt.Store(0x02, 3, 200, BoundExact, mv2)
		if _, ok := tt.Probe(0x01); !ok {
			t.Error("expected incumbent entry to survive")
		}
	})

	t.Run("equal depth same key refreshed", func(t *testing.T) {
		t.Parallel()
		tt := NewTranspositionTable(1)
		tt.Store(0x01, 3, 100, BoundUpper, mv1)
		tt.Store(0x01, 3, 200, BoundExact, mv2)
		entry, ok := tt.Probe(0x01)
		if !ok {
			t.Fatal("expected hit")
		}
		if entry.Score != 200 || entry.Bound != BoundExact || !entry.Move.Equals(mv2) {
			t.Errorf("expected refreshed entry: got=%+v", entry)
		}
	})

	t.Run("shallower entry overwritten", func(t *testing.T) {
		t.Parallel()
		tt := NewTranspositionTable(1)
		tt.Store(0x01, 3, 100, BoundExact, mv1)
		tt.Store(0x02, 5, 200, BoundExact, mv2)
		if _, ok := tt.Probe(0x02); !ok {
			t.Error("expected deeper entry to replace")
		}
	})

	t.Run("older generation overwritten", func(t *testing.T) {
		t.Parallel()
		tt := NewTranspositionTable(1)
		tt.Store(0x01, 9, 100, BoundExact, mv1)
		tt.NewGeneration()
		tt.Store(0x02, 1, 200, BoundExact, mv2)
		if _, ok := tt.Probe(0x02); !ok {
			t.Error("expected stale entry to be replaced regardless of depth")
		}
	})

	t.Run("stale entry stays probeable", func(t *testing.T) {
		t.Parallel()
		tt := NewTranspositionTable(1)
		tt.Store(0x01, 9, 100, BoundExact, mv1)
		tt.NewGeneration()
		if _, ok := tt.Probe(0x01); !ok {
			t.Error("expected stale entry to remain probeable until replaced")
		}
	})
}

func TestTranspositionTableCapacity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		size uint64
		want int
	}{
		{name: "exact power of two", size: 1 << 10, want: 1 << 10},
		{name: "rounded down", size: 1000, want: 512},
		{name: "minimum", size: 1, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NewTranspositionTable(tt.size).Capacity(); got != tt.want {
				t.Errorf("unexpected capacity: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestTranspositionTableBounded(t *testing.T) {
	t.Parallel()

	tt := NewTranspositionTable(1 << 8)
	for key := uint64(0); key < 1<<12; key++ {
		tt.Store(key, uint8(key%8), Score(key), BoundExact, board.Move{From: board.E2, To: board.E4})
	}
	if tt.Filled() > tt.Capacity() {
		t.Errorf("occupancy exceeds capacity: filled=%d capacity=%d", tt.Filled(), tt.Capacity())
	}
}

func TestTranspositionTableClear(t *testing.T) {
	t.Parallel()

	tt := NewTranspositionTable(1 << 8)
	tt.Store(0x01, 5, 100, BoundExact, board.Move{From: board.E2, To: board.E4})
	tt.NewGeneration()
	tt.Clear()
	if _, ok := tt.Probe(0x01); ok {
		t.Error("expected cleared table to miss")
	}
	if got := tt.Filled(); got != 0 {
		t.Errorf("unexpected occupancy after clear: got=%d", got)
	}
}
