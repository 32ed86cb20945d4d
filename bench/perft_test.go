package bench

import (
	"testing"

	"github.com/tempo-chess/tempo/board"
)

// Vectors from the chessprogramming wiki perft results.
func TestPerft(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{name: "startpos d1", fen: board.DefaultStartingPositionFEN, depth: 1, want: 20},
		{name: "startpos d2", fen: board.DefaultStartingPositionFEN, depth: 2, want: 400},
		{name: "startpos d3", fen: board.DefaultStartingPositionFEN, depth: 3, want: 8_902},
		{name: "startpos d4", fen: board.DefaultStartingPositionFEN, depth: 4, want: 197_281},
		{name: "kiwipete d1", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 1, want: 48},
		{name: "kiwipete d2", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 2, want: 2_039},
		{name: "kiwipete d3", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 3, want: 97_862},
		{name: "endgame d1", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 1, want: 14},
		{name: "endgame d2", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 2, want: 191},
		{name: "endgame d3", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 3, want: 2_812},
		{name: "endgame d4", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 4, want: 43_238},
		{name: "promotions d1", fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", depth: 1, want: 44},
		{name: "promotions d2", fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", depth: 2, want: 1_486},
		{name: "promotions d3", fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", depth: 3, want: 62_379},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Perft(tt.depth, tt.fen, false, false, nil)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got != tt.want {
				t.Errorf("unexpected node count: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestPerftParallel(t *testing.T) {
	t.Parallel()

	got, err := Perft(4, board.DefaultStartingPositionFEN, true, false, nil)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if want := uint64(197_281); got != want {
		t.Errorf("unexpected node count: got=%d want=%d", got, want)
	}
}
