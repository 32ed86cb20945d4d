package board

import "testing"

func TestApplyUnapply(t *testing.T) {
	t.Parallel()
	tests := []string{
		DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	}

	for _, fen := range tests {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()

			b, err := NewBoard(WithFEN(fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			wantHash, wantFEN := b.Hash(), b.FEN()

			for _, mv := range b.GeneratePseudoLegalMoves() {
				unapply, _ := b.Apply(mv)
				unapply()
				if gotHash := b.Hash(); gotHash != wantHash {
					t.Fatalf("hash not restored after %s: got=%x want=%x", mv, gotHash, wantHash)
				}
				if gotFEN := b.FEN(); gotFEN != wantFEN {
					t.Fatalf("state not restored after %s: got=%s want=%s", mv, gotFEN, wantFEN)
				}
			}
		})
	}
}

func TestApplyCastle(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(WithFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	mv, err := b.ParseMove("e1g1")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, ok := b.Apply(mv); !ok {
		t.Fatal("castling unexpectedly illegal")
	}
	if got := b.Get(G1); got != WhiteKing {
		t.Errorf("king not on g1: got=%v", got)
	}
	if got := b.Get(F1); got != WhiteRook {
		t.Errorf("rook not on f1: got=%v", got)
	}
	if b.CastleRights().IsAllowed(CastleWhiteKing) || b.CastleRights().IsAllowed(CastleWhiteQueen) {
		t.Error("white castle rights not cleared")
	}
	if !b.CastleRights().IsAllowed(CastleBlackKing) || !b.CastleRights().IsAllowed(CastleBlackQueen) {
		t.Error("black castle rights unexpectedly cleared")
	}
}

func TestApplyEnPassant(t *testing.T) {
	t.Parallel()

	// after d7d5 the white e5 pawn may capture en passant on d6
	b, err := NewBoard(WithFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	mv, err := b.ParseMove("e5d6")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, ok := b.Apply(mv); !ok {
		t.Fatal("en passant capture unexpectedly illegal")
	}
	if got := b.Get(D6); got != WhitePawn {
		t.Errorf("capturing pawn not on d6: got=%v", got)
	}
	if got := b.Get(D5); got != PieceNone {
		t.Errorf("captured pawn still on d5: got=%v", got)
	}
}

func TestApplyPromotion(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(WithFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	mv, err := b.ParseMove("a7a8q")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, ok := b.Apply(mv); !ok {
		t.Fatal("promotion unexpectedly illegal")
	}
	if got := b.Get(A8); got != WhiteQueen {
		t.Errorf("promoted piece not a queen: got=%v", got)
	}
}

func TestIsKingChecked(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		side Side
		want bool
	}{
		{name: "start position", fen: DefaultStartingPositionFEN, side: SideWhite, want: false},
		{name: "rook check", fen: "k7/8/8/8/8/8/8/r3K3 w - - 0 1", side: SideWhite, want: true},
		{name: "knight check", fen: "k7/8/8/8/8/3n4/8/4K3 w - - 0 1", side: SideWhite, want: true},
		{name: "pawn check", fen: "k7/8/8/8/8/8/3p4/4K3 w - - 0 1", side: SideWhite, want: true},
		{name: "bishop check", fen: "k7/8/8/b7/8/8/8/4K3 w - - 0 1", side: SideWhite, want: true},
		{name: "blocked rook", fen: "k7/8/8/8/8/8/8/rP2K3 w - - 0 1", side: SideWhite, want: false},
		{name: "black checked", fen: "k7/8/2N5/8/8/8/8/4K3 b - - 0 1", side: SideBlack, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := NewBoard(WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := b.IsKingChecked(tt.side); got != tt.want {
				t.Errorf("unexpected check state: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestGenerateLegalMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{name: "start position", fen: DefaultStartingPositionFEN, want: 20},
		{name: "checkmate", fen: "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", want: 0},
		{name: "stalemate", fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", want: 0},
		{name: "pinned rook", fen: "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1", want: 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := NewBoard(WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := len(b.GenerateLegalMoves()); got != tt.want {
				t.Errorf("unexpected legal move count: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, err := b.ParseMove("e2e4"); err != nil {
		t.Error("unexpected error:", err)
	}
	if _, err := b.ParseMove("e2e5"); err == nil {
		t.Error("error expected: got=nil")
	}
	if _, err := b.ParseMove("junk"); err == nil {
		t.Error("error expected: got=nil")
	}
}
