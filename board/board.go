package board

import (
	"fmt"
)

const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type CastleRights uint8

const (
	CastleWhiteKing CastleRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

func (cr CastleRights) IsAllowed(right CastleRights) bool {
	return cr&right != 0
}

// Board is a mailbox position representation. It owns move legality,
// make/unmake and the Zobrist key consumed by the search core.
type Board struct {
	cells        [Width * Height]Piece
	kings        [2]Square
	turn         Side
	castleRights CastleRights
	enPassant    Square

	halfMoveClock uint8
	fullMoveClock uint16
	hash          uint64
}

type Option func(*options)

type options struct {
	fen string
}

func WithFEN(fen string) Option {
	return func(o *options) {
		o.fen = fen
	}
}

func NewBoard(opts ...Option) (*Board, error) {
	o := &options{fen: DefaultStartingPositionFEN}
	for _, opt := range opts {
		opt(o)
	}

	b := &Board{}
	if err := UnmarshalFEN(o.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) Hash() uint64 {
	return b.hash
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) EnPassantTarget() Square {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint8 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

func (b *Board) IsKingChecked(s Side) bool {
	return b.isAttacked(b.kings[s], s.Opposite())
}

// Apply mutates the board by mv and returns the paired unapply closure.
// ok is false when the move leaves the mover's own king in check; the
// caller must still invoke unapply to restore the prior state.
func (b *Board) Apply(mv Move) (unapply func(), ok bool) {
	prev := *b
	unapply = func() { *b = prev }

	us := b.turn
	p := b.cells[mv.From]

	captured := b.cells[mv.To]
	if p.Kind() == KindPawn && mv.To == b.enPassant {
		// en passant removes the pawn behind the target square
		if us == SideWhite {
			b.cells[mv.To-Width] = PieceNone
		} else {
			b.cells[mv.To+Width] = PieceNone
		}
		captured = NewPiece(us.Opposite(), KindPawn)
	}

	b.cells[mv.To] = p
	b.cells[mv.From] = PieceNone
	if mv.Promotion != KindNone {
		b.cells[mv.To] = NewPiece(us, mv.Promotion)
	}

	if p.Kind() == KindKing {
		b.kings[us] = mv.To
		switch {
		case mv.From == E1 && mv.To == G1:
			b.cells[F1], b.cells[H1] = WhiteRook, PieceNone
		case mv.From == E1 && mv.To == C1:
			b.cells[D1], b.cells[A1] = WhiteRook, PieceNone
		case mv.From == E8 && mv.To == G8:
			b.cells[F8], b.cells[H8] = BlackRook, PieceNone
		case mv.From == E8 && mv.To == C8:
			b.cells[D8], b.cells[A8] = BlackRook, PieceNone
		}
	}

	switch mv.From {
	case E1:
		b.castleRights &^= CastleWhiteKing | CastleWhiteQueen
	case E8:
		b.castleRights &^= CastleBlackKing | CastleBlackQueen
	}
	for _, sq := range [2]Square{mv.From, mv.To} {
		switch sq {
		case A1:
			b.castleRights &^= CastleWhiteQueen
		case H1:
			b.castleRights &^= CastleWhiteKing
		case A8:
			b.castleRights &^= CastleBlackQueen
		case H8:
			b.castleRights &^= CastleBlackKing
		}
	}

	b.enPassant = SquareNone
	if p.Kind() == KindPawn {
		switch {
		case us == SideWhite && mv.To-mv.From == 2*Width:
			b.enPassant = mv.From + Width
		case us == SideBlack && mv.From-mv.To == 2*Width:
			b.enPassant = mv.From - Width
		}
	}

	if captured != PieceNone || p.Kind() == KindPawn {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if us == SideBlack {
		b.fullMoveClock++
	}

	b.turn = us.Opposite()
	b.hash = b.computeHash()

	return unapply, !b.IsKingChecked(us)
}

// ParseMove resolves a UCI move string against the current legal moves.
func (b *Board) ParseMove(uci string) (Move, error) {
	for _, mv := range b.GenerateLegalMoves() {
		if mv.UCI() == uci {
			return mv, nil
		}
	}
	return Move{}, fmt.Errorf("move '%s' is not legal in this position", uci)
}

func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}
