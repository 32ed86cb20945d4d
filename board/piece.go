package board

// PieceKind is a piece type without its owning side.
type PieceKind uint8

const (
	KindNone PieceKind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

func (k PieceKind) SymbolUCI() string {
	switch k {
	case KindKnight:
		return "n"
	case KindBishop:
		return "b"
	case KindRook:
		return "r"
	case KindQueen:
		return "q"
	}
	return ""
}

// Piece is a side-coloured piece as stored in board cells.
type Piece uint8

const (
	PieceNone Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

func NewPiece(s Side, k PieceKind) Piece {
	if k == KindNone {
		return PieceNone
	}
	if s == SideBlack {
		return Piece(k) + 6
	}
	return Piece(k)
}

func (p Piece) Side() Side {
	if p >= BlackPawn {
		return SideBlack
	}
	return SideWhite
}

func (p Piece) Kind() PieceKind {
	if p == PieceNone {
		return KindNone
	}
	if p >= BlackPawn {
		return PieceKind(p - 6)
	}
	return PieceKind(p)
}

func (p Piece) IsSide(s Side) bool {
	return p != PieceNone && p.Side() == s
}

var pieceSymbolsFEN = [13]string{
	"", "P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k",
}

func (p Piece) SymbolFEN() string {
	return pieceSymbolsFEN[p]
}

func NewPieceFromFEN(symbol rune) (Piece, bool) {
	for p := WhitePawn; p <= BlackKing; p++ {
		if rune(pieceSymbolsFEN[p][0]) == symbol {
			return p, true
		}
	}
	return PieceNone, false
}
