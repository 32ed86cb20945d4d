package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidFEN = errors.New("invalid fen")

func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(strings.TrimSpace(fen), " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	*b = Board{enPassant: SquareNone}

	rows := strings.Split(segments[0], "/")
	if len(rows) != Height {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for rank := Height - 1; rank >= 0; rank-- {
		file := 0
		for _, cell := range rows[Height-1-rank] {
			if unicode.IsDigit(cell) {
				skip := int(cell - '0')
				if skip == 0 || file+skip > Width {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				file += skip
				continue
			}
			p, ok := NewPieceFromFEN(cell)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if file >= Width {
				return fmt.Errorf("%w: rank overflow", ErrInvalidFEN)
			}
			sq := SquareAt(rank, file)
			b.cells[sq] = p
			if p.Kind() == KindKing {
				b.kings[p.Side()] = sq
			}
			file++
		}
		if file != Width {
			return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	if b.cells[b.kings[SideWhite]] != WhiteKing || b.cells[b.kings[SideBlack]] != BlackKing {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	for i, e := range segments[2] {
		switch e {
		case 'K':
			b.castleRights |= CastleWhiteKing
		case 'Q':
			b.castleRights |= CastleWhiteQueen
		case 'k':
			b.castleRights |= CastleBlackKing
		case 'q':
			b.castleRights |= CastleBlackQueen
		case '-':
			if i != 0 || len(segments[2]) != 1 {
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
		default:
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		sq, err := NewSquareFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant square: %v", ErrInvalidFEN, err)
		}
		if r := sq.Rank(); r != 2 && r != 5 {
			return fmt.Errorf("%w: invalid enpassant square", ErrInvalidFEN)
		}
		b.enPassant = sq
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 8)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	b.halfMoveClock = uint8(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	b.fullMoveClock = uint16(fullMoveClock)

	b.hash = b.computeHash()
	return nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for rank := Height - 1; rank >= 0; rank-- {
		skip := 0
		for file := 0; file < Width; file++ {
			p := b.cells[SquareAt(rank, file)]
			if p == PieceNone {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if rank > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if b.castleRights.IsAllowed(CastleWhiteKing) {
			_, _ = builder.WriteRune('K')
		}
		if b.castleRights.IsAllowed(CastleWhiteQueen) {
			_, _ = builder.WriteRune('Q')
		}
		if b.castleRights.IsAllowed(CastleBlackKing) {
			_, _ = builder.WriteRune('k')
		}
		if b.castleRights.IsAllowed(CastleBlackQueen) {
			_, _ = builder.WriteRune('q')
		}
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %s %d %d", b.enPassant.Notation(), b.halfMoveClock, b.fullMoveClock))

	return builder.String(), nil
}
