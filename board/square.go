package board

import "fmt"

const (
	Width  = 8
	Height = 8
)

// Square indexes a cell on the board, A1=0 through H8=63.
type Square int8

const SquareNone Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

func SquareAt(rank, file int) Square {
	return Square(rank*Width + file)
}

func (sq Square) Rank() int {
	return int(sq) / Width
}

func (sq Square) File() int {
	return int(sq) % Width
}

func (sq Square) IsValid() bool {
	return sq >= 0 && sq < Width*Height
}

func (sq Square) Notation() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

func NewSquareFromNotation(nt string) (Square, error) {
	if len(nt) != 2 || nt[0] < 'a' || nt[0] > 'h' || nt[1] < '1' || nt[1] > '8' {
		return SquareNone, fmt.Errorf("invalid square notation '%s'", nt)
	}
	return SquareAt(int(nt[1]-'1'), int(nt[0]-'a')), nil
}
