package board

type Side uint8

const (
	SideWhite Side = iota
	SideBlack
)

func (s Side) Opposite() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == SideWhite {
		return "White"
	}
	return "Black"
}
