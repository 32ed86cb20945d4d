package board

// Move is immutable once generated; application state needed to unwind a
// move lives in the closure returned by Board.Apply.
type Move struct {
	From, To  Square
	Promotion PieceKind
}

func (m Move) IsNull() bool {
	return m.From == m.To
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	return m.From.Notation() + m.To.Notation() + m.Promotion.SymbolUCI()
}

func (m Move) String() string {
	return m.UCI()
}
