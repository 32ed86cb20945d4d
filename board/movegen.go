package board

var (
	rookDirections   = [4]int8{-8, 8, -1, 1}
	bishopDirections = [4]int8{-9, -7, 7, 9}
	queenDirections  = [8]int8{-8, 8, -1, 1, -9, -7, 7, 9}
	knightDirections = [8]int8{-17, -15, -10, -6, 6, 10, 15, 17}
	kingDirections   = [8]int8{-9, -8, -7, -1, 1, 7, 8, 9}

	promotionKinds = [4]PieceKind{KindQueen, KindRook, KindBishop, KindKnight}
)

// GeneratePseudoLegalMoves generates moves without verifying that the
// mover's king is left safe; legality is resolved by Apply's ok result.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	mvs := make([]Move, 0, 48)
	us := b.turn
	for sq := Square(0); sq < Width*Height; sq++ {
		p := b.cells[sq]
		if !p.IsSide(us) {
			continue
		}
		switch p.Kind() {
		case KindPawn:
			mvs = b.generatePawnMoves(sq, us, mvs)
		case KindKnight:
			mvs = b.generateStepMoves(sq, us, knightDirections[:], mvs)
		case KindBishop:
			mvs = b.generateSlidingMoves(sq, us, bishopDirections[:], mvs)
		case KindRook:
			mvs = b.generateSlidingMoves(sq, us, rookDirections[:], mvs)
		case KindQueen:
			mvs = b.generateSlidingMoves(sq, us, queenDirections[:], mvs)
		case KindKing:
			mvs = b.generateStepMoves(sq, us, kingDirections[:], mvs)
			mvs = b.generateCastleMoves(sq, us, mvs)
		}
	}
	return mvs
}

// GenerateLegalMoves filters the pseudo-legal set through make/unmake.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		unapply, ok := b.Apply(mv)
		unapply()
		if ok {
			legal = append(legal, mv)
		}
	}
	return legal
}

func (b *Board) generatePawnMoves(sq Square, us Side, mvs []Move) []Move {
	forward, startRank, promotionRank := int8(Width), 1, 7
	if us == SideBlack {
		forward, startRank, promotionRank = -Width, 6, 0
	}

	appendPawnMove := func(to Square) {
		if to.Rank() == promotionRank {
			for _, k := range promotionKinds {
				mvs = append(mvs, Move{From: sq, To: to, Promotion: k})
			}
		} else {
			mvs = append(mvs, Move{From: sq, To: to})
		}
	}

	to := sq + Square(forward)
	if to.IsValid() && b.cells[to] == PieceNone {
		appendPawnMove(to)
		if sq.Rank() == startRank {
			if to2 := sq + 2*Square(forward); b.cells[to2] == PieceNone {
				mvs = append(mvs, Move{From: sq, To: to2})
			}
		}
	}

	for _, df := range [2]int8{-1, 1} {
		to := sq + Square(forward+df)
		if !to.IsValid() || absDelta(to.File(), sq.File()) != 1 {
			continue
		}
		if b.cells[to].IsSide(us.Opposite()) || to == b.enPassant {
			appendPawnMove(to)
		}
	}
	return mvs
}

func (b *Board) generateStepMoves(sq Square, us Side, directions []int8, mvs []Move) []Move {
	for _, d := range directions {
		to := sq + Square(d)
		if !to.IsValid() || absDelta(to.File(), sq.File()) > 2 {
			continue
		}
		if !b.cells[to].IsSide(us) {
			mvs = append(mvs, Move{From: sq, To: to})
		}
	}
	return mvs
}

func (b *Board) generateSlidingMoves(sq Square, us Side, directions []int8, mvs []Move) []Move {
	for _, d := range directions {
		for from, to := sq, sq+Square(d); to.IsValid(); from, to = to, to+Square(d) {
			if absDelta(to.File(), from.File()) > 1 {
				break
			}
			target := b.cells[to]
			if target == PieceNone {
				mvs = append(mvs, Move{From: sq, To: to})
				continue
			}
			if target.Side() != us {
				mvs = append(mvs, Move{From: sq, To: to})
			}
			break
		}
	}
	return mvs
}

func (b *Board) generateCastleMoves(sq Square, us Side, mvs []Move) []Move {
	them := us.Opposite()
	if us == SideWhite && sq == E1 {
		if b.castleRights.IsAllowed(CastleWhiteKing) &&
			b.cells[F1] == PieceNone && b.cells[G1] == PieceNone &&
			!b.isAttacked(E1, them) && !b.isAttacked(F1, them) && !b.isAttacked(G1, them) {
			mvs = append(mvs, Move{From: E1, To: G1})
		}
		if b.castleRights.IsAllowed(CastleWhiteQueen) &&
			b.cells[D1] == PieceNone && b.cells[C1] == PieceNone && b.cells[B1] == PieceNone &&
			!b.isAttacked(E1, them) && !b.isAttacked(D1, them) && !b.isAttacked(C1, them) {
			mvs = append(mvs, Move{From: E1, To: C1})
		}
	} else if us == SideBlack && sq == E8 {
		if b.castleRights.IsAllowed(CastleBlackKing) &&
			b.cells[F8] == PieceNone && b.cells[G8] == PieceNone &&
			!b.isAttacked(E8, them) && !b.isAttacked(F8, them) && !b.isAttacked(G8, them) {
			mvs = append(mvs, Move{From: E8, To: G8})
		}
		if b.castleRights.IsAllowed(CastleBlackQueen) &&
			b.cells[D8] == PieceNone && b.cells[C8] == PieceNone && b.cells[B8] == PieceNone &&
			!b.isAttacked(E8, them) && !b.isAttacked(D8, them) && !b.isAttacked(C8, them) {
			mvs = append(mvs, Move{From: E8, To: C8})
		}
	}
	return mvs
}

// isAttacked reports whether sq is attacked by any piece of side by.
func (b *Board) isAttacked(sq Square, by Side) bool {
	pawnForward := int8(Width)
	if by == SideWhite {
		pawnForward = -Width // white pawns attack from below
	}
	for _, df := range [2]int8{-1, 1} {
		from := sq + Square(pawnForward+df)
		if from.IsValid() && absDelta(from.File(), sq.File()) == 1 &&
			b.cells[from] == NewPiece(by, KindPawn) {
			return true
		}
	}

	for _, d := range knightDirections {
		from := sq + Square(d)
		if from.IsValid() && absDelta(from.File(), sq.File()) <= 2 &&
			b.cells[from] == NewPiece(by, KindKnight) {
			return true
		}
	}

	for _, d := range kingDirections {
		from := sq + Square(d)
		if from.IsValid() && absDelta(from.File(), sq.File()) <= 1 &&
			b.cells[from] == NewPiece(by, KindKing) {
			return true
		}
	}

	rook, bishop, queen := NewPiece(by, KindRook), NewPiece(by, KindBishop), NewPiece(by, KindQueen)
	for _, d := range rookDirections {
		if p := b.firstPieceInDirection(sq, d); p == rook || p == queen {
			return true
		}
	}
	for _, d := range bishopDirections {
		if p := b.firstPieceInDirection(sq, d); p == bishop || p == queen {
			return true
		}
	}
	return false
}

func (b *Board) firstPieceInDirection(sq Square, d int8) Piece {
	for from, to := sq, sq+Square(d); to.IsValid(); from, to = to, to+Square(d) {
		if absDelta(to.File(), from.File()) > 1 {
			return PieceNone
		}
		if p := b.cells[to]; p != PieceNone {
			return p
		}
	}
	return PieceNone
}

func absDelta(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
