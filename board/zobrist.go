package board

import "math/rand"

// Zobrist keys. The seed is fixed so that a position always maps to the
// same key across processes.
var (
	zobristConstantPiece     [13][Width * Height]uint64
	zobristConstantCastle    [16]uint64
	zobristConstantEnPassant [Width]uint64
	zobristConstantSideBlack uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x7C3A9EB1D4F50216))
	for p := WhitePawn; p <= BlackKing; p++ {
		for sq := 0; sq < Width*Height; sq++ {
			zobristConstantPiece[p][sq] = rng.Uint64()
		}
	}
	for cr := range zobristConstantCastle {
		zobristConstantCastle[cr] = rng.Uint64()
	}
	for f := range zobristConstantEnPassant {
		zobristConstantEnPassant[f] = rng.Uint64()
	}
	zobristConstantSideBlack = rng.Uint64()
}

func (b *Board) computeHash() uint64 {
	var h uint64
	for sq, p := range b.cells {
		if p != PieceNone {
			h ^= zobristConstantPiece[p][sq]
		}
	}
	h ^= zobristConstantCastle[b.castleRights]
	if b.enPassant != SquareNone {
		h ^= zobristConstantEnPassant[b.enPassant.File()]
	}
	if b.turn == SideBlack {
		h ^= zobristConstantSideBlack
	}
	return h
}
