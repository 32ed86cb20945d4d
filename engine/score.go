package engine

import (
	"fmt"
	"math"
)

// Score is a centipawn evaluation from the side-to-move's perspective.
// The top and bottom 255 values below the infinities form the mate bands:
// ScoreMate-1 is mate in 1 ply, ScoreMate-2 mate in 2 plies, and so on.
// Mate scores are node-relative; IncrementMatePlies shifts them one ply
// toward zero as they are handed up a level, which keeps cached scores
// valid at any node without translation.
type Score int16

const (
	ScoreInfinite Score = math.MaxInt16
	ScoreMate     Score = ScoreInfinite - 1
	ScoreMated    Score = -ScoreMate
	ScoreDraw     Score = 0

	mateRangeBottom = ScoreMate - 255
	matedRangeTop   = ScoreMated + 255
)

func (s Score) IsMate() bool {
	return s > mateRangeBottom || s < matedRangeTop
}

func (s Score) IncrementMatePlies() Score {
	switch {
	case s > mateRangeBottom:
		return s - 1
	case s < matedRangeTop:
		return s + 1
	default:
		return s
	}
}

// UCI renders the score as "cp <n>" or "mate <n>", mate distance in full
// moves and negative when the side to move is being mated.
func (s Score) UCI() string {
	switch {
	case s > mateRangeBottom:
		return fmt.Sprintf("mate %d", (int(ScoreMate)-int(s)+1)/2)
	case s < matedRangeTop:
		return fmt.Sprintf("mate %d", (int(ScoreMated)-int(s))/2)
	default:
		return fmt.Sprintf("cp %d", int(s))
	}
}

func (s Score) String() string {
	switch {
	case s == ScoreInfinite:
		return "+inf"
	case s == -ScoreInfinite:
		return "-inf"
	case s > mateRangeBottom:
		return fmt.Sprintf("#+%d", (int(ScoreMate)-int(s)+1)/2)
	case s < matedRangeTop:
		return fmt.Sprintf("#-%d", (int(ScoreMated)-int(s))/2)
	case s > 0:
		return fmt.Sprintf("+%.2f", float64(s)/100)
	case s < 0:
		return fmt.Sprintf("%.2f", float64(s)/100)
	default:
		return "0"
	}
}
