package engine

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tempo-chess/tempo/board"
)

var messagePrinter = message.NewPrinter(language.English)

type EngineConfig struct {
	// TableSize is the transposition table capacity in entries; zero
	// selects DefaultTableSize.
	TableSize uint64
	Logger    func(v ...any)
}

type SearchConfig struct {
	ClockConfig ClockConfig
	Debug       bool

	// Progress, when set, receives the result of every completed
	// iteration in deepening order.
	Progress func(SearchResult)
}

// SearchResult is the outcome of one fully completed iteration. Move is
// null only when the searched position is already terminal.
type SearchResult struct {
	Move    board.Move
	Score   Score
	Depth   uint8
	Nodes   uint64
	Elapsed time.Duration
	PV      string
}

// PVLine is the principal variation accumulated during a search.
type PVLine struct {
	moves []board.Move
}

// GetPV returns the line's first move, the null move when empty.
func (pvl *PVLine) GetPV() board.Move {
	if len(pvl.moves) == 0 {
		return board.Move{}
	}
	return pvl.moves[0]
}

// Set replaces the line with mv followed by rest.
func (pvl *PVLine) Set(mv board.Move, rest *PVLine) {
	pvl.moves = append(pvl.moves[:0], mv)
	if rest != nil {
		pvl.moves = append(pvl.moves, rest.moves...)
	}
}

func (pvl *PVLine) Clear() {
	pvl.moves = pvl.moves[:0]
}

func (pvl *PVLine) Len() int {
	return len(pvl.moves)
}

func (pvl *PVLine) StringUCI() string {
	uci := make([]string, len(pvl.moves))
	for i, mv := range pvl.moves {
		uci[i] = mv.UCI()
	}
	return strings.Join(uci, " ")
}

// Engine searches one position at a time. It is not safe for concurrent
// Search calls; Searcher serializes access to it.
type Engine struct {
	tt    *TranspositionTable
	clock *Clock

	nodes       uint64
	forceFinish bool
	debug       bool
	logger      func(v ...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	size := cfg.TableSize
	if size == 0 {
		size = DefaultTableSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Println
	}
	return &Engine{
		tt:     NewTranspositionTable(size),
		clock:  NewClock(),
		logger: logger,
	}
}

// Reset discards all accumulated state, as for a new game.
func (e *Engine) Reset() {
	e.tt.Clear()
}

// ResizeTable replaces the transposition table with an empty one of the
// given capacity. Must not be called while a search is running.
func (e *Engine) ResizeTable(size uint64) {
	if size == 0 {
		size = DefaultTableSize
	}
	e.tt = NewTranspositionTable(size)
}

// Search runs iterative deepening on b until the clock expires, the
// configured depth is reached, ctx is cancelled or a mate is proven.
// Only fully completed iterations contribute to the returned result, so
// the best move never regresses to a partially searched line. The first
// iteration always runs to completion; a search that starts therefore
// always produces a move unless the position is terminal.
func (e *Engine) Search(ctx context.Context, b *board.Board, cfg *SearchConfig) (SearchResult, error) {
	e.debug = cfg.Debug
	e.tt.NewGeneration()
	e.tt.ResetStats()
	e.clock.Start(ctx, &cfg.ClockConfig)
	defer e.clock.Stop()

	var best SearchResult
	e.nodes = 0
	start := time.Now()
	for depth := uint8(1); !e.clock.DoneByDepth(depth); depth++ {
		e.forceFinish = depth == 1

		var pvl PVLine
		score := e.negamax(b, &pvl, depth, -ScoreInfinite, ScoreInfinite, true)
		if depth > 1 && e.clock.Done() {
			break // discard the aborted iteration
		}

		best = SearchResult{
			Move:    pvl.GetPV(),
			Score:   score,
			Depth:   depth,
			Nodes:   e.nodes,
			Elapsed: time.Since(start),
			PV:      pvl.StringUCI(),
		}
		if e.debug {
			hits, misses, writes := e.tt.Stats()
			e.logger(messagePrinter.Sprintf("depth=%d score=%s nodes=%d time=%s pv=[%s] tt: hits=%d misses=%d writes=%d",
				best.Depth, best.Score, best.Nodes, best.Elapsed.Round(time.Millisecond), best.PV, hits, misses, writes))
		}
		if cfg.Progress != nil {
			cfg.Progress(best)
		}

		if best.Move.IsNull() || best.Score.IsMate() || e.clock.Done() {
			break
		}
	}
	return best, nil
}

func (e *Engine) negamax(b *board.Board, pvl *PVLine, depth uint8, alpha, beta Score, root bool) Score {
	e.nodes++
	if !e.forceFinish && e.clock.Done() {
		return 0 // discarded by the caller
	}
	if depth == 0 {
		return e.Evaluate(b)
	}

	var hintMove board.Move
	if entry, ok := e.tt.Probe(b.Hash()); ok {
		hintMove = entry.Move
		if !root && entry.Depth >= depth {
			switch entry.Bound {
			case BoundExact:
				pvl.Set(entry.Move, nil)
				return entry.Score
			case BoundLower:
				if entry.Score >= beta {
					return entry.Score
				}
			case BoundUpper:
				if entry.Score <= alpha {
					return entry.Score
				}
			}
		}
	}

	mvs := b.GeneratePseudoLegalMoves()
	orderMoves(mvs, hintMove)

	var childPVL PVLine
	var bestMove board.Move
	bestScore := -ScoreInfinite
	bound := BoundUpper
	moveCount := 0
	for _, mv := range mvs {
		unapply, ok := b.Apply(mv)
		if !ok {
			unapply()
			continue
		}
		moveCount++
		childPVL.Clear()
		score := (-e.negamax(b, &childPVL, depth-1, -beta, -alpha, false)).IncrementMatePlies()
		unapply()

		if score > bestScore {
			bestScore, bestMove = score, mv
		}
		if score > alpha {
			alpha = score
			bound = BoundExact
			pvl.Set(mv, &childPVL)
		}
		if alpha >= beta {
			bound = BoundLower
			break
		}
	}

	if moveCount == 0 {
		if b.IsKingChecked(b.Turn()) {
			return ScoreMated
		}
		return ScoreDraw
	}

	// An aborted subtree carries a garbage score; never cache it.
	if e.forceFinish || !e.clock.Done() {
		e.tt.Store(b.Hash(), depth, bestScore, bound, bestMove)
	}
	return bestScore
}

// orderMoves rotates the hint move to the front, keeping the relative
// order of the remaining moves.
func orderMoves(mvs []board.Move, hint board.Move) {
	if hint.IsNull() {
		return
	}
	for i, mv := range mvs {
		if mv.Equals(hint) {
			copy(mvs[1:i+1], mvs[:i])
			mvs[0] = hint
			return
		}
	}
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}
