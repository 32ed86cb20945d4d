package bench

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tempo-chess/tempo/board"
)

// Perft counts leaf nodes of the legal move tree to the given depth. It
// exists to validate move generation against known vectors; with parallel
// set, root moves are counted concurrently on cloned boards.
func Perft(depth int, fen string, parallel, verbose bool, out chan<- string) (uint64, error) {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return 0, err
	}
	if depth < 1 {
		return 1, nil
	}

	mvs := b.GenerateLegalMoves()
	counts := make([]uint64, len(mvs))

	start := time.Now()
	if parallel {
		eg := errgroup.Group{}
		for i, mv := range mvs {
			i, mv := i, mv
			eg.Go(func() error {
				bb := b.Clone()
				unapply, _ := bb.Apply(mv)
				defer unapply()
				counts[i] = runPerft(bb, depth-1)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return 0, err
		}
	} else {
		for i, mv := range mvs {
			unapply, _ := b.Apply(mv)
			counts[i] = runPerft(b, depth-1)
			unapply()
		}
	}
	elapsed := time.Since(start)

	var nodes uint64
	for i, mv := range mvs {
		nodes += counts[i]
		if verbose && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), counts[i])
		}
	}
	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s (%.3fs elapsed)",
				depth, nodes, int(float64(nodes)/elapsed.Seconds()), elapsed.Seconds())
	}

	return nodes, nil
}

func runPerft(b *board.Board, d int) uint64 {
	if d == 0 {
		return 1
	}

	var sum uint64
	for _, mv := range b.GeneratePseudoLegalMoves() {
		unapply, ok := b.Apply(mv)
		if ok {
			if d == 1 {
				sum++
			} else {
				sum += runPerft(b, d-1)
			}
		}
		unapply()
	}
	return sum
}
