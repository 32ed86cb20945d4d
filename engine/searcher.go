package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/tempo-chess/tempo/board"
)

var ErrAlreadySearching = errors.New("a search is already running")

// Searcher runs one Engine search at a time on its own goroutine. Start
// rejects overlapping searches; Stop requests termination and returns
// immediately, the search winding down on its own schedule. The terminal
// callback fires exactly once per accepted Start.
type Searcher struct {
	engine *Engine

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	result  SearchResult
	err     error
}

func NewSearcher(engine *Engine) *Searcher {
	s := &Searcher{
		engine: engine,
		done:   make(chan struct{}),
	}
	close(s.done)
	return s
}

// Start launches a search on a snapshot of b and returns once it is
// running. bestMove receives the final move when the search ends for any
// reason.
func (s *Searcher) Start(ctx context.Context, b *board.Board, cfg *SearchConfig, bestMove func(board.Move)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAlreadySearching
	}

	ctx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})

	snapshot := b.Clone()
	go func() {
		defer cancel()
		result, err := s.engine.Search(ctx, snapshot, cfg)

		s.mu.Lock()
		s.result = result
		s.err = err
		s.running = false
		done := s.done
		s.mu.Unlock()

		if bestMove != nil {
			bestMove(result.Move)
		}
		close(done)
	}()
	return nil
}

// Stop requests that the running search terminate. It never blocks and
// is a no-op when idle.
func (s *Searcher) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the current search, if any, has ended.
func (s *Searcher) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	<-done
}

func (s *Searcher) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Result returns the outcome of the most recently ended search.
func (s *Searcher) Result() (SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err
}
