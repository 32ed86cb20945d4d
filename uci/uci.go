package uci

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tempo-chess/tempo/bench"
	"github.com/tempo-chess/tempo/board"
	"github.com/tempo-chess/tempo/engine"
)

var (
	EngineName   = "Tempo"
	EngineAuthor = "The Tempo Authors"

	defaultOptions = options{
		debug:         false,
		movetime:      engine.DefaultMovetime,
		tableSize:     engine.DefaultTableSize,
		parallelPerft: true,
	}
)

type options struct {
	debug         bool
	movetime      time.Duration
	tableSize     uint64
	parallelPerft bool
}

// Interface drives the engine over the UCI text protocol on stdin and
// stdout. Commands are handled on the read loop; searches run on the
// searcher's goroutine and report back through info and bestmove lines.
type Interface struct {
	board    *board.Board
	engine   *engine.Engine
	searcher *engine.Searcher
	options  options
}

func NewInterface() *Interface {
	i := &Interface{
		options: defaultOptions,
	}
	i.engine = engine.NewEngine(&engine.EngineConfig{
		TableSize: i.options.tableSize,
		Logger:    i.println,
	})
	i.searcher = engine.NewSearcher(i.engine)
	return i
}

func (i *Interface) Run() error {
	ctx := context.Background()
	i.reset(ctx)

	reader := bufio.NewReader(os.Stdin)
	for {
		cmd, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		cmd = strings.TrimSpace(cmd)

		switch args := strings.Fields(cmd); true {
		case len(args) == 0:
		case args[0] == "uci":
			i.commandUCI(ctx)
		case args[0] == "ucinewgame":
			i.reset(ctx)
		case args[0] == "isready":
			i.commandReady(ctx)
		case args[0] == "setoption":
			i.commandSetOption(ctx, args[1:])
		case args[0] == "position":
			i.commandPosition(ctx, args[1:])
		case args[0] == "d":
			i.commandDraw(ctx)
		case args[0] == "go":
			i.commandGo(ctx, args[1:])
		case args[0] == "stop":
			i.commandStop(ctx)
		case args[0] == "quit":
			i.commandStop(ctx)
			i.searcher.Wait()
			return nil
		}
	}
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name Movetime type spin default %d min 100 max 3600000", defaultOptions.movetime.Milliseconds()))
	i.println(fmt.Sprintf("option name Hash type spin default %d min 1 max 16777216", defaultOptions.tableSize))
	i.println("uciok")
}

func (i *Interface) commandReady(_ context.Context) {
	i.println("readyok")
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return
		}
		i.options.debug = value
	case "movetime":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil || value < 100 || value > 3600000 {
			return
		}
		i.options.movetime = time.Duration(value) * time.Millisecond
	case "hash":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil || value == 0 || value > 1<<24 {
			return
		}
		i.options.tableSize = value
	}
}

func (i *Interface) commandPosition(_ context.Context, args []string) {
	if i.searcher.Running() || len(args) == 0 {
		return
	}

	movesAt := len(args)
	for at, arg := range args {
		if arg == "moves" {
			movesAt = at
			break
		}
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:movesAt], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return
	}
	var moveArgs []string
	if movesAt < len(args) {
		moveArgs = args[movesAt+1:]
	}
	for _, uciMove := range moveArgs {
		mv, err := b.ParseMove(uciMove)
		if err != nil {
			return
		}
		if _, ok := b.Apply(mv); !ok {
			return
		}
	}
	i.board = b
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.board.Draw())
}

func (i *Interface) commandGo(ctx context.Context, args []string) {
	clock := engine.ClockConfig{Movetime: i.options.movetime}
	for at := 0; at < len(args); at++ {
		switch args[at] {
		case "perft":
			if at+1 == len(args) {
				return
			}
			depth, err := strconv.Atoi(args[at+1])
			if err != nil {
				return
			}
			i.runPerft(depth)
			return
		case "depth":
			if at+1 == len(args) {
				return
			}
			depth, err := strconv.ParseUint(args[at+1], 10, 8)
			if err != nil {
				return
			}
			clock = engine.ClockConfig{Depth: uint8(depth)}
			at++
		case "movetime":
			if at+1 == len(args) {
				return
			}
			ms, err := strconv.ParseUint(args[at+1], 10, 64)
			if err != nil {
				return
			}
			clock = engine.ClockConfig{Movetime: time.Duration(ms) * time.Millisecond}
			at++
		case "infinite":
			clock = engine.ClockConfig{}
		}
	}

	err := i.searcher.Start(ctx, i.board, &engine.SearchConfig{
		ClockConfig: clock,
		Debug:       i.options.debug,
		Progress:    i.printInfo,
	}, func(mv board.Move) {
		i.println(fmt.Sprintf("bestmove %s", mv.UCI()))
	})
	if err != nil {
		i.println(fmt.Sprintf("info string %s", err))
	}
}

func (i *Interface) commandStop(_ context.Context) {
	i.searcher.Stop()
}

func (i *Interface) runPerft(depth int) {
	out := make(chan string, 64)
	go func() {
		for s := range out {
			i.println(s)
		}
	}()
	defer close(out)

	_, _ = bench.Perft(depth, i.board.FEN(), i.options.parallelPerft, true, out)
}

func (i *Interface) reset(ctx context.Context) {
	i.commandStop(ctx)
	i.searcher.Wait()
	i.commandPosition(ctx, []string{"startpos"})
	i.engine.ResizeTable(i.options.tableSize)
}

func (i *Interface) printInfo(r engine.SearchResult) {
	elapsed := r.Elapsed
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	nps := float64(r.Nodes) / elapsed.Seconds()
	i.println(fmt.Sprintf("info depth %d score %s time %d nodes %d nps %.0f pv %s",
		r.Depth, r.Score.UCI(), r.Elapsed.Milliseconds(), r.Nodes, nps, r.PV))
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(os.Stdout, a...)
}
