package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/tempo-chess/tempo/board"
	"github.com/tempo-chess/tempo/uci"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun = flag.Bool("movegen", false, "list legal moves and exit")

	perftRun   = flag.Bool("perft", false, "run perft and exit")
	perftDepth = flag.Int("perft.depth", 5, "perft depth")

	searchRun      = flag.Bool("search", false, "run a one-shot search and exit")
	searchDepth    = flag.Int("search.depth", 0, "search depth limit")
	searchMovetime = flag.Int("search.movetime", 0, "search movetime in milliseconds")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	if err := realMain(flag.Args()); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	if *movegenRun {
		return movegen(fen)
	}
	if *perftRun {
		return perft(fen, *perftDepth)
	}
	if *searchRun {
		return search(fen, *searchDepth, *searchMovetime)
	}

	return uci.NewInterface().Run()
}
