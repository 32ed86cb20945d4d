package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tempo-chess/tempo/board"
	"github.com/tempo-chess/tempo/engine"
)

func search(fen string, depth, movetimeMs int) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println(b.Draw())
	fmt.Println(b.FEN())

	clock := engine.ClockConfig{
		Movetime: time.Duration(movetimeMs) * time.Millisecond,
		Depth:    uint8(depth),
	}
	if clock.Movetime == 0 && clock.Depth == 0 {
		clock.Movetime = engine.DefaultMovetime
	}

	e := engine.NewEngine(&engine.EngineConfig{})
	result, err := e.Search(context.Background(), b, &engine.SearchConfig{
		ClockConfig: clock,
		Debug:       true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("best move: %s score: %s depth: %d nodes: %d time: %s\n",
		result.Move, result.Score, result.Depth, result.Nodes, result.Elapsed.Round(time.Millisecond))
	return nil
}
