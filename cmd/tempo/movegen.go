package main

import (
	"fmt"

	"github.com/tempo-chess/tempo/board"
)

func movegen(fen string) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Draw())

	mvs := b.GenerateLegalMoves()
	for _, mv := range mvs {
		fmt.Println(mv.UCI())
	}
	fmt.Printf("%d legal moves\n", len(mvs))
	return nil
}
