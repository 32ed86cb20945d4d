package main

import (
	"fmt"

	"github.com/tempo-chess/tempo/bench"
)

func perft(fen string, depth int) error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Println(s)
		}
	}()

	_, err := bench.Perft(depth, fen, true, true, out)
	close(out)
	<-done
	return err
}
