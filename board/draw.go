package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	drawWhitePiece = color.New(color.FgHiWhite, color.Bold)
	drawBlackPiece = color.New(color.FgHiBlue, color.Bold)
	drawFrame      = color.New(color.FgHiBlack)
)

// Draw renders the position for terminal output, white at the bottom.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for rank := Height - 1; rank >= 0; rank-- {
		_, _ = builder.WriteString(drawFrame.Sprintf(" %d |", rank+1))
		for file := 0; file < Width; file++ {
			p := b.cells[SquareAt(rank, file)]
			switch {
			case p == PieceNone:
				_, _ = builder.WriteString(drawFrame.Sprint(" . "))
			case p.Side() == SideWhite:
				_, _ = builder.WriteString(drawWhitePiece.Sprintf(" %s ", p.SymbolFEN()))
			default:
				_, _ = builder.WriteString(drawBlackPiece.Sprintf(" %s ", strings.ToUpper(p.SymbolFEN())))
			}
		}
		_, _ = builder.WriteRune('\n')
	}
	_, _ = builder.WriteString(drawFrame.Sprint("    ------------------------\n    "))
	for file := 0; file < Width; file++ {
		_, _ = builder.WriteString(drawFrame.Sprintf(" %c ", 'a'+file))
	}
	_, _ = builder.WriteString(fmt.Sprintf("\n\n%s to move\n", b.turn))
	return builder.String()
}
