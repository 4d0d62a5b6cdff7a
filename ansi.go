package bitify

import (
	"fmt"
	"strings"
)

const ESC = ""

// RenderToANSI renders a grid to a terminal string. Every character is
// wrapped in a 24-bit foreground color escape, rows end with a reset
// and a newline. No compression of adjacent same-color runs is done;
// terminals handle the redundant escapes fine and the grid is small.
func RenderToANSI(grid Grid) string {
	var sb strings.Builder

	for _, row := range grid {
		for _, cell := range row {
			sb.WriteString(fmt.Sprintf("%s[38;2;%d;%d;%dm",
				ESC, cell.Color.R, cell.Color.G, cell.Color.B))
			sb.WriteRune(cell.Char)
		}
		sb.WriteString(ESC + "[0m\n")
	}

	return sb.String()
}
