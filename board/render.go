package board

import (
	"bufio"
	"io"
	"slices"
	"strings"
)

// PathMarker replaces every path cell in a rendered board.
const PathMarker = 'X'

// Render writes one line per row, marking cells in path with PathMarker.
// path may be in any order; duplicates and off-board positions are ignored.
// Every cell is one byte, so a multi-byte UTF-8 symbol spans several cells
// and marking one of them yields invalid UTF-8.
func (b *Board) Render(w io.Writer, path []Pos) error {
	marks := make([]Pos, 0, len(path))
	for _, p := range path {
		if b.InBounds(p) {
			marks = append(marks, p)
		}
	}
	// row-major order is column-major order of the transposed positions
	slices.SortFunc(marks, func(a, c Pos) int {
		return Pos{Col: a.Row, Row: a.Col}.Compare(Pos{Col: c.Row, Row: c.Col})
	})
	marks = slices.Compact(marks)

	bw := bufio.NewWriter(w)
	for y, line := range b.data {
		prev := 0
		for len(marks) > 0 && marks[0].Row == y {
			x := marks[0].Col
			bw.Write(line[prev:x])
			bw.WriteByte(PathMarker)
			prev = x + 1
			marks = marks[1:]
		}
		bw.Write(line[prev:])
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb, nil)
	return sb.String()
}
