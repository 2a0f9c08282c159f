package board

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Pos is a (column, row) cell coordinate.
type Pos struct {
	Col int
	Row int
}

// Compare orders positions by column, then row.
func (p Pos) Compare(q Pos) int {
	if c := cmp.Compare(p.Col, q.Col); c != 0 {
		return c
	}
	return cmp.Compare(p.Row, q.Row)
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Col, p.Row) }

// ParsePos parses the "col,row" form used on the command line and in queries.
func ParsePos(s string) (Pos, error) {
	colText, rowText, ok := strings.Cut(s, ",")
	if !ok {
		return Pos{}, fmt.Errorf("position %q: want col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: column: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: row: %w", s, err)
	}
	return Pos{Col: col, Row: row}, nil
}
