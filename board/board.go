// Package board models a rectangular grid of traversal costs and the
// one-step moves a mover can make across it.
package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel is returned when level rows are empty or ragged.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrOutOfBounds is returned when a position lies outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Board is an immutable rectangular grid of traversal costs.
// Each cell's cost is the raw byte of the level symbol at that cell.
type Board struct {
	width  int
	height int
	data   [][]byte
	mask   Mask
}

// Options configures a Board at construction time.
type Options struct {
	Mask Mask
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMask replaces the movement mask selected by the diagonal flag.
func WithMask(mask Mask) Option {
	return func(options *Options) { options.Mask = mask }
}

// New builds a board from equal-length rows. diagonal selects DiagonalMask,
// otherwise CardinalMask is used.
func New(rows []string, diagonal bool, options ...Option) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLevel)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidLevel)
	}

	opts := Options{Mask: CardinalMask()}
	if diagonal {
		opts.Mask = DiagonalMask()
	}
	for _, o := range options {
		o(&opts)
	}
	if err := opts.Mask.Validate(); err != nil {
		return nil, err
	}

	data := make([][]byte, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidLevel, i, len(row), width)
		}
		data[i] = []byte(row)
	}

	return &Board{
		width:  width,
		height: len(rows),
		data:   data,
		mask:   append(Mask(nil), opts.Mask...),
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Mask returns a copy of the movement mask.
func (b *Board) Mask() Mask { return append(Mask(nil), b.mask...) }

// InBounds reports whether pos lies on the board.
func (b *Board) InBounds(pos Pos) bool {
	return pos.Col >= 0 && pos.Col < b.width && pos.Row >= 0 && pos.Row < b.height
}

// CostAt returns the cost of entering pos. It panics if pos is out of bounds;
// callers check InBounds first.
func (b *Board) CostAt(pos Pos) byte {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("board: CostAt%s outside %dx%d", pos, b.width, b.height))
	}
	return b.data[pos.Row][pos.Col]
}

// PathCost sums the entry cost of every path element after the first.
// The result is informational: breadth-first search never consults it.
func (b *Board) PathCost(path []Pos) (int, error) {
	total := 0
	for i, p := range path {
		if !b.InBounds(p) {
			return 0, fmt.Errorf("path[%d] %s: %w", i, p, ErrOutOfBounds)
		}
		if i > 0 {
			total += int(b.data[p.Row][p.Col])
		}
	}
	return total, nil
}
