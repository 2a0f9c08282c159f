package board

// Successor is a reachable neighbor and the cost of entering it.
type Successor struct {
	Pos  Pos
	Cost byte
}

// Successors returns the in-bounds neighbors of pos in mask order.
func (b *Board) Successors(pos Pos) []Successor {
	out := make([]Successor, 0, len(b.mask))
	for _, d := range b.mask {
		next := Pos{Col: pos.Col + d.DX, Row: pos.Row + d.DY}
		if !b.InBounds(next) {
			continue
		}
		out = append(out, Successor{Pos: next, Cost: b.data[next.Row][next.Col]})
	}
	return out
}

// Neighbors is Successors without the cost, the expansion function a
// breadth-first search consumes.
func (b *Board) Neighbors(pos Pos) []Pos {
	succ := b.Successors(pos)
	out := make([]Pos, len(succ))
	for i, s := range succ {
		out[i] = s.Pos
	}
	return out
}
