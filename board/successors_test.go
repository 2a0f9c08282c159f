package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(succ []Successor) []Pos {
	out := make([]Pos, len(succ))
	for i, s := range succ {
		out[i] = s.Pos
	}
	return out
}

func corners(b *Board) []Pos {
	maxCol, maxRow := b.Width()-1, b.Height()-1
	return []Pos{{0, 0}, {maxCol, 0}, {0, maxRow}, {maxCol, maxRow}}
}

func TestSuccessorsNoDiagonal(t *testing.T) {
	b, err := New(level0, false)
	require.NoError(t, err)
	assert.Len(t, b.Mask(), 4)
	assert.Len(t, b.Successors(Pos{0, 0}), 2)
}

func TestSuccessorsLevel0Diagonal(t *testing.T) {
	b, err := New(level0, true)
	require.NoError(t, err)

	assert.Len(t, b.Successors(Pos{0, 0}), 3)

	s := b.Successors(Pos{1, 1})
	require.Len(t, s, 8)
	assert.Equal(t, Pos{0, 0}, s[0].Pos)
	assert.Equal(t, Pos{0, 1}, s[1].Pos)
	assert.Equal(t, Pos{0, 2}, s[2].Pos)
}

func TestSuccessorsCountsByShape(t *testing.T) {
	shapes := []struct{ w, h int }{{3, 3}, {4, 4}, {13, 7}, {5, 9}}
	for _, sh := range shapes {
		rows := make([]string, sh.h)
		for i := range rows {
			rows[i] = string(make([]byte, sh.w))
		}

		diag, err := New(rows, true)
		require.NoError(t, err)
		card, err := New(rows, false)
		require.NoError(t, err)

		for _, c := range corners(diag) {
			assert.Len(t, diag.Successors(c), 3, "diagonal corner %s of %dx%d", c, sh.w, sh.h)
			assert.Len(t, card.Successors(c), 2, "cardinal corner %s of %dx%d", c, sh.w, sh.h)
		}
		for row := 1; row < sh.h-1; row++ {
			for col := 1; col < sh.w-1; col++ {
				p := Pos{col, row}
				assert.Len(t, diag.Successors(p), 8, "diagonal interior %s", p)
				assert.Len(t, card.Successors(p), 4, "cardinal interior %s", p)
			}
		}
	}
}

func TestSuccessorsLegacyMask(t *testing.T) {
	b, err := New(level0, false, WithMask(LegacyMask()))
	require.NoError(t, err)

	want := []int{2, 1, 2, 2}
	for i, c := range corners(b) {
		assert.Len(t, b.Successors(c), want[i], "corner %s", c)
	}
	assert.Equal(t, []Pos{{1, 0}, {0, 1}, {2, 1}, {2, 2}}, positions(b.Successors(Pos{1, 1})))
}

func TestSuccessorsStayInBounds(t *testing.T) {
	b, err := New([]string{"abcde", "fghij", "klmno"}, true)
	require.NoError(t, err)
	for row := -1; row <= b.Height(); row++ {
		for col := -1; col <= b.Width(); col++ {
			for _, s := range b.Successors(Pos{col, row}) {
				assert.True(t, b.InBounds(s.Pos), "from (%d,%d) got %s", col, row, s.Pos)
			}
		}
	}
}

func TestSuccessorsCostAndOrder(t *testing.T) {
	b, err := New([]string{"abc", "def", "ghi"}, true)
	require.NoError(t, err)

	first := b.Successors(Pos{1, 1})
	assert.Equal(t, first, b.Successors(Pos{1, 1}))
	assert.Equal(t, []Successor{
		{Pos{0, 0}, 'a'}, {Pos{0, 1}, 'd'}, {Pos{0, 2}, 'g'},
		{Pos{1, 0}, 'b'}, {Pos{1, 2}, 'h'},
		{Pos{2, 0}, 'c'}, {Pos{2, 1}, 'f'}, {Pos{2, 2}, 'i'},
	}, first)
}

func TestNeighborsDropCost(t *testing.T) {
	b, err := New(level0, false)
	require.NoError(t, err)
	assert.Equal(t, []Pos{{1, 0}, {0, 1}, {2, 1}, {1, 2}}, b.Neighbors(Pos{1, 1}))
	assert.Equal(t, positions(b.Successors(Pos{3, 3})), b.Neighbors(Pos{3, 3}))
}

func TestMaskValidate(t *testing.T) {
	assert.NoError(t, DiagonalMask().Validate())
	assert.NoError(t, CardinalMask().Validate())
	assert.NoError(t, LegacyMask().Validate())
	assert.ErrorIs(t, Mask{}.Validate(), ErrInvalidMask)
	assert.ErrorIs(t, Mask{{0, 0}}.Validate(), ErrInvalidMask)
	assert.ErrorIs(t, Mask{{1, 0}, {1, 0}}.Validate(), ErrInvalidMask)
	assert.ErrorIs(t, append(DiagonalMask(), Delta{2, 2}).Validate(), ErrInvalidMask)
}

func TestMaskByName(t *testing.T) {
	for _, name := range []string{"diagonal", "cardinal", "legacy"} {
		m, err := MaskByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.Name())
	}
	assert.Equal(t, "custom", Mask{{2, 0}}.Name())

	_, err := MaskByName("hex")
	assert.ErrorIs(t, err, ErrInvalidMask)
}
