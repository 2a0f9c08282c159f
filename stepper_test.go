package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepperWalksChain(t *testing.T) {
	next := func(n int) []int {
		if n < 3 {
			return []int{n + 1}
		}
		return nil
	}
	s := NewStepper[int](SuccessorFunc[int](next), 0, Goal(3))

	snap := s.Step()
	assert.Equal(t, 0, snap.Current)
	assert.Equal(t, []int{1}, snap.Frontier)
	assert.Equal(t, 2, snap.Visited)
	assert.Equal(t, 1, snap.StepIndex)
	assert.False(t, snap.Done)

	s.Step()
	s.Step()
	snap = s.Step()
	require.True(t, snap.Done)
	assert.True(t, snap.Found)
	assert.Equal(t, 3, snap.Current)
	assert.Equal(t, []int{0, 1, 2, 3}, snap.Path)
	assert.Equal(t, 4, snap.StepIndex)
	assert.True(t, s.Done())

	again := s.Step()
	assert.Equal(t, snap, again)
}

func TestStepperExhausts(t *testing.T) {
	fan := map[string][]string{"a": {"b", "c"}, "b": {"a", "c"}}
	s := NewStepper[string](SuccessorFunc[string](func(n string) []string { return fan[n] }), "a", Goal("z"))

	snap := s.Step()
	assert.Equal(t, []string{"b", "c"}, snap.Frontier)
	for !snap.Done {
		snap = s.Step()
	}
	assert.False(t, snap.Found)
	assert.Nil(t, snap.Path)
	assert.Equal(t, 3, snap.StepIndex)
	assert.Equal(t, 3, snap.Visited)
}

func TestStepperSnapshotIsCopied(t *testing.T) {
	fan := map[int][]int{0: {1, 2}}
	s := NewStepper[int](SuccessorFunc[int](func(n int) []int { return fan[n] }), 0, Goal(2))
	snap := s.Step()
	snap.Frontier[0] = 99
	assert.Equal(t, []int{1, 2}, s.frontier.Snapshot())
}

func TestQueueFIFO(t *testing.T) {
	var q queue[int]
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	for i := 0; i < 70; i++ {
		require.Equal(t, i, q.Pop())
	}
	q.Push(100)
	assert.Equal(t, 31, q.Len())
	snap := q.Snapshot()
	assert.Equal(t, 70, snap[0])
	assert.Equal(t, 100, snap[len(snap)-1])
	for i := 70; i <= 100; i++ {
		require.Equal(t, i, q.Pop())
	}
	assert.Zero(t, q.Len())
}
