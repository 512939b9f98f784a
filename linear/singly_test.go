package linear_test

import (
	"testing"

	"github.com/me21jarus/dsa/core"
	"github.com/me21jarus/dsa/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSingly_Scenario replays the reference scenario: tail 5, tail 10,
// head 1, then delete position 2.
func TestSingly_Scenario(t *testing.T) {
	l := linear.NewSingly[int]()
	l.InsertAtTail(5)
	l.InsertAtTail(10)
	l.InsertAtHead(1)
	assert.Equal(t, []int{1, 5, 10}, l.Values())

	v, err := l.DeleteAt(2)
	require.NoError(t, err)
	assert.Equal(t, 5, v, "removed payload")
	assert.Equal(t, []int{1, 10}, l.Values())
	require.NoError(t, l.Validate())
}

// TestSingly_InsertAtPositions covers head, middle, append and the
// out-of-range positions.
func TestSingly_InsertAtPositions(t *testing.T) {
	l := linear.SinglyFrom([]int{10, 20, 30})

	require.NoError(t, l.InsertAt(1, 5))
	require.NoError(t, l.InsertAt(3, 15))
	require.NoError(t, l.InsertAt(l.Len()+1, 35))
	assert.Equal(t, []int{5, 10, 15, 20, 30, 35}, l.Values())

	tail, ok := l.Tail()
	require.True(t, ok)
	assert.Equal(t, 35, tail, "append via InsertAt must move tail")

	err := l.InsertAt(0, 1)
	assert.ErrorIs(t, err, core.ErrInvalidPosition)

	err = l.InsertAt(l.Len()+2, 99)
	assert.ErrorIs(t, err, core.ErrInvalidPosition)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, 6, l.Len(), "failed insert must not mutate")
	require.NoError(t, l.Validate())
}

// TestSingly_InsertAtEmpty checks the empty-list positional edge cases.
func TestSingly_InsertAtEmpty(t *testing.T) {
	l := linear.NewSingly[int]()
	assert.ErrorIs(t, l.InsertAt(2, 7), core.ErrInvalidPosition)
	assert.True(t, l.IsEmpty())

	require.NoError(t, l.InsertAt(1, 7))
	head, _ := l.Head()
	tail, _ := l.Tail()
	assert.Equal(t, 7, head)
	assert.Equal(t, 7, tail)
}

// TestSingly_ClampPositions verifies that far positions append when clamping is enabled.
func TestSingly_ClampPositions(t *testing.T) {
	l := linear.NewSingly(core.WithClampPositions[int]())
	require.NoError(t, l.InsertAt(4, 1))
	require.NoError(t, l.InsertAt(100, 2))
	assert.Equal(t, []int{1, 2}, l.Values())
	assert.ErrorIs(t, l.InsertAt(-1, 3), core.ErrInvalidPosition, "clamping never accepts pos < 1")
}

// TestSingly_DeleteAt covers head, middle, tail and invalid deletions.
func TestSingly_DeleteAt(t *testing.T) {
	l := linear.NewSingly[int]()
	_, err := l.DeleteAt(1)
	assert.ErrorIs(t, err, core.ErrEmptyList)

	l = linear.SinglyFrom([]int{1, 2, 3, 4})
	_, err = l.DeleteAt(0)
	assert.ErrorIs(t, err, core.ErrInvalidPosition)
	_, err = l.DeleteAt(5)
	assert.ErrorIs(t, err, core.ErrNotFound)

	v, err := l.DeleteAt(4)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	tail, _ := l.Tail()
	assert.Equal(t, 3, tail, "deleting the last node moves tail")

	v, err = l.DeleteAt(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, l.Values())

	_, _ = l.DeleteAt(1)
	_, _ = l.DeleteAt(1)
	assert.True(t, l.IsEmpty())
	_, ok := l.Tail()
	assert.False(t, ok, "emptied list must drop tail")
	require.NoError(t, l.Validate())

	// a fresh append after emptying must work through the tail handle
	l.InsertAtTail(9)
	assert.Equal(t, []int{9}, l.Values())
}

// TestSingly_RoundTrip inserts then deletes at every position and expects
// the original sequence back.
func TestSingly_RoundTrip(t *testing.T) {
	base := []int{3, 1, 4, 1, 5}
	for pos := 1; pos <= len(base)+1; pos++ {
		l := linear.SinglyFrom(base)
		require.NoError(t, l.InsertAt(pos, 42))
		assert.Equal(t, 42, l.Values()[pos-1], "pos=%d", pos)
		assert.Equal(t, len(base)+1, l.Len())

		v, err := l.DeleteAt(pos)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, base, l.Values(), "pos=%d", pos)
		require.NoError(t, l.Validate())
	}
}

// TestSingly_Traversal checks that All is restartable and stops early on demand.
func TestSingly_Traversal(t *testing.T) {
	l := linear.SinglyFrom([]int{1, 2, 3})

	var first, second []int
	for v := range l.All() {
		first = append(first, v)
	}
	for v := range l.All() {
		second = append(second, v)
	}
	assert.Equal(t, first, second)

	var partial []int
	for v := range l.All() {
		partial = append(partial, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, partial)
	assert.Equal(t, "1 2 3", l.String())
}

// TestSingly_FindMiddle covers the supplemental queries.
func TestSingly_FindMiddle(t *testing.T) {
	l := linear.NewSingly[int]()
	_, ok := l.Middle()
	assert.False(t, ok)
	assert.Equal(t, -1, l.Find(1))

	l = linear.SinglyFrom([]int{1, 2, 3, 4, 5})
	m, _ := l.Middle()
	assert.Equal(t, 3, m)
	assert.Equal(t, 4, l.Find(4))
	assert.Equal(t, -1, l.Find(6))

	l.InsertAtTail(6)
	m, _ = l.Middle()
	assert.Equal(t, 4, m, "even length returns the second middle")
}

// TestSingly_ReleaseHooks ensures every created node is released exactly once.
func TestSingly_ReleaseHooks(t *testing.T) {
	created := map[int]int{}
	released := map[int]int{}
	l := linear.NewSingly(
		core.WithInsertHook(func(v int) { created[v]++ }),
		core.WithReleaseHook(func(v int) { released[v]++ }),
	)
	for i := 1; i <= 5; i++ {
		l.InsertAtTail(i)
	}
	_, err := l.DeleteAt(3)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{3: 1}, released)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, created, released, "each node released exactly once")

	l.Clear()
	assert.Len(t, released, 5, "clearing an empty list releases nothing")
}
