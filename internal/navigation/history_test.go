package navigation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushAll(t *testing.T, h *History[int], screens ...string) {
	t.Helper()
	for i, s := range screens {
		require.NoError(t, h.Push(s, i))
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory[int](DefaultMaxHistory)

	_, ok := h.Current()
	assert.False(t, ok)
	assert.False(t, h.CanGoBack())

	_, ok = h.Pop()
	assert.False(t, ok)
	assert.Empty(t, h.Stack())
	assert.Empty(t, h.Breadcrumbs())
	assert.Equal(t, 0, h.Len())
}

func TestHistoryPushEmptyScreen(t *testing.T) {
	h := NewHistory[int](3)

	err := h.Push("", 0)
	assert.ErrorIs(t, err, ErrEmptyScreen)
	assert.Equal(t, 0, h.Len())
}

func TestHistoryNonPositiveMaxPanics(t *testing.T) {
	assert.Panics(t, func() { NewHistory[int](0) })
	assert.Panics(t, func() { NewHistory[int](-3) })
}

func TestHistoryPushKeepsRepeatedScreens(t *testing.T) {
	h := NewHistory[int](5)
	pushAll(t, h, "Dashboard", "Dashboard")

	assert.Equal(t, []string{"Dashboard", "Dashboard"}, h.Breadcrumbs())
	assert.True(t, h.CanGoBack())
}

func TestHistoryLinearWalkAndBacktrack(t *testing.T) {
	h := NewHistory[int](DefaultMaxHistory)
	pushAll(t, h, "Dashboard", "PIX", "Bills")

	assert.Equal(t, []string{"Dashboard", "PIX", "Bills"}, h.Breadcrumbs())

	rec, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "PIX", rec.Screen)
	assert.Equal(t, 1, rec.Params)
	assert.True(t, h.CanGoBack())

	rec, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, "Dashboard", rec.Screen)
	assert.False(t, h.CanGoBack())

	_, ok = h.Pop()
	assert.False(t, ok)

	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "Dashboard", cur.Screen)
	assert.Equal(t, []string{"Dashboard"}, h.Breadcrumbs())
}

func TestHistoryPopUnlinksCurrent(t *testing.T) {
	h := NewHistory[int](DefaultMaxHistory)
	pushAll(t, h, "A", "B", "C")

	_, ok := h.Pop()
	require.True(t, ok)
	require.NoError(t, h.Push("D", 9))

	// C was dropped by the pop and must not reappear.
	assert.Equal(t, []string{"A", "B", "D"}, h.Breadcrumbs())
}

func TestHistoryEvictionOrder(t *testing.T) {
	h := NewHistory[int](3)
	pushAll(t, h, "A", "B", "C", "D")

	assert.Equal(t, []string{"B", "C", "D"}, h.Breadcrumbs())

	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "D", cur.Screen)
}

func TestHistoryEvictionBoundary(t *testing.T) {
	h := NewHistory[int](10)
	var screens []string
	for i := 0; i < 12; i++ {
		screens = append(screens, fmt.Sprintf("Screen%d", i))
	}
	pushAll(t, h, screens...)

	assert.Len(t, h.Stack(), 10)
	crumbs := h.Breadcrumbs()
	assert.NotContains(t, crumbs, "Screen0")
	assert.NotContains(t, crumbs, "Screen1")
	assert.Equal(t, screens[2:], crumbs)
}

func TestHistoryBoundedAfterEveryPush(t *testing.T) {
	for bound := 1; bound <= 6; bound++ {
		h := NewHistory[int](bound)
		for i := 0; i < 25; i++ {
			require.NoError(t, h.Push(fmt.Sprintf("S%d", i), i))
			assert.LessOrEqual(t, h.Len(), bound, "bound=%d push=%d", bound, i)
			assert.Len(t, h.Stack(), h.Len())

			cur, ok := h.Current()
			require.True(t, ok)
			assert.Equal(t, fmt.Sprintf("S%d", i), cur.Screen, "current must survive trimming")

			// Pop every few pushes to move the ring's front around.
			if i%4 == 3 {
				h.Pop()
			}
		}
	}
}

func TestHistorySingleRecordBound(t *testing.T) {
	h := NewHistory[int](1)
	pushAll(t, h, "A", "B")

	assert.Equal(t, []string{"B"}, h.Breadcrumbs())
	assert.False(t, h.CanGoBack())

	_, ok := h.Pop()
	assert.False(t, ok)
}

func TestHistoryStackIsSnapshot(t *testing.T) {
	h := NewHistory[int](3)
	pushAll(t, h, "A", "B")

	stack := h.Stack()
	crumbs := h.Breadcrumbs()
	pushAll(t, h, "C", "D", "E")
	h.Pop()

	require.Len(t, stack, 2)
	assert.Equal(t, "A", stack[0].Screen)
	assert.Equal(t, "B", stack[1].Screen)
	assert.Equal(t, []string{"A", "B"}, crumbs)
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory[int](3)
	pushAll(t, h, "A", "B", "C", "D")

	h.Clear()

	_, ok := h.Current()
	assert.False(t, ok)
	_, ok = h.Pop()
	assert.False(t, ok)
	assert.Empty(t, h.Stack())

	pushAll(t, h, "E")
	assert.Equal(t, []string{"E"}, h.Breadcrumbs())
}

func TestHistoryCurrentPresenceTracksPushes(t *testing.T) {
	h := NewHistory[int](2)

	type step struct {
		op   string
		want bool
	}
	steps := []step{
		{op: "pop", want: false},
		{op: "push", want: true},
		{op: "pop", want: true},
		{op: "push", want: true},
		{op: "push", want: true},
		{op: "clear", want: false},
		{op: "pop", want: false},
		{op: "push", want: true},
	}

	for i, s := range steps {
		switch s.op {
		case "push":
			require.NoError(t, h.Push("X", i))
		case "pop":
			h.Pop()
		case "clear":
			h.Clear()
		}
		_, ok := h.Current()
		assert.Equal(t, s.want, ok, "step #%d (%s)", i, s.op)
	}
}

func TestHistoryRecordTime(t *testing.T) {
	h := NewHistory[int](2)
	at := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	h.now = func() time.Time { return at }

	require.NoError(t, h.Push("Dashboard", 0))
	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, at, cur.Time)
}
