package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	route       *Route[string]
	transitions []Route[string]
	failOn      string
}

var errHostDown = errors.New("host down")

func (f *fakeHost) TransitionTo(screen string, params string) error {
	if screen == f.failOn {
		return errHostDown
	}
	f.transitions = append(f.transitions, Route[string]{Screen: screen, Params: params})
	f.route = &Route[string]{Screen: screen, Params: params}
	return nil
}

func (f *fakeHost) CurrentRoute() (Route[string], bool) {
	if f.route == nil {
		return Route[string]{}, false
	}
	return *f.route, true
}

func (f *fakeHost) CanGoBack() bool {
	return len(f.transitions) > 1
}

func newTestController(host *fakeHost, bound int) *Controller[string] {
	return NewController[string](NewHistory[string](bound), host)
}

func TestControllerDedupesCurrentScreen(t *testing.T) {
	host := &fakeHost{}
	c := newTestController(host, DefaultMaxHistory)

	require.NoError(t, c.NavigateTo("Dashboard", ""))
	require.NoError(t, c.NavigateTo("Dashboard", "ignored"))

	assert.Equal(t, []string{"Dashboard"}, c.History().Breadcrumbs())
	assert.Len(t, host.transitions, 1)
}

func TestControllerNavigateAndGoBack(t *testing.T) {
	host := &fakeHost{}
	c := newTestController(host, DefaultMaxHistory)

	require.NoError(t, c.NavigateTo("Dashboard", ""))
	require.NoError(t, c.NavigateTo("PIX", "key"))
	require.NoError(t, c.NavigateTo("Bills", ""))

	st := c.State()
	assert.Equal(t, []string{"Dashboard", "PIX", "Bills"}, st.Breadcrumbs)
	assert.Equal(t, "Bills", st.CurrentScreen)
	assert.True(t, st.CanGoBack)

	ok, err := c.GoBack()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "PIX", c.State().CurrentScreen)
	assert.True(t, c.State().CanGoBack)
	assert.Equal(t, Route[string]{Screen: "PIX", Params: "key"}, host.transitions[len(host.transitions)-1])

	ok, err = c.GoBack()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Dashboard", c.State().CurrentScreen)
	assert.False(t, c.State().CanGoBack)

	n := len(host.transitions)
	ok, err = c.GoBack()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Dashboard", c.State().CurrentScreen)
	assert.Len(t, host.transitions, n, "no transition when nothing to go back to")
}

func TestControllerInitSeedsFromHostRoute(t *testing.T) {
	host := &fakeHost{route: &Route[string]{Screen: "Dashboard", Params: "p"}}
	c := newTestController(host, DefaultMaxHistory)

	st := c.State()
	assert.Equal(t, "Dashboard", st.CurrentScreen)
	assert.Equal(t, []string{"Dashboard"}, st.Breadcrumbs)
	assert.Empty(t, host.transitions, "seeding must not transition the host")

	// The seeded route counts as current for deduplication.
	require.NoError(t, c.NavigateTo("Dashboard", ""))
	assert.Empty(t, host.transitions)
}

func TestControllerInitKeepsExistingHistory(t *testing.T) {
	host := &fakeHost{route: &Route[string]{Screen: "Login"}}
	h := NewHistory[string](DefaultMaxHistory)
	require.NoError(t, h.Push("Cards", ""))

	c := NewController[string](h, host)
	c.Init()

	assert.Equal(t, []string{"Cards"}, c.State().Breadcrumbs)
}

func TestControllerInitWithoutHostRoute(t *testing.T) {
	c := newTestController(&fakeHost{}, DefaultMaxHistory)

	st := c.State()
	assert.Equal(t, "", st.CurrentScreen)
	assert.False(t, st.CanGoBack)
	assert.Empty(t, st.Breadcrumbs)
}

func TestControllerHostFailureKeepsHistory(t *testing.T) {
	host := &fakeHost{failOn: "Investimentos"}
	c := newTestController(host, DefaultMaxHistory)

	require.NoError(t, c.NavigateTo("Dashboard", ""))
	err := c.NavigateTo("Investimentos", "")
	assert.ErrorIs(t, err, errHostDown)

	// History is a record of intent: it has advanced even though the host did not.
	assert.Equal(t, "Investimentos", c.State().CurrentScreen)
	route, _ := host.CurrentRoute()
	assert.Equal(t, "Dashboard", route.Screen)
}

func TestControllerRejectsEmptyScreen(t *testing.T) {
	host := &fakeHost{}
	c := newTestController(host, DefaultMaxHistory)

	assert.ErrorIs(t, c.NavigateTo("", ""), ErrEmptyScreen)
	assert.Empty(t, host.transitions)
}

func TestControllerGoBackOr(t *testing.T) {
	host := &fakeHost{}
	c := newTestController(host, DefaultMaxHistory)

	require.NoError(t, c.NavigateTo("Cartões", ""))
	require.NoError(t, c.GoBackOr("Dashboard", ""))
	assert.Equal(t, []string{"Cartões", "Dashboard"}, c.State().Breadcrumbs)

	require.NoError(t, c.GoBackOr("Dashboard", ""))
	assert.Equal(t, []string{"Cartões"}, c.State().Breadcrumbs)
	assert.Equal(t, "Cartões", host.route.Screen)
}

func TestControllerResetAndObservers(t *testing.T) {
	host := &fakeHost{}
	c := newTestController(host, DefaultMaxHistory)

	var seen []State
	c.OnChange(func(s State) { seen = append(seen, s) })

	require.NoError(t, c.NavigateTo("Dashboard", ""))
	require.NoError(t, c.NavigateTo("PIX", ""))
	c.Reset()

	require.Len(t, seen, 3)
	assert.Equal(t, "PIX", seen[1].CurrentScreen)
	assert.Equal(t, State{Breadcrumbs: []string{}}, seen[2])
	assert.Equal(t, 0, c.History().Len())

	ok, err := c.GoBack()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestControllerEvictionVisibleInState(t *testing.T) {
	c := newTestController(&fakeHost{}, 3)

	for _, s := range []string{"A", "B", "C", "D"} {
		require.NoError(t, c.NavigateTo(s, ""))
	}
	assert.Equal(t, []string{"B", "C", "D"}, c.State().Breadcrumbs)
}

func TestControllerReseedsAfterReset(t *testing.T) {
	host := &fakeHost{}
	c := newTestController(host, DefaultMaxHistory)

	require.NoError(t, c.NavigateTo("Dashboard", ""))
	require.NoError(t, c.NavigateTo("PIX", ""))
	c.Reset()

	host.route = &Route[string]{Screen: "Login"}
	st := c.State()
	assert.Equal(t, "Login", st.CurrentScreen)
	assert.Equal(t, []string{"Login"}, st.Breadcrumbs)
}

func TestControllerStateBreadcrumbsAreCopies(t *testing.T) {
	c := newTestController(&fakeHost{}, DefaultMaxHistory)

	var observed State
	c.OnChange(func(s State) {
		observed = s
		s.Breadcrumbs[0] = "observer"
	})
	require.NoError(t, c.NavigateTo("Dashboard", ""))
	require.NoError(t, c.NavigateTo("PIX", ""))

	st := c.State()
	st.Breadcrumbs[0] = "caller"

	assert.Equal(t, []string{"Dashboard", "PIX"}, c.State().Breadcrumbs)
	assert.Equal(t, "observer", observed.Breadcrumbs[0])
}
