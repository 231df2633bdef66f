package navigation

import (
	"io"
	"log/slog"
	"slices"
)

// Route is a screen together with the params it was opened with.
type Route[P any] struct {
	Screen string
	Params P
}

// Navigator is the host capability that performs on-screen transitions.
// The controller decides what the history should be; the navigator only
// moves the display.
type Navigator[P any] interface {
	// TransitionTo displays the given screen. Validating the screen name
	// against the registry is the navigator's concern.
	TransitionTo(screen string, params P) error
	// CurrentRoute reports the route the host is displaying, if any.
	CurrentRoute() (Route[P], bool)
	// CanGoBack reports whether the host's own stack has a previous route.
	CanGoBack() bool
}

// State is the read-only projection handed to the UI layer.
type State struct {
	CanGoBack     bool
	CurrentScreen string // empty when the history is empty
	Breadcrumbs   []string
}

func (s State) clone() State {
	s.Breadcrumbs = slices.Clone(s.Breadcrumbs)
	return s
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Controller owns one History for the lifetime of a session and bridges
// history mutations to the host navigator. History is always updated
// before the host transition is requested, so a failing host leaves the
// history ahead of the displayed screen.
type Controller[P any] struct {
	history     *History[P]
	host        Navigator[P]
	logger      *slog.Logger
	state       State
	initialized bool
	observers   []func(State)
}

// NewController creates a controller over the given history and host.
func NewController[P any](history *History[P], host Navigator[P], opts ...Option) *Controller[P] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller[P]{
		history: history,
		host:    host,
		logger:  o.logger,
	}
	c.state = c.project()
	return c
}

// Init seeds an empty history with the host's current route. The host is
// already showing that route, so no transition is requested. Init runs
// once; every other entry point calls it.
func (c *Controller[P]) Init() {
	if c.initialized {
		return
	}
	c.initialized = true

	if c.history.Len() > 0 {
		return
	}
	route, ok := c.host.CurrentRoute()
	if !ok {
		return
	}
	if err := c.history.Push(route.Screen, route.Params); err != nil {
		c.logger.Warn("seeding history from host route", "err", err)
		return
	}
	c.logger.Debug("history seeded", "screen", route.Screen)
	c.refresh()
}

// NavigateTo records screen in the history and asks the host to show it.
// Navigating to the screen that is already current does nothing.
func (c *Controller[P]) NavigateTo(screen string, params P) error {
	c.Init()

	if cur, ok := c.history.Current(); ok && cur.Screen == screen {
		return nil
	}

	if err := c.history.Push(screen, params); err != nil {
		return err
	}
	c.refresh()

	if err := c.host.TransitionTo(screen, params); err != nil {
		c.logger.Error("host transition failed",
			"screen", screen,
			"history", c.state.Breadcrumbs,
			"err", err,
		)
		return err
	}
	c.logger.Debug("navigated", "screen", screen, "depth", c.history.Len())
	return nil
}

// GoBack pops the history and asks the host to show the promoted record.
// Returns false when there is nothing to go back to.
func (c *Controller[P]) GoBack() (bool, error) {
	c.Init()

	prev, ok := c.history.Pop()
	if !ok {
		return false, nil
	}
	c.refresh()

	if err := c.host.TransitionTo(prev.Screen, prev.Params); err != nil {
		c.logger.Error("host transition failed on back",
			"screen", prev.Screen,
			"host_can_go_back", c.host.CanGoBack(),
			"err", err,
		)
		return true, err
	}
	c.logger.Debug("went back", "screen", prev.Screen, "depth", c.history.Len())
	return true, nil
}

// GoBackOr goes back when possible and otherwise navigates to home.
func (c *Controller[P]) GoBackOr(home string, params P) error {
	c.Init()

	if c.history.CanGoBack() {
		_, err := c.GoBack()
		return err
	}
	return c.NavigateTo(home, params)
}

// Reset clears the history. Called when the session ends. The next call
// to any other method seeds the history from the host route again.
func (c *Controller[P]) Reset() {
	c.history.Clear()
	c.initialized = false
	c.refresh()
	c.logger.Debug("history cleared")
}

// State returns the current projection. The breadcrumbs slice is the
// caller's own copy.
func (c *Controller[P]) State() State {
	c.Init()
	return c.state.clone()
}

// OnChange registers fn to be called with the new projection after every
// mutation.
func (c *Controller[P]) OnChange(fn func(State)) {
	c.observers = append(c.observers, fn)
}

// History exposes the underlying history for read-only inspection.
func (c *Controller[P]) History() *History[P] {
	return c.history
}

func (c *Controller[P]) refresh() {
	c.state = c.project()
	for _, fn := range c.observers {
		fn(c.state.clone())
	}
}

func (c *Controller[P]) project() State {
	s := State{
		CanGoBack:   c.history.CanGoBack(),
		Breadcrumbs: c.history.Breadcrumbs(),
	}
	if cur, ok := c.history.Current(); ok {
		s.CurrentScreen = cur.Screen
	}
	return s
}
