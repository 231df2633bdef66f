package app

import (
	"errors"
	"fmt"

	"github.com/vidyasagar/xbank/internal/bank"
	"github.com/vidyasagar/xbank/internal/navigation"
)

// Screen identifiers registered with the host.
const (
	ScreenLogin        = "Login"
	ScreenDashboard    = "Dashboard"
	ScreenPIX          = "PIX"
	ScreenInvestments  = "Investimentos"
	ScreenCards        = "Cartões"
	ScreenMore         = "Mais"
	ScreenTransactions = "Transactions"
	ScreenBills        = "Bills"
)

// ErrUnknownScreen is returned by the host for unregistered screens.
var ErrUnknownScreen = errors.New("unknown screen")

// tabScreens are the bottom-bar screens, in display order.
var tabScreens = []string{ScreenDashboard, ScreenPIX, ScreenInvestments, ScreenCards, ScreenMore}

// The signed-out and signed-in navigators register disjoint screens, so a
// live session can never be routed to Login.
var (
	signedOutScreens = map[string]bool{
		ScreenLogin: true,
	}
	signedInScreens = map[string]bool{
		ScreenDashboard:    true,
		ScreenPIX:          true,
		ScreenInvestments:  true,
		ScreenCards:        true,
		ScreenMore:         true,
		ScreenTransactions: true,
		ScreenBills:        true,
	}
)

// Params is the payload a screen is opened with.
type Params struct {
	Filter bank.TxType // Transactions
	PIXKey string      // PIX, pre-fills the key field
	Bill   string      // Bills, ID of the selected boleto
}

// screenHost is the display side of navigation. It keeps its own route
// stack: navigating to a route already on the stack unwinds back to it
// instead of pushing a duplicate, so the host stack can be shorter than
// the controller's history.
type screenHost struct {
	screens map[string]bool
	routes  []navigation.Route[Params]
}

func newScreenHost(screens map[string]bool, start string) *screenHost {
	h := &screenHost{}
	h.reset(screens, start)
	return h
}

// TransitionTo implements navigation.Navigator.
func (h *screenHost) TransitionTo(screen string, params Params) error {
	if !h.screens[screen] {
		return fmt.Errorf("transition to %q: %w", screen, ErrUnknownScreen)
	}
	for i := len(h.routes) - 1; i >= 0; i-- {
		if h.routes[i].Screen == screen {
			h.routes = h.routes[:i+1]
			h.routes[i].Params = params
			return nil
		}
	}
	h.routes = append(h.routes, navigation.Route[Params]{Screen: screen, Params: params})
	return nil
}

// CurrentRoute implements navigation.Navigator.
func (h *screenHost) CurrentRoute() (navigation.Route[Params], bool) {
	if len(h.routes) == 0 {
		return navigation.Route[Params]{}, false
	}
	return h.routes[len(h.routes)-1], true
}

// CanGoBack implements navigation.Navigator.
func (h *screenHost) CanGoBack() bool {
	return len(h.routes) > 1
}

// setParams updates the current route's params in place. It is not a
// navigation and leaves the history untouched.
func (h *screenHost) setParams(params Params) {
	if len(h.routes) > 0 {
		h.routes[len(h.routes)-1].Params = params
	}
}

// reset switches to another navigator: the registry and the whole stack
// are replaced.
func (h *screenHost) reset(screens map[string]bool, start string) {
	h.screens = screens
	h.routes = []navigation.Route[Params]{{Screen: start}}
}

func (h *screenHost) current() string {
	r, _ := h.CurrentRoute()
	return r.Screen
}

func isTab(screen string) bool {
	for _, s := range tabScreens {
		if s == screen {
			return true
		}
	}
	return false
}
