package app

import (
	"log/slog"

	"github.com/vidyasagar/xbank/internal/auth"
	"github.com/vidyasagar/xbank/internal/bank"
	"github.com/vidyasagar/xbank/internal/navigation"
	"github.com/vidyasagar/xbank/internal/protection"
)

// session is everything that lives between login and logout. A new
// navigation history and controller are created for every session.
type session struct {
	user   *auth.User
	ledger *bank.Ledger
	guard  *protection.Guard
	ctrl   *navigation.Controller[Params]
	state  navigation.State

	// version is bumped whenever account data changes, retiring cached renders.
	version int

	// pending is a blocked transfer waiting for the user's confirmation.
	pending *protection.Attempt
	// pendingBill is a boleto waiting for the user's confirmation.
	pendingBill *bank.Bill

	hideBalance bool
}

// sessionSlot is shared by every copy of the Model so the logout hook
// registered once at startup always sees the live session.
type sessionSlot struct {
	cur *session
}

func newSession(u *auth.User, host *screenHost, maxHistory int, protect bool, logger *slog.Logger) *session {
	host.reset(signedInScreens, ScreenDashboard)

	guard := protection.NewGuard(protection.NewDetector())
	guard.SetEnabled(protect)

	s := &session{
		user:   u,
		ledger: bank.NewLedger(u.Balance),
		guard:  guard,
	}
	s.ctrl = navigation.NewController(
		navigation.NewHistory[Params](maxHistory),
		host,
		navigation.WithLogger(logger.With("user", u.ID)),
	)
	s.ctrl.OnChange(func(st navigation.State) {
		s.state = st
	})
	s.ctrl.Init()
	s.state = s.ctrl.State()
	return s
}

func (s *session) touch() {
	s.version++
}
