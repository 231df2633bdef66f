package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vidyasagar/xbank/internal/auth"
	"github.com/vidyasagar/xbank/internal/bank"
	"github.com/vidyasagar/xbank/internal/locale"
	"github.com/vidyasagar/xbank/internal/storage"
	"github.com/vidyasagar/xbank/internal/theme"
	"github.com/vidyasagar/xbank/internal/ui"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeInsert       // form focused
	ModeCommand      // command bar active
	ModeHistory      // history panel active
	ModeConfirm      // blocked transfer or bill payment awaiting y/n
	ModeHelp         // help shown in the viewport
)

var modeNames = map[Mode]string{
	ModeNormal:  ui.ModeNormal,
	ModeInsert:  ui.ModeInsert,
	ModeCommand: "COMMAND",
	ModeHistory: ui.ModeHistory,
	ModeConfirm: "CONFIRM",
	ModeHelp:    ui.ModeHelp,
}

type formKind int

const (
	formNone formKind = iota
	formLogin
	formPIX
)

// protectionKey stores the anti-gambling switch between runs.
const protectionKey = "protectionEnabled"

// Options are the collaborators the shell is built from.
type Options struct {
	Auth       *auth.Service
	Store      auth.Store
	Translator *locale.Translator
	Config     *storage.Config
	Logger     *slog.Logger
}

// Model is the top-level bubbletea model for xbank.
type Model struct {
	// UI components
	header       ui.Header
	tabBar       ui.TabBar
	statusBar    ui.StatusBar
	viewport     ui.ScreenViewport
	historyPanel ui.HistoryPanel
	form         ui.Form
	commandBar   ui.CommandBar

	// Collaborators
	auth   *auth.Service
	store  auth.Store
	tr     *locale.Translator
	cfg    *storage.Config
	logger *slog.Logger

	// Navigation
	host *screenHost
	slot *sessionSlot

	renderCache *lru.Cache[string, string] // rendered screen bodies
	keys        KeyMap
	mode        Mode
	formKind    formKind
	width       int
	height      int
	lastGKey    bool // for "gg" detection
	ready       bool
	now         func() time.Time
}

// New creates the shell. A cached user is restored straight into a
// session; otherwise the login form is opened.
func New(opts Options) Model {
	renderCache, _ := lru.New[string, string](64)

	tabs := make([]ui.Tab, len(tabScreens))
	for i, s := range tabScreens {
		tabs[i] = ui.Tab{Screen: s, Label: opts.Translator.Screen(s)}
	}

	m := Model{
		header:       ui.NewHeader(),
		tabBar:       ui.NewTabBar(tabs),
		statusBar:    ui.NewStatusBar(),
		viewport:     ui.NewScreenViewport(),
		historyPanel: ui.NewHistoryPanel(),
		form:         ui.NewForm(),
		commandBar:   ui.NewCommandBar(),
		auth:         opts.Auth,
		store:        opts.Store,
		tr:           opts.Translator,
		cfg:          opts.Config,
		logger:       opts.Logger,
		host:         newScreenHost(signedOutScreens, ScreenLogin),
		slot:         &sessionSlot{},
		renderCache:  renderCache,
		keys:         DefaultKeyMap(),
		mode:         ModeNormal,
		now:          time.Now,
	}

	slot := m.slot
	m.auth.OnLogout(func() {
		if slot.cur != nil {
			slot.cur.ctrl.Reset()
		}
	})

	if u, ok := m.auth.Restore(); ok {
		m.startSession(u)
	} else {
		m.openLoginForm()
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.form.IsActive() {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.header.SetWidth(m.width)
		m.tabBar.SetWidth(m.width)
		m.statusBar.SetWidth(m.width)
		m.commandBar.SetWidth(m.width)
		m.form.SetWidth(m.width)
		m.layout()
		m.sync()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Forward to active components (cursor blink, mouse wheel).
	var cmds []tea.Cmd
	if m.form.IsActive() {
		f, cmd := m.form.Update(msg)
		m.form = *f
		cmds = append(cmds, cmd)
	}
	if m.commandBar.IsActive() {
		cb, cmd := m.commandBar.Update(msg)
		m.commandBar = *cb
		cmds = append(cmds, cmd)
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = *vp
	cmds = append(cmds, cmd)
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Carregando XBank..."
	}

	// Layout:
	// [header + breadcrumbs]
	// [form] (if active)
	// [history panel | viewport]
	// [tab bar] (signed in)
	// [status bar]
	// [command bar] (if active)

	var sections []string
	sections = append(sections, m.header.View())

	if m.form.IsActive() {
		sections = append(sections, m.form.View())
	}

	if m.historyPanel.IsVisible() {
		t := theme.Current
		dividerStyle := lipgloss.NewStyle().
			Foreground(t.Border).
			Background(t.Background)

		dividerHeight := m.viewport.Height()
		if dividerHeight < 1 {
			dividerHeight = 1
		}
		divider := dividerStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", dividerHeight), "\n"))

		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			m.historyPanel.View(),
			divider,
			m.viewport.View(),
		))
	} else {
		sections = append(sections, m.viewport.View())
	}

	if m.slot.cur != nil {
		sections = append(sections, m.tabBar.View())
	}
	sections = append(sections, m.statusBar.View())
	if m.commandBar.IsActive() {
		sections = append(sections, m.commandBar.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	if !m.ready {
		return
	}

	used := lipgloss.Height(m.header.View())
	if m.form.IsActive() {
		used += lipgloss.Height(m.form.View())
	}
	if m.slot.cur != nil {
		used++ // tab bar
	}
	used++ // status bar
	if m.commandBar.IsActive() {
		used++
	}

	viewportHeight := m.height - used
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	// Narrower viewport when the history panel is shown.
	viewportWidth := m.width
	if m.historyPanel.IsVisible() {
		panelWidth := m.width * 30 / 100
		if panelWidth < 24 {
			panelWidth = 24
		}
		m.historyPanel.SetSize(panelWidth, viewportHeight)
		viewportWidth = m.width - panelWidth - 1 // -1 for divider
	}

	m.viewport.SetSize(viewportWidth, viewportHeight)
}

// sync pushes navigation and session state into the components.
func (m *Model) sync() {
	route, _ := m.host.CurrentRoute()
	s := m.slot.cur

	subtitle := ""
	if route.Screen == ScreenTransactions && route.Params.Filter != "" {
		subtitle = filterLabels[route.Params.Filter]
	}
	m.header.SetTitle(m.tr.Screen(route.Screen), subtitle)
	m.tabBar.SetActive(route.Screen)

	if s != nil {
		m.header.SetNavigation(s.state.CanGoBack, m.tr.Screens(s.state.Breadcrumbs))
		m.statusBar.SetUser(s.user.Name)
		m.statusBar.SetProtection(s.guard.Enabled())
		if m.historyPanel.IsVisible() {
			m.historyPanel.SetItems(m.historyItems(s), s.ctrl.History().Max())
		}
	} else {
		m.header.SetNavigation(false, nil)
		m.statusBar.SetUser("")
		m.statusBar.SetProtection(false)
	}

	m.statusBar.SetMode(modeNames[m.mode])
	m.layout()
	if m.mode != ModeHelp {
		m.viewport.SetContent(m.renderCurrent())
	}
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
}

func (m *Model) historyItems(s *session) []ui.HistoryItem {
	stack := s.ctrl.History().Stack()
	items := make([]ui.HistoryItem, len(stack))
	for i, rec := range stack {
		items[i] = ui.HistoryItem{
			Screen: rec.Screen,
			Label:  m.tr.Screen(rec.Screen),
			At:     rec.Time,
		}
	}
	return items
}

// renderCurrent renders the displayed route, going through the LRU cache.
// The key carries everything the output depends on, so stale entries are
// simply never hit again.
func (m *Model) renderCurrent() string {
	route, _ := m.host.CurrentRoute()
	s := m.slot.cur
	if s == nil {
		route.Screen = ScreenLogin
	}

	version, hideBalance := 0, false
	if s != nil {
		version, hideBalance = s.version, s.hideBalance
	}
	cacheKey := fmt.Sprintf("%s|%s|%s|%t|%d|%s|%s|%d",
		route.Screen, route.Params.Filter, route.Params.Bill, hideBalance,
		m.viewport.Width(), theme.Current.Name, m.tr.Lang(), version)

	if out, ok := m.renderCache.Get(cacheKey); ok {
		return out
	}

	r := screenRenderer{tr: m.tr, width: m.viewport.Width(), now: m.now()}
	out := r.render(route.Screen, route.Params, s)
	m.renderCache.Add(cacheKey, out)
	return out
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInsert:
		return m.handleInsertMode(msg)
	case ModeCommand:
		return m.handleCommandMode(msg)
	case ModeHistory:
		return m.handleHistoryMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keys in normal mode.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.slot.cur

	// gg detection: first "g" sets flag, second "g" goes to top.
	if msg.String() == "g" {
		if m.lastGKey {
			m.lastGKey = false
			m.viewport.GotoTop()
			m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
			return m, nil
		}
		m.lastGKey = true
		return m, nil
	}
	m.lastGKey = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()

	case key.Matches(msg, m.keys.Help):
		m.showHelp()
		return m, nil

	case key.Matches(msg, m.keys.CommandMode):
		m.mode = ModeCommand
		cmd := m.commandBar.Open()
		m.sync()
		return m, cmd

	case s == nil:
		// Signed out: only the login form is reachable.
		if key.Matches(msg, m.keys.Edit) {
			cmd := m.openLoginForm()
			m.sync()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if screen, ok := m.tabBar.At(int(msg.Runes[0] - '0')); ok {
			m.navigate(screen, Params{})
		}
	case key.Matches(msg, m.keys.Transactions):
		m.navigate(ScreenTransactions, Params{Filter: bank.TxAll})
	case key.Matches(msg, m.keys.Bills):
		m.navigate(ScreenBills, Params{})
	case key.Matches(msg, m.keys.Back):
		m.goBack()
	case key.Matches(msg, m.keys.BackOrHome):
		m.goBackOrHome()

	case key.Matches(msg, m.keys.Edit):
		if m.host.current() == ScreenPIX {
			cmd := m.openPIXForm()
			m.sync()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Filter):
		if route, _ := m.host.CurrentRoute(); route.Screen == ScreenTransactions {
			m.host.setParams(Params{Filter: bank.NextFilter(route.Params.Filter)})
		}
	case key.Matches(msg, m.keys.SelectBill):
		if m.host.current() == ScreenBills {
			m.selectBill(msg.String() == "N")
		}
	case key.Matches(msg, m.keys.PayBill):
		if route, _ := m.host.CurrentRoute(); route.Screen == ScreenBills {
			if b, ok := selectedBill(s, route.Params); ok {
				m.confirmBill(s, b)
			}
		}
	case key.Matches(msg, m.keys.ToggleBalance):
		s.hideBalance = !s.hideBalance
	case key.Matches(msg, m.keys.ToggleProtection):
		m.toggleProtection()
	case key.Matches(msg, m.keys.Logout):
		cmd := m.logout()
		return m, cmd

	case key.Matches(msg, m.keys.HistoryToggle):
		m.toggleHistoryPanel()

	default:
		// Forward to viewport for mouse scroll, etc.
		vp, cmd := m.viewport.Update(msg)
		m.viewport = *vp
		m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
		return m, cmd
	}

	m.sync()
	return m, nil
}

// handleInsertMode processes keys while a form is focused.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		m.sync()
		return m, nil

	case tea.KeyEnter:
		if !m.form.OnLastField() {
			return m, m.form.Next()
		}
		cmd := m.submitForm()
		m.sync()
		return m, cmd
	}

	f, cmd := m.form.Update(msg)
	m.form = *f
	return m, cmd
}

// handleCommandMode processes keys while the command bar is open.
func (m Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandBar.Close()
		m.mode = ModeNormal
		m.sync()
		return m, nil

	case tea.KeyEnter:
		line := m.commandBar.Submit()
		m.mode = ModeNormal
		cmd := m.executeCommand(line)
		m.sync()
		return m, cmd
	}

	cb, cmd := m.commandBar.Update(msg)
	m.commandBar = *cb
	return m, cmd
}

// handleHistoryMode processes keys when the history panel is active.
func (m Model) handleHistoryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.historyPanel.CursorDown()
		return m, nil

	case "k", "up":
		m.historyPanel.CursorUp()
		return m, nil

	case "g":
		m.historyPanel.HandleGKey()
		return m, nil

	case "G":
		m.historyPanel.GotoBottom()
		return m, nil

	case "enter":
		m.historyPanel.ResetGKey()
		item, ok := m.historyPanel.Selected()
		m.historyPanel.Hide()
		m.mode = ModeNormal
		if ok {
			m.navigate(item.Screen, Params{})
		}
		m.sync()
		return m, nil

	case "esc", "ctrl+h", "q":
		m.historyPanel.Hide()
		m.mode = ModeNormal
		m.sync()
		return m, nil
	}

	// Reset g key on any other key press.
	m.historyPanel.ResetGKey()
	return m, nil
}

// handleConfirmMode asks whether a blocked transfer should be invested
// or whether the selected bill should be paid.
func (m Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.slot.cur
	if s == nil || (s.pending == nil && s.pendingBill == nil) {
		m.mode = ModeNormal
		m.sync()
		return m, nil
	}

	switch msg.String() {
	case "y", "Y", "enter":
		if s.pendingBill != nil {
			m.payBill(s)
		} else {
			m.investBlocked(s)
		}
	case "n", "N", "esc":
		if s.pendingBill != nil {
			m.logger.Info("bill payment cancelled", "bill", s.pendingBill.ID)
			s.pendingBill = nil
			m.mode = ModeNormal
			m.statusBar.SetMessage(m.tr.Text("BillCancelled", nil), ui.MessageInfo)
			break
		}
		m.logger.Info("blocked transfer cancelled", "site", s.pending.Site, "amount", int64(s.pending.Amount))
		s.pending = nil
		s.touch()
		m.mode = ModeNormal
		m.statusBar.SetMessage(m.tr.Text("PIXCancelled", nil), ui.MessageInfo)
	default:
		return m, nil
	}

	m.sync()
	return m, nil
}

// handleHelpMode scrolls the help text until it is dismissed.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		m.viewport.GotoTop()
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	}
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
	return m, nil
}

// navigate asks the session's controller to open screen.
func (m *Model) navigate(screen string, params Params) {
	s := m.slot.cur
	if s == nil {
		return
	}
	if err := s.ctrl.NavigateTo(screen, params); err != nil {
		m.statusBar.SetMessage(err.Error(), ui.MessageError)
	}
}

func (m *Model) goBack() {
	s := m.slot.cur
	if s == nil {
		return
	}
	ok, err := s.ctrl.GoBack()
	switch {
	case err != nil:
		m.statusBar.SetMessage(err.Error(), ui.MessageError)
	case !ok:
		m.statusBar.SetMessage(m.tr.Text("NothingBack", nil), ui.MessageInfo)
	}
}

func (m *Model) goBackOrHome() {
	s := m.slot.cur
	if s == nil {
		return
	}
	if err := s.ctrl.GoBackOr(ScreenDashboard, Params{}); err != nil {
		m.statusBar.SetMessage(err.Error(), ui.MessageError)
	}
}

func (m *Model) startSession(u *auth.User) {
	m.slot.cur = newSession(u, m.host, m.cfg.MaxHistory, m.protectionSetting(), m.logger)
	m.closeForm()
	m.logger.Info("session started", "user", u.ID, "session", m.auth.SessionID())
}

func (m *Model) logout() tea.Cmd {
	if m.slot.cur == nil {
		return nil
	}
	m.auth.Logout() // runs the controller reset hook
	m.slot.cur = nil
	m.host.reset(signedOutScreens, ScreenLogin)
	m.historyPanel.Hide()
	m.renderCache.Purge()
	m.mode = ModeNormal

	cmd := m.openLoginForm()
	m.statusBar.SetMessage(m.tr.Text("LoggedOut", nil), ui.MessageInfo)
	m.sync()
	return cmd
}

func (m *Model) openLoginForm() tea.Cmd {
	m.formKind = formLogin
	m.mode = ModeInsert
	cmd := m.form.Open(m.tr.Screen(ScreenLogin), []ui.Field{
		{Name: "email", Label: "E-mail", Placeholder: "seu@email.com"},
		{Name: "password", Label: "Senha", Placeholder: "••••••", Secret: true},
	})
	return cmd
}

func (m *Model) openPIXForm() tea.Cmd {
	m.formKind = formPIX
	m.mode = ModeInsert
	route, _ := m.host.CurrentRoute()
	cmd := m.form.Open("PIX", []ui.Field{
		{Name: "key", Label: "Chave PIX", Placeholder: "CPF, e-mail, telefone ou chave aleatória"},
		{Name: "amount", Label: "Valor (centavos)", Placeholder: "0", CharLimit: 15},
	})
	if route.Params.PIXKey != "" {
		m.form.SetValue("key", route.Params.PIXKey)
	}
	return cmd
}

func (m *Model) closeForm() {
	m.form.Close()
	m.formKind = formNone
	m.mode = ModeNormal
}

func (m *Model) submitForm() tea.Cmd {
	switch m.formKind {
	case formLogin:
		return m.submitLogin()
	case formPIX:
		m.submitPIX()
	}
	return nil
}

func (m *Model) submitLogin() tea.Cmd {
	u, err := m.auth.Login(m.form.Value("email"), m.form.Value("password"))
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		m.statusBar.SetMessage(m.tr.Text("LoginMissing", nil), ui.MessageError)
		return nil
	case err != nil:
		m.statusBar.SetMessage(m.tr.Text("LoginFailed", nil), ui.MessageError)
		m.form.SetValue("password", "")
		return nil
	}

	m.startSession(u)
	m.statusBar.SetMessage(m.tr.Text("LoggedIn", map[string]any{"Name": u.FirstName()}), ui.MessageSuccess)
	return nil
}

func (m *Model) submitPIX() {
	s := m.slot.cur
	if s == nil {
		return
	}

	pixKey := m.form.Value("key")
	raw := m.form.Value("amount")
	if pixKey == "" || raw == "" {
		m.statusBar.SetMessage(m.tr.Text("PIXMissing", nil), ui.MessageError)
		return
	}
	amount, err := bank.ParseAmountDigits(raw)
	if err != nil || amount <= 0 {
		m.statusBar.SetMessage(m.tr.Text("PIXInvalid", nil), ui.MessageError)
		return
	}

	if attempt, blocked := s.guard.Check(pixKey, amount); blocked {
		m.logger.Warn("transfer to betting site blocked", "site", attempt.Site, "amount", int64(amount))
		s.pending = &attempt
		s.touch()
		m.closeForm()
		m.mode = ModeConfirm
		m.statusBar.SetMessage(m.tr.Text("PIXConfirm", map[string]any{
			"Site":   attempt.Site,
			"Amount": bank.FormatBRL(amount),
		}), ui.MessageError)
		return
	}

	tx, err := s.ledger.Transfer(pixKey, amount)
	if err != nil {
		m.statusBar.SetMessage(m.transferError(err), ui.MessageError)
		return
	}
	s.touch()
	m.closeForm()
	m.logger.Info("pix sent", "tx", tx.ID, "amount", int64(amount))
	m.statusBar.SetMessage(m.tr.Text("PIXSent", map[string]any{"Amount": bank.FormatBRL(amount)}), ui.MessageSuccess)
}

// investBlocked moves the pending blocked transfer into the protected
// investment and shows the portfolio.
func (m *Model) investBlocked(s *session) {
	a := *s.pending
	s.pending = nil
	m.mode = ModeNormal

	if _, err := s.ledger.Invest(a.Amount); err != nil {
		s.touch()
		m.statusBar.SetMessage(m.transferError(err), ui.MessageError)
		return
	}
	s.guard.MarkRedirected(a.ID)
	s.touch()
	m.logger.Info("blocked transfer invested", "attempt", a.ID, "amount", int64(a.Amount))

	m.navigate(ScreenInvestments, Params{})
	m.statusBar.SetMessage(m.tr.Text("PIXBlocked", map[string]any{
		"Site":   a.Site,
		"Amount": bank.FormatBRL(a.Amount),
	}), ui.MessageSuccess)
}

// selectBill moves the Bills selection to the next (or previous) boleto.
// Selecting is not a navigation; only the route params change.
func (m *Model) selectBill(backwards bool) {
	s := m.slot.cur
	route, _ := m.host.CurrentRoute()
	bills := s.ledger.Bills()
	if len(bills) == 0 {
		return
	}
	cur, _ := selectedBill(s, route.Params)
	i := 0
	for j, b := range bills {
		if b.ID == cur.ID {
			i = j
			break
		}
	}
	step := 1
	if backwards {
		step = len(bills) - 1
	}
	m.host.setParams(Params{Bill: bills[(i+step)%len(bills)].ID})
}

// selectedBill is the boleto picked on the Bills screen, defaulting to
// the first unpaid one.
func selectedBill(s *session, params Params) (bank.Bill, bool) {
	if params.Bill != "" {
		return s.ledger.Bill(params.Bill)
	}
	for _, b := range s.ledger.Bills() {
		if !b.Paid {
			return b, true
		}
	}
	return bank.Bill{}, false
}

func (m *Model) confirmBill(s *session, b bank.Bill) {
	if b.Paid {
		m.statusBar.SetMessage(m.tr.Text("BillAlreadyPaid", nil), ui.MessageInfo)
		return
	}
	s.pendingBill = &b
	m.mode = ModeConfirm
	m.statusBar.SetMessage(m.tr.Text("BillConfirm", map[string]any{
		"Name":   b.Name,
		"Amount": bank.FormatBRL(b.Amount),
	}), ui.MessageInfo)
}

func (m *Model) payBill(s *session) {
	b := *s.pendingBill
	s.pendingBill = nil
	m.mode = ModeNormal

	tx, err := s.ledger.PayBill(b.ID)
	if err != nil {
		m.statusBar.SetMessage(m.transferError(err), ui.MessageError)
		return
	}
	s.touch()
	m.logger.Info("bill paid", "bill", b.ID, "tx", tx.ID, "amount", int64(b.Amount))
	m.statusBar.SetMessage(m.tr.Text("BillPaid", nil), ui.MessageSuccess)
}

func (m *Model) transferError(err error) string {
	switch {
	case errors.Is(err, bank.ErrBillPaid):
		return m.tr.Text("BillAlreadyPaid", nil)
	case errors.Is(err, bank.ErrInsufficientFunds):
		return m.tr.Text("InsufficientFunds", nil)
	case errors.Is(err, bank.ErrInvalidAmount):
		return m.tr.Text("PIXInvalid", nil)
	case errors.Is(err, bank.ErrMissingKey):
		return m.tr.Text("PIXMissing", nil)
	}
	return err.Error()
}

func (m *Model) protectionSetting() bool {
	v, ok, err := m.store.Get(protectionKey)
	if err != nil {
		m.logger.Error("reading protection setting", "err", err)
		return true
	}
	return !ok || string(v) != "off"
}

func (m *Model) toggleProtection() {
	s := m.slot.cur
	if s == nil {
		return
	}
	on := !s.guard.Enabled()
	s.guard.SetEnabled(on)
	s.touch()

	value, msgID := "off", "ProtectionOff"
	if on {
		value, msgID = "on", "ProtectionOn"
	}
	if err := m.store.Set(protectionKey, []byte(value)); err != nil {
		m.logger.Error("saving protection setting", "err", err)
	}
	m.logger.Info("protection toggled", "enabled", on)
	m.statusBar.SetMessage(m.tr.Text(msgID, nil), ui.MessageInfo)
}

func (m *Model) toggleHistoryPanel() {
	if m.historyPanel.IsVisible() {
		m.historyPanel.Hide()
		m.mode = ModeNormal
		return
	}
	if m.slot.cur == nil {
		return
	}
	m.historyPanel.Show()
	m.mode = ModeHistory
	m.layout()
}

func (m *Model) showHelp() {
	m.mode = ModeHelp
	m.statusBar.SetMode(modeNames[m.mode])
	m.viewport.SetContent(ui.RenderMarkdown(helpMarkdown(m.keys), m.viewport.Width()-2))
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
}

// executeCommand handles :commands.
func (m *Model) executeCommand(line string) tea.Cmd {
	c, ok := ui.ParseCommand(line)
	if !ok {
		return nil
	}
	signedIn := m.slot.cur != nil

	switch c.Name {
	case "q", "quit":
		return tea.Quit

	case "go", "open":
		if !signedIn {
			break
		}
		screen, found := m.resolveScreen(c.Arg())
		if !found {
			m.statusBar.SetMessage(fmt.Sprintf("%q: %v", c.Arg(), ErrUnknownScreen), ui.MessageError)
			return nil
		}
		m.navigate(screen, Params{})
	case "pay":
		if !signedIn || m.host.current() != ScreenBills {
			break
		}
		route, _ := m.host.CurrentRoute()
		params := route.Params
		if c.Arg() != "" {
			bills := m.slot.cur.ledger.Bills()
			var n int
			if _, err := fmt.Sscanf(c.Arg(), "%d", &n); err != nil || n < 1 || n > len(bills) {
				m.statusBar.SetMessage(fmt.Sprintf("%q: %v", c.Arg(), bank.ErrBillNotFound), ui.MessageError)
				return nil
			}
			params = Params{Bill: bills[n-1].ID}
			m.host.setParams(params)
		}
		if b, ok := selectedBill(m.slot.cur, params); ok {
			m.confirmBill(m.slot.cur, b)
		}
	case "back":
		m.goBack()
	case "home":
		m.navigate(ScreenDashboard, Params{})
	case "history":
		m.toggleHistoryPanel()
	case "protect":
		m.toggleProtection()
	case "logout":
		return m.logout()
	case "help":
		m.showHelp()

	case "theme":
		if len(c.Args) == 0 {
			m.statusBar.SetMessage(fmt.Sprintf("%s | %s", theme.Current.Name, strings.Join(theme.List(), ", ")), ui.MessageInfo)
			return nil
		}
		if !theme.Set(c.Args[0]) {
			m.statusBar.SetMessage(fmt.Sprintf("%s (%s)", c.Args[0], strings.Join(theme.List(), ", ")), ui.MessageError)
			return nil
		}
		name := c.Args[0]
		m.updateConfig(func(cfg *storage.Config) { cfg.Theme = name })
		m.statusBar.SetMessage(m.tr.Text("ThemeChanged", map[string]any{"Name": c.Args[0]}), ui.MessageInfo)

	case "lang":
		if len(c.Args) == 0 {
			m.statusBar.SetMessage(m.tr.Lang(), ui.MessageInfo)
			return nil
		}
		tr, err := locale.New(c.Args[0])
		if err != nil {
			m.statusBar.SetMessage(err.Error(), ui.MessageError)
			return nil
		}
		m.tr = tr
		m.tabBar.SetLabels(tr.Screen)
		m.updateConfig(func(cfg *storage.Config) { cfg.Locale = tr.Lang() })
		m.statusBar.SetMessage(m.tr.Text("LangChanged", map[string]any{"Name": tr.Lang()}), ui.MessageInfo)

	default:
		m.statusBar.SetMessage(m.tr.Text("UnknownCommand", map[string]any{"Name": c.Name}), ui.MessageError)
	}
	return nil
}

// resolveScreen matches a screen of the active navigator by identifier or
// display name, ignoring case.
func (m *Model) resolveScreen(name string) (string, bool) {
	for screen := range m.host.screens {
		if strings.EqualFold(name, screen) || strings.EqualFold(name, m.tr.Screen(screen)) {
			return screen, true
		}
	}
	return "", false
}

// updateConfig changes a setting for this run and in config.toml. Only
// the changed setting is written; command-line overrides stay in memory.
func (m *Model) updateConfig(fn func(*storage.Config)) {
	if err := m.cfg.Update(fn); err != nil {
		m.logger.Error("saving config", "err", err)
	}
}
