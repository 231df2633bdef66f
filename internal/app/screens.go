package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/xbank/internal/bank"
	"github.com/vidyasagar/xbank/internal/locale"
	"github.com/vidyasagar/xbank/internal/protection"
	"github.com/vidyasagar/xbank/internal/theme"
)

// screenRenderer turns a route into the viewport body.
type screenRenderer struct {
	tr    *locale.Translator
	width int
	now   time.Time
}

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	text    lipgloss.Style
	dim     lipgloss.Style
	key     lipgloss.Style
	credit  lipgloss.Style
	debit   lipgloss.Style
	warn    lipgloss.Style
	ok      lipgloss.Style
	card    lipgloss.Style
}

func newStyles(width int) styles {
	t := theme.Current
	cardWidth := width - 4
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 20 {
		cardWidth = 20
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Heading),
		section: lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginTop(1),
		text:    lipgloss.NewStyle().Foreground(t.Text),
		dim:     lipgloss.NewStyle().Foreground(t.TextDim),
		key:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		credit:  lipgloss.NewStyle().Foreground(t.Credit),
		debit:   lipgloss.NewStyle().Foreground(t.Debit),
		warn:    lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		ok:      lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(cardWidth),
	}
}

func (r screenRenderer) render(route string, params Params, s *session) string {
	st := newStyles(r.width)

	var body string
	switch route {
	case ScreenLogin:
		body = r.login(st)
	case ScreenDashboard:
		body = r.dashboard(st, s)
	case ScreenPIX:
		body = r.pix(st, s)
	case ScreenInvestments:
		body = r.investments(st, s)
	case ScreenCards:
		body = r.cards(st)
	case ScreenMore:
		body = r.more(st, s)
	case ScreenTransactions:
		body = r.transactions(st, s, params.Filter)
	case ScreenBills:
		body = r.bills(st, s, params)
	default:
		body = st.dim.Render(fmt.Sprintf("%q não está disponível.", route))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (r screenRenderer) login(st styles) string {
	var sb strings.Builder
	sb.WriteString(st.title.Render("XBank"))
	sb.WriteString("\n")
	sb.WriteString(st.dim.Render("Seu banco digital"))
	sb.WriteString("\n\n")
	sb.WriteString(st.text.Render("Contas de demonstração (senha 123456):"))
	sb.WriteString("\n")
	sb.WriteString(st.key.Render("  joao@email.com"))
	sb.WriteString("\n")
	sb.WriteString(st.key.Render("  maria@email.com"))
	sb.WriteString("\n\n")
	sb.WriteString(st.dim.Render("Tab alterna os campos, Enter entra, i reabre o formulário."))
	return sb.String()
}

func (r screenRenderer) balanceCard(st styles, s *session, hidden bool) string {
	balance := bank.FormatBRL(s.ledger.Balance())
	if hidden {
		balance = "R$ ••••••"
	}
	return st.card.Render(
		st.dim.Render(r.tr.Text("Balance", nil)) + "\n" +
			st.title.Render(balance),
	)
}

func (r screenRenderer) txLine(st styles, tx bank.Transaction) string {
	amount := st.credit.Render(bank.FormatSigned(tx.Amount))
	if tx.Amount < 0 {
		amount = st.debit.Render(bank.FormatSigned(tx.Amount))
	}
	return fmt.Sprintf("%s  %s  %s",
		st.dim.Render(bank.FormatDate(tx.At)+" "+bank.FormatTime(tx.At)),
		st.text.Render(tx.Description),
		amount,
	)
}

func (r screenRenderer) dashboard(st styles, s *session) string {
	var sb strings.Builder
	sb.WriteString(st.title.Render(r.tr.Text("Greeting", map[string]any{"Name": s.user.FirstName()})))
	sb.WriteString("\n\n")
	sb.WriteString(r.balanceCard(st, s, s.hideBalance))
	sb.WriteString("\n")
	sb.WriteString(st.dim.Render("  (v mostra/oculta o saldo)"))
	sb.WriteString("\n")

	sb.WriteString(st.section.Render("Acesso rápido"))
	sb.WriteString("\n")
	for _, qa := range bank.QuickActions() {
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
			st.key.Render(fmt.Sprintf("[%s]", quickKey(qa.Route))),
			st.text.Render(qa.Label),
			st.dim.Render(qa.Description),
		))
	}

	sb.WriteString(st.section.Render("Últimas movimentações"))
	sb.WriteString("\n")
	txs := s.ledger.Transactions()
	if len(txs) > 3 {
		txs = txs[:3]
	}
	for _, tx := range txs {
		sb.WriteString("  " + r.txLine(st, tx) + "\n")
	}
	return sb.String()
}

// quickKey is the key that opens a quick action's screen.
func quickKey(screen string) string {
	switch screen {
	case ScreenTransactions:
		return "t"
	case ScreenBills:
		return "b"
	}
	for i, s := range tabScreens {
		if s == screen {
			return fmt.Sprint(i + 1)
		}
	}
	return "?"
}

func (r screenRenderer) pix(st styles, s *session) string {
	var sb strings.Builder
	sb.WriteString(r.balanceCard(st, s, false))
	sb.WriteString("\n\n")
	sb.WriteString(st.text.Render("Pressione "))
	sb.WriteString(st.key.Render("i"))
	sb.WriteString(st.text.Render(" para informar chave e valor."))
	sb.WriteString("\n")
	sb.WriteString(st.dim.Render("O valor é digitado em centavos: 1500 = R$ 15,00."))
	sb.WriteString("\n")

	if s.guard.Enabled() {
		sb.WriteString(st.ok.Render("🛡 " + r.tr.Text("ProtectionOn", nil)))
	} else {
		sb.WriteString(st.warn.Render(r.tr.Text("ProtectionOff", nil)))
	}
	sb.WriteString("\n")

	sb.WriteString(st.section.Render("PIX recentes"))
	sb.WriteString("\n")
	for _, tx := range bank.FilterTransactions(s.ledger.Transactions(), bank.TxPIX) {
		sb.WriteString("  " + r.txLine(st, tx) + "\n")
	}
	return sb.String()
}

func (r screenRenderer) investments(st styles, s *session) string {
	invs := s.ledger.Investments()
	p := bank.Totals(invs)

	var sb strings.Builder
	sb.WriteString(st.card.Render(
		st.dim.Render("Patrimônio investido") + "\n" +
			st.title.Render(bank.FormatBRL(p.Value())) + "\n" +
			st.dim.Render("Aplicado ") + st.text.Render(bank.FormatBRL(p.Invested)) +
			st.dim.Render("  Rendimento ") + r.signed(st, p.Profit),
	))
	sb.WriteString("\n")

	sb.WriteString(st.section.Render("Carteira"))
	sb.WriteString("\n")
	for _, inv := range invs {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", st.text.Bold(true).Render(inv.Name), st.dim.Render(inv.Type)))
		sb.WriteString(fmt.Sprintf("    %s  %s a.a.  risco %s  %s\n",
			st.text.Render(bank.FormatBRL(inv.Amount)),
			st.key.Render(bank.FormatPercent(inv.Profitability)),
			st.dim.Render(inv.Risk),
			r.signed(st, inv.Profit),
		))
	}
	return sb.String()
}

func (r screenRenderer) signed(st styles, c bank.Cents) string {
	if c < 0 {
		return st.debit.Render(bank.FormatSigned(c))
	}
	return st.credit.Render(bank.FormatSigned(c))
}

func (r screenRenderer) cards(st styles) string {
	var sb strings.Builder
	for _, c := range bank.Cards() {
		kind := "Débito"
		if c.Credit {
			kind = "Crédito"
		}
		lines := []string{
			st.title.Render(c.Name) + "  " + st.dim.Render(kind+" · "+c.Brand),
			st.text.Render(c.Number),
		}
		if c.Credit {
			lines = append(lines,
				st.dim.Render("Limite ")+st.text.Render(bank.FormatBRL(c.Limit)),
				st.dim.Render("Usado ")+st.debit.Render(bank.FormatBRL(c.Used)),
				st.dim.Render("Disponível ")+st.credit.Render(bank.FormatBRL(c.Available())),
			)
		}
		sb.WriteString(st.card.Render(strings.Join(lines, "\n")))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r screenRenderer) more(st styles, s *session) string {
	var sb strings.Builder
	sb.WriteString(st.card.Render(
		st.title.Render(s.user.Name) + "\n" +
			st.dim.Render(s.user.Email) + "\n" +
			st.dim.Render("CPF "+s.user.CPF),
	))
	sb.WriteString("\n")

	sb.WriteString(st.section.Render("Proteção Anti-Apostas"))
	sb.WriteString("\n")
	if s.guard.Enabled() {
		sb.WriteString("  " + st.ok.Render("🛡 "+r.tr.Text("ProtectionOn", nil)))
	} else {
		sb.WriteString("  " + st.warn.Render(r.tr.Text("ProtectionOff", nil)))
	}
	sb.WriteString(st.dim.Render("  (p alterna)"))
	sb.WriteString("\n")

	stats := s.guard.Stats()
	sb.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		st.dim.Render("Tentativas bloqueadas"), st.text.Render(fmt.Sprint(stats.Blocked)),
		st.dim.Render("Investidas"), st.text.Render(fmt.Sprint(stats.Redirected)),
		st.dim.Render("Valor protegido"), st.credit.Render(bank.FormatBRL(stats.Protected)),
	))
	for _, a := range s.guard.Attempts() {
		status := st.warn.Render("cancelada")
		if a.Redirected {
			status = st.ok.Render("investida")
		}
		sb.WriteString(fmt.Sprintf("    %s  %s  %s  %s\n",
			st.dim.Render(bank.FormatDate(a.At)+" "+bank.FormatTime(a.At)),
			st.text.Render(a.Site),
			st.text.Render(bank.FormatBRL(a.Amount)),
			status,
		))
	}

	sb.WriteString(st.section.Render("Se você investisse em vez de apostar"))
	sb.WriteString("\n")
	sb.WriteString(st.dim.Render(fmt.Sprintf("  %s por mês, rendendo %s ao mês",
		bank.FormatBRL(protection.AverageMonthlyGambling),
		bank.FormatPercent(protection.MonthlyReturn*100))))
	sb.WriteString("\n")
	for _, months := range protection.Periods {
		p := protection.Project(protection.AverageMonthlyGambling, protection.MonthlyReturn, months)
		sb.WriteString(fmt.Sprintf("  %s  %s %s  %s %s  %s\n",
			st.key.Render(fmt.Sprintf("%2d meses", p.Months)),
			st.dim.Render("apostado"), st.debit.Render(bank.FormatBRL(p.Gambled)),
			st.dim.Render("investido"), st.credit.Render(bank.FormatBRL(p.Invested)),
			st.text.Render("+"+bank.FormatPercent(p.Profitability)),
		))
	}
	return sb.String()
}

var filterLabels = map[bank.TxType]string{
	bank.TxAll:        "Todas",
	bank.TxPIX:        "PIX",
	bank.TxPayment:    "Pagamentos",
	bank.TxIncome:     "Receitas",
	bank.TxInvestment: "Investimentos",
}

func (r screenRenderer) transactions(st styles, s *session, filter bank.TxType) string {
	if filter == "" {
		filter = bank.TxAll
	}

	var sb strings.Builder
	for i, f := range bank.TxFilters {
		label := filterLabels[f]
		if f == filter {
			sb.WriteString(st.key.Underline(true).Render(label))
		} else {
			sb.WriteString(st.dim.Render(label))
		}
		if i < len(bank.TxFilters)-1 {
			sb.WriteString(st.dim.Render(" · "))
		}
	}
	sb.WriteString(st.dim.Render("   (f alterna)"))
	sb.WriteString("\n\n")

	txs := bank.FilterTransactions(s.ledger.Transactions(), filter)
	if len(txs) == 0 {
		sb.WriteString(st.dim.Render("Nenhuma movimentação."))
		return sb.String()
	}
	for _, tx := range txs {
		sb.WriteString(r.txLine(st, tx) + "\n")
	}
	return sb.String()
}

func (r screenRenderer) bills(st styles, s *session, params Params) string {
	bills := s.ledger.Bills()
	pending := 0
	for _, b := range bills {
		if !b.Paid {
			pending++
		}
	}
	selected, _ := selectedBill(s, params)

	var sb strings.Builder
	sb.WriteString(st.card.Render(
		st.dim.Render("Total a pagar") + "\n" +
			st.title.Render(bank.FormatBRL(bank.PendingTotal(bills))) + "\n" +
			st.dim.Render(fmt.Sprintf("%d conta(s) pendente(s)", pending)),
	))
	sb.WriteString("\n")
	sb.WriteString(st.dim.Render("  (n seleciona, P paga)"))
	sb.WriteString("\n")

	for _, b := range bills {
		marker := "  "
		if b.ID == selected.ID {
			marker = st.key.Render("› ")
		}
		var status string
		switch days := bank.DaysUntil(b.Due, r.now); {
		case b.Paid:
			status = st.ok.Render("Pago")
		case days < 0:
			status = st.debit.Render("Vencido")
		case days == 0:
			status = st.warn.Render("Vence hoje")
		default:
			status = st.text.Render(fmt.Sprintf("Vence em %d dias", days))
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s\n", marker, st.text.Bold(true).Render(b.Name), st.dim.Render(b.Company)))
		sb.WriteString(fmt.Sprintf("    %s  %s  %s\n",
			st.text.Render(bank.FormatBRL(b.Amount)),
			st.dim.Render(bank.FormatDate(b.Due)),
			status,
		))
	}
	return sb.String()
}
