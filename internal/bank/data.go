package bank

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount is returned for zero, negative or unparseable amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when a transfer exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrMissingKey is returned when a PIX transfer has no key.
	ErrMissingKey = errors.New("missing PIX key")
	// ErrBillNotFound is returned when paying a bill the ledger does not hold.
	ErrBillNotFound = errors.New("bill not found")
	// ErrBillPaid is returned when paying a bill twice.
	ErrBillPaid = errors.New("bill already paid")
)

// TxType classifies a transaction for filtering.
type TxType string

const (
	TxAll        TxType = "all"
	TxPIX        TxType = "pix"
	TxPayment    TxType = "payment"
	TxIncome     TxType = "income"
	TxInvestment TxType = "investment"
)

// TxFilters lists the transaction filters in display order.
var TxFilters = []TxType{TxAll, TxPIX, TxPayment, TxIncome, TxInvestment}

// Transaction is one entry of the account statement.
type Transaction struct {
	ID          string
	Type        TxType
	Description string
	Amount      Cents // negative for debits
	At          time.Time
	Status      string
}

// Bill is a boleto waiting to be paid (or already paid).
type Bill struct {
	ID      string
	Name    string
	Company string
	Amount  Cents
	Due     time.Time
	Paid    bool
	Barcode string
}

// Card is a debit or credit card.
type Card struct {
	ID     string
	Credit bool
	Brand  string
	Number string
	Name   string
	Limit  Cents
	Used   Cents
}

// Available returns the unused credit limit.
func (c Card) Available() Cents {
	return c.Limit - c.Used
}

// Investment is one position of the portfolio.
type Investment struct {
	ID            string
	Name          string
	Type          string
	Profitability float64 // yearly, in percent
	Risk          string
	Amount        Cents
	Profit        Cents
	Description   string
}

// QuickAction is a dashboard shortcut to another screen.
type QuickAction struct {
	Label       string
	Description string
	Route       string
}

func day(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

// QuickActions returns the dashboard shortcuts.
func QuickActions() []QuickAction {
	return []QuickAction{
		{Label: "PIX", Description: "Transferir agora", Route: "PIX"},
		{Label: "Boletos", Description: "Pagar contas", Route: "Bills"},
		{Label: "Investir", Description: "Fazer seu dinheiro render", Route: "Investimentos"},
		{Label: "Extrato", Description: "Ver movimentações", Route: "Transactions"},
	}
}

// Transactions returns the statement, newest first.
func Transactions() []Transaction {
	return []Transaction{
		{ID: "1", Type: TxPIX, Description: "PIX enviado para Maria Santos", Amount: -25000, At: day(2024, time.January, 15, 14, 30), Status: "completed"},
		{ID: "2", Type: TxIncome, Description: "Salário - Empresa XYZ", Amount: 500000, At: day(2024, time.January, 15, 9, 0), Status: "completed"},
		{ID: "3", Type: TxPayment, Description: "Pagamento Cartão de Crédito", Amount: -89050, At: day(2024, time.January, 14, 16, 45), Status: "completed"},
		{ID: "4", Type: TxInvestment, Description: "Aplicação CDB XBank", Amount: -100000, At: day(2024, time.January, 13, 11, 20), Status: "completed"},
		{ID: "5", Type: TxPIX, Description: "PIX recebido de João Silva", Amount: 15000, At: day(2024, time.January, 12, 18, 15), Status: "completed"},
	}
}

// FilterTransactions returns the transactions of the given type; TxAll keeps everything.
func FilterTransactions(txs []Transaction, typ TxType) []Transaction {
	if typ == TxAll || typ == "" {
		return txs
	}
	var out []Transaction
	for _, tx := range txs {
		if tx.Type == typ {
			out = append(out, tx)
		}
	}
	return out
}

// NextFilter cycles through TxFilters.
func NextFilter(cur TxType) TxType {
	for i, f := range TxFilters {
		if f == cur {
			return TxFilters[(i+1)%len(TxFilters)]
		}
	}
	return TxAll
}

// Bills returns the boletos of the current month.
func Bills() []Bill {
	return []Bill{
		{ID: "1", Name: "Energia Elétrica", Company: "EDP São Paulo", Amount: 15230, Due: day(2024, time.January, 25, 0, 0), Barcode: "12345678901234567890123456789012345678901234567890"},
		{ID: "2", Name: "Internet Fibra", Company: "Vivo Fibra", Amount: 8990, Due: day(2024, time.January, 28, 0, 0), Barcode: "98765432109876543210987654321098765432109876543210"},
		{ID: "3", Name: "Cartão de Crédito", Company: "XBank Card", Amount: 89050, Due: day(2024, time.January, 20, 0, 0), Paid: true, Barcode: "11111111111111111111111111111111111111111111111111"},
		{ID: "4", Name: "Financiamento Imóvel", Company: "Caixa Econômica", Amount: 125000, Due: day(2024, time.January, 30, 0, 0), Barcode: "22222222222222222222222222222222222222222222222222"},
	}
}

// PendingTotal sums the unpaid bills.
func PendingTotal(bills []Bill) Cents {
	var total Cents
	for _, b := range bills {
		if !b.Paid {
			total += b.Amount
		}
	}
	return total
}

// Cards returns the customer's cards.
func Cards() []Card {
	return []Card{
		{ID: "1", Credit: true, Brand: "Mastercard", Number: "**** **** **** 1234", Name: "XBank Platinum", Limit: 500000, Used: 120000},
		{ID: "2", Brand: "Visa", Number: "**** **** **** 5678", Name: "XBank Débito"},
	}
}

// Investments returns the portfolio.
func Investments() []Investment {
	return []Investment{
		{ID: "1", Name: "Tesouro Selic 2029", Type: "Renda Fixa", Profitability: 13.75, Risk: "Baixo", Amount: 500000, Profit: 15625, Description: "Título público indexado à taxa Selic"},
		{ID: "2", Name: "CDB XBank Premium", Type: "Renda Fixa", Profitability: 14.2, Risk: "Baixo", Amount: 300000, Profit: 9850, Description: "CDB com liquidez diária"},
		{ID: "3", Name: "Fundo Multimercado Alpha", Type: "Renda Variável", Profitability: 18.5, Risk: "Médio", Amount: 200000, Profit: -4530, Description: "Fundo diversificado de renda variável"},
		{ID: "4", Name: "XBank Cripto", Type: "Criptomoedas", Profitability: 25.8, Risk: "Alto", Amount: 150000, Profit: 28740, Description: "Exposição a criptomoedas principais"},
	}
}

// Portfolio sums a set of positions.
type Portfolio struct {
	Invested Cents
	Profit   Cents
}

// Value returns invested plus profit.
func (p Portfolio) Value() Cents {
	return p.Invested + p.Profit
}

// Totals sums the given investments.
func Totals(invs []Investment) Portfolio {
	var p Portfolio
	for _, inv := range invs {
		p.Invested += inv.Amount
		p.Profit += inv.Profit
	}
	return p
}
