package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ledger is the in-memory account of the logged-in user. It starts from
// the mock statement and records the PIX transfers, bill payments and
// automatic investments made during the session.
type Ledger struct {
	balance     Cents
	txs         []Transaction
	bills       []Bill
	investments []Investment
	now         func() time.Time
}

// NewLedger creates a ledger with the given opening balance.
func NewLedger(balance Cents) *Ledger {
	return &Ledger{
		balance:     balance,
		txs:         Transactions(),
		bills:       Bills(),
		investments: Investments(),
		now:         time.Now,
	}
}

// Balance returns the available balance.
func (l *Ledger) Balance() Cents {
	return l.balance
}

// Transactions returns the statement, newest first.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Bills returns the boletos with the payments made this session applied.
func (l *Ledger) Bills() []Bill {
	out := make([]Bill, len(l.bills))
	copy(out, l.bills)
	return out
}

// Bill looks a boleto up by ID.
func (l *Ledger) Bill(id string) (Bill, bool) {
	for _, b := range l.bills {
		if b.ID == id {
			return b, true
		}
	}
	return Bill{}, false
}

// PayBill debits the boleto's amount and marks it paid.
func (l *Ledger) PayBill(id string) (Transaction, error) {
	i := -1
	for j := range l.bills {
		if l.bills[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return Transaction{}, fmt.Errorf("pay bill %q: %w", id, ErrBillNotFound)
	}
	b := &l.bills[i]
	if b.Paid {
		return Transaction{}, fmt.Errorf("pay bill %q: %w", id, ErrBillPaid)
	}
	if err := l.debit(b.Amount); err != nil {
		return Transaction{}, err
	}
	b.Paid = true

	tx := Transaction{
		ID:          uuid.NewString(),
		Type:        TxPayment,
		Description: b.Name + " - " + b.Company,
		Amount:      -b.Amount,
		At:          l.now(),
		Status:      "completed",
	}
	l.txs = append([]Transaction{tx}, l.txs...)
	return tx, nil
}

// Investments returns the portfolio, including session investments.
func (l *Ledger) Investments() []Investment {
	out := make([]Investment, len(l.investments))
	copy(out, l.investments)
	return out
}

// Transfer sends a PIX to key.
func (l *Ledger) Transfer(key string, amount Cents) (Transaction, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Transaction{}, ErrMissingKey
	}
	if err := l.debit(amount); err != nil {
		return Transaction{}, err
	}
	tx := Transaction{
		ID:          uuid.NewString(),
		Type:        TxPIX,
		Description: "PIX enviado para " + key,
		Amount:      -amount,
		At:          l.now(),
		Status:      "completed",
	}
	l.txs = append([]Transaction{tx}, l.txs...)
	return tx, nil
}

// Invest moves amount into the protected savings position. Used when a
// transfer to a gambling site is redirected.
func (l *Ledger) Invest(amount Cents) (Transaction, error) {
	if err := l.debit(amount); err != nil {
		return Transaction{}, err
	}
	tx := Transaction{
		ID:          uuid.NewString(),
		Type:        TxInvestment,
		Description: "Aplicação automática - Proteção Anti-Apostas",
		Amount:      -amount,
		At:          l.now(),
		Status:      "completed",
	}
	l.txs = append([]Transaction{tx}, l.txs...)

	for i := range l.investments {
		if l.investments[i].ID == protectedID {
			l.investments[i].Amount += amount
			return tx, nil
		}
	}
	l.investments = append(l.investments, Investment{
		ID:            protectedID,
		Name:          "Reserva Protegida",
		Type:          "Renda Fixa",
		Profitability: 13.75,
		Risk:          "Baixo",
		Amount:        amount,
		Description:   "Valores redirecionados pela proteção anti-apostas",
	})
	return tx, nil
}

const protectedID = "protected"

func (l *Ledger) debit(amount Cents) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > l.balance {
		return fmt.Errorf("debit of %s with balance %s: %w",
			FormatBRL(amount), FormatBRL(l.balance), ErrInsufficientFunds)
	}
	l.balance -= amount
	return nil
}
