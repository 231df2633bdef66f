package bank

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Cents is an amount of Brazilian reais expressed in centavos.
type Cents int64

// Reais returns the amount as a float number of reais.
func (c Cents) Reais() float64 {
	return float64(c) / 100
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats an amount the way the app shows money, e.g. "R$ 1.234,50".
func FormatBRL(c Cents) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return sign + "R$ " + printer.Sprintf("%v", number.Decimal(c.Reais(), number.Scale(2)))
}

// FormatSigned is FormatBRL with an explicit "+" for credits.
func FormatSigned(c Cents) string {
	if c >= 0 {
		return "+" + FormatBRL(c)
	}
	return FormatBRL(c)
}

// FormatPercent formats a yearly rate such as 13.75 as "13,75%".
func FormatPercent(rate float64) string {
	return printer.Sprintf("%v", number.Decimal(rate, number.Scale(2))) + "%"
}

// FormatDate formats t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTime formats t as hh:mm.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// ParseAmountDigits reads user input the way the PIX form does: every
// non-digit is dropped and the remaining digits are centavos, so "15000"
// and "R$ 150,00" are both 150 reais.
func ParseAmountDigits(s string) (Cents, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, ErrInvalidAmount)
	}
	return Cents(v), nil
}

// DaysUntil returns the number of days from now until due, rounded up.
// Negative values mean the date has passed.
func DaysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
