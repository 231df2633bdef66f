// Package protection blocks PIX transfers to betting sites.
package protection

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vidyasagar/xbank/internal/bank"
)

// GamblingDomains is the list of known betting sites.
var GamblingDomains = []string{
	"bet365.com",
	"betano.com",
	"sportingbet.com",
	"bet777.com",
	"betfair.com",
	"rivalo.com",
	"betway.com",
	"pixbet.com",
	"galera.bet",
	"esportes.da.sorte",
	"kto.com",
	"betmotion.com",
	"novibet.com",
	"superbet.com",
	"parimatch.com",
}

// Detector matches PIX keys against a domain list.
type Detector struct {
	domains []string
}

// NewDetector creates a detector for GamblingDomains plus any extra domains.
func NewDetector(extra ...string) *Detector {
	d := &Detector{}
	for _, dom := range append(append([]string{}, GamblingDomains...), extra...) {
		dom = strings.ToLower(strings.TrimSpace(dom))
		if dom != "" {
			d.domains = append(d.domains, dom)
		}
	}
	return d
}

// Match returns the first domain contained in key, ignoring case.
func (d *Detector) Match(key string) (string, bool) {
	lower := strings.ToLower(key)
	for _, dom := range d.domains {
		if strings.Contains(lower, dom) {
			return dom, true
		}
	}
	return "", false
}

// Attempt is a blocked transfer.
type Attempt struct {
	ID         string
	Site       string
	Amount     bank.Cents
	At         time.Time
	Redirected bool
}

// Stats summarizes the blocked attempts. Protected only counts the
// amounts that were invested instead of sent.
type Stats struct {
	Blocked    int
	Redirected int
	Protected  bank.Cents
}

// Guard checks transfers and remembers the ones it blocked.
type Guard struct {
	detector *Detector
	enabled  bool
	attempts []Attempt
	now      func() time.Time
}

// NewGuard creates an enabled guard.
func NewGuard(d *Detector) *Guard {
	return &Guard{
		detector: d,
		enabled:  true,
		now:      time.Now,
	}
}

// Enabled reports whether transfers are being checked.
func (g *Guard) Enabled() bool {
	return g.enabled
}

// SetEnabled turns the protection on or off.
func (g *Guard) SetEnabled(on bool) {
	g.enabled = on
}

// Check inspects a transfer. If key points to a betting site and the
// guard is enabled, the attempt is recorded and returned.
func (g *Guard) Check(key string, amount bank.Cents) (Attempt, bool) {
	if !g.enabled {
		return Attempt{}, false
	}
	site, ok := g.detector.Match(key)
	if !ok {
		return Attempt{}, false
	}
	a := Attempt{
		ID:     uuid.NewString(),
		Site:   site,
		Amount: amount,
		At:     g.now(),
	}
	g.attempts = append([]Attempt{a}, g.attempts...)
	return a, true
}

// MarkRedirected flags the attempt as invested instead of sent.
func (g *Guard) MarkRedirected(id string) {
	for i := range g.attempts {
		if g.attempts[i].ID == id {
			g.attempts[i].Redirected = true
			return
		}
	}
}

// Attempts returns the blocked attempts, newest first.
func (g *Guard) Attempts() []Attempt {
	out := make([]Attempt, len(g.attempts))
	copy(out, g.attempts)
	return out
}

// Stats sums the blocked attempts.
func (g *Guard) Stats() Stats {
	s := Stats{Blocked: len(g.attempts)}
	for _, a := range g.attempts {
		if a.Redirected {
			s.Redirected++
			s.Protected += a.Amount
		}
	}
	return s
}
