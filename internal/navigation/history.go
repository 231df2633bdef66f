package navigation

import (
	"errors"
	"time"
)

// DefaultMaxHistory is the number of records a session keeps unless configured otherwise.
const DefaultMaxHistory = 10

// ErrEmptyScreen is returned when pushing a record without a screen name.
var ErrEmptyScreen = errors.New("navigation: empty screen name")

// Record is one visited screen.
type Record[P any] struct {
	Screen string
	Params P
	Time   time.Time // informational only, ordering is positional
}

// History is a bounded, ordered record of visited screens with a cursor
// at the newest entry. Records live in a fixed-size ring: the oldest
// record is dropped from the front when a push would exceed the bound.
type History[P any] struct {
	ring  []Record[P]
	start int // index of the oldest record
	n     int // number of retained records; the current one is the last
	now   func() time.Time
}

// NewHistory creates an empty history retaining at most maxHistory records.
func NewHistory[P any](maxHistory int) *History[P] {
	if maxHistory < 1 {
		panic("navigation: maxHistory must be positive")
	}
	return &History[P]{
		ring: make([]Record[P], maxHistory),
		now:  time.Now,
	}
}

// Push appends a record after the current one and makes it current.
// Repeated screen names are kept; deduplication is the caller's job.
func (h *History[P]) Push(screen string, params P) error {
	if screen == "" {
		return ErrEmptyScreen
	}

	if h.n == len(h.ring) {
		h.evictOldest()
	}

	h.ring[h.slot(h.n)] = Record[P]{
		Screen: screen,
		Params: params,
		Time:   h.now(),
	}
	h.n++
	return nil
}

// Pop drops the current record and returns the one before it, which
// becomes current. Returns false and changes nothing if there is no
// previous record.
func (h *History[P]) Pop() (Record[P], bool) {
	if h.n < 2 {
		return Record[P]{}, false
	}

	// Zero the slot so params held by the dropped record can be collected.
	h.ring[h.slot(h.n-1)] = Record[P]{}
	h.n--

	return h.ring[h.slot(h.n-1)], true
}

// Current returns the record at the cursor.
func (h *History[P]) Current() (Record[P], bool) {
	if h.n == 0 {
		return Record[P]{}, false
	}
	return h.ring[h.slot(h.n-1)], true
}

// CanGoBack reports whether a current record exists and has a predecessor.
func (h *History[P]) CanGoBack() bool {
	return h.n > 1
}

// Len returns the number of retained records.
func (h *History[P]) Len() int {
	return h.n
}

// Max returns the retention bound.
func (h *History[P]) Max() int {
	return len(h.ring)
}

// Stack returns a copy of the retained records, oldest first.
func (h *History[P]) Stack() []Record[P] {
	stack := make([]Record[P], h.n)
	for i := range stack {
		stack[i] = h.ring[h.slot(i)]
	}
	return stack
}

// Breadcrumbs returns the screen names of the retained records, oldest first.
func (h *History[P]) Breadcrumbs() []string {
	names := make([]string, h.n)
	for i := range names {
		names[i] = h.ring[h.slot(i)].Screen
	}
	return names
}

// Clear drops every record.
func (h *History[P]) Clear() {
	for i := range h.ring {
		h.ring[i] = Record[P]{}
	}
	h.start = 0
	h.n = 0
}

// evictOldest drops the front record. Never called with fewer than two
// records retained unless the bound is one, in which case the push that
// follows replaces the current record.
func (h *History[P]) evictOldest() {
	h.ring[h.start] = Record[P]{}
	h.start = (h.start + 1) % len(h.ring)
	h.n--
}

// slot maps a logical position (0 = oldest) to a ring index.
func (h *History[P]) slot(i int) int {
	return (h.start + i) % len(h.ring)
}
