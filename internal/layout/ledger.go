package layout

import (
	"errors"
)

// ErrLedgerExhausted is returned when more sheets are emitted than planned.
var ErrLedgerExhausted = errors.New("no unfilled contents rows left")

// ErrEmptyDefinition is returned for a contents definition without tables.
var ErrEmptyDefinition = errors.New("contents definition has no tables")

// Ledger hands out contents entry rows in ascending order, each exactly once.
type Ledger struct {
	slots []int
	next  int
}

func NewLedger(slots []int) *Ledger {
	s := make([]int, len(slots))
	copy(s, slots)
	return &Ledger{slots: s}
}

// Next consumes the next unfilled row.
func (l *Ledger) Next() (int, error) {
	if l.next >= len(l.slots) {
		return 0, ErrLedgerExhausted
	}
	row := l.slots[l.next]
	l.next++
	return row, nil
}

func (l *Ledger) Filled() int {
	return l.next
}

func (l *Ledger) Remaining() int {
	return len(l.slots) - l.next
}
