package ledger

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryNotFound = errors.New("cost entry not found")
	ErrUnknownField  = errors.New("unknown cost entry field")
)

// Ledger is the working list of an open import form.
//
// The list is never empty: constructors and RemoveEntry keep at least one
// (possibly blank) entry. The snapshot, when present, is only read.
type Ledger struct {
	entries  []CostEntry
	original *Snapshot
	newID    func() string
}

type Option func(*Ledger)

// WithIDGenerator replaces the uuid generator, mainly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(l *Ledger) {
		l.newID = gen
	}
}

func newLedger(opts []Option) *Ledger {
	l := &Ledger{newID: uuid.NewString}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// New starts a ledger for a new import: one blank entry and no snapshot.
func New(opts ...Option) *Ledger {
	l := newLedger(opts)
	l.entries = []CostEntry{l.blank()}
	return l
}

// Merge builds the working list from the two backend maps and captures them
// as the diff baseline. Every key of the real map comes first, in sorted
// order, followed by the keys found only in the client map, also sorted.
func Merge(realCosts, clientCosts map[string]float64, opts ...Option) *Ledger {
	l := newLedger(opts)
	l.original = NewSnapshot(realCosts, clientCosts)

	seen := make(map[string]struct{}, len(realCosts)+len(clientCosts))
	keys := make([]string, 0, len(realCosts)+len(clientCosts))
	for _, k := range sortedKeys(realCosts) {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for _, k := range sortedKeys(clientCosts) {
		if _, ok := seen[k]; ok {
			continue
		}
		keys = append(keys, k)
	}

	for _, k := range keys {
		l.entries = append(l.entries, CostEntry{
			ID:           l.newID(),
			Name:         k,
			RealAmount:   realCosts[k],
			ClientAmount: clientCosts[k],
		})
	}
	if len(l.entries) == 0 {
		l.entries = []CostEntry{l.blank()}
	}
	return l
}

// Restore rebuilds a ledger from a persisted working list and snapshot.
func Restore(entries []CostEntry, original *Snapshot, opts ...Option) *Ledger {
	l := newLedger(opts)
	l.original = original
	l.entries = append([]CostEntry(nil), entries...)
	if len(l.entries) == 0 {
		l.entries = []CostEntry{l.blank()}
	}
	return l
}

func (l *Ledger) blank() CostEntry {
	return CostEntry{ID: l.newID()}
}

// Entries returns a copy of the working list.
func (l *Ledger) Entries() []CostEntry {
	return append([]CostEntry(nil), l.entries...)
}

// Original returns the load-time snapshot, nil in create mode.
func (l *Ledger) Original() *Snapshot {
	return l.original
}

func (l *Ledger) IsEdit() bool {
	return l.original != nil
}

func (l *Ledger) indexOf(entryID string) int {
	for i, e := range l.entries {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

func (l *Ledger) SetName(entryID, name string) error {
	i := l.indexOf(entryID)
	if i < 0 {
		return ErrEntryNotFound
	}
	l.entries[i].Name = name
	return nil
}

func (l *Ledger) SetRealAmount(entryID string, amount float64) error {
	i := l.indexOf(entryID)
	if i < 0 {
		return ErrEntryNotFound
	}
	l.entries[i].RealAmount = sanitizeAmount(amount)
	return nil
}

func (l *Ledger) SetClientAmount(entryID string, amount float64) error {
	i := l.indexOf(entryID)
	if i < 0 {
		return ErrEntryNotFound
	}
	l.entries[i].ClientAmount = sanitizeAmount(amount)
	return nil
}

// SetField replaces one field of one entry from its raw form value. Amounts
// that do not parse as a finite number become 0, like an emptied input.
func (l *Ledger) SetField(entryID string, field Field, value string) error {
	switch field {
	case FieldName:
		return l.SetName(entryID, value)
	case FieldRealAmount:
		return l.SetRealAmount(entryID, parseAmount(value))
	case FieldClientAmount:
		return l.SetClientAmount(entryID, parseAmount(value))
	}
	return ErrUnknownField
}

// AddEntry appends a blank entry and returns it.
func (l *Ledger) AddEntry() CostEntry {
	e := l.blank()
	l.entries = append(l.entries, e)
	return e
}

// RemoveEntry drops the entry; removing the last one leaves a fresh blank entry.
func (l *Ledger) RemoveEntry(entryID string) error {
	i := l.indexOf(entryID)
	if i < 0 {
		return ErrEntryNotFound
	}
	l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
	if len(l.entries) == 0 {
		l.entries = []CostEntry{l.blank()}
	}
	return nil
}

// Totals sums each column of the working list as displayed in the form.
type Totals struct {
	Real   decimal.Decimal
	Client decimal.Decimal
}

func (l *Ledger) Totals() Totals {
	t := Totals{Real: decimal.Zero, Client: decimal.Zero}
	for _, e := range l.entries {
		t.Real = t.Real.Add(decimal.NewFromFloat(e.RealAmount))
		t.Client = t.Client.Add(decimal.NewFromFloat(e.ClientAmount))
	}
	return t
}

func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return sanitizeAmount(v)
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Sum adds the amounts of a backend cost map.
func Sum(costs map[string]float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range costs {
		total = total.Add(decimal.NewFromFloat(sanitizeAmount(v)))
	}
	return total
}
