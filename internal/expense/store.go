// Package expense owns the in-memory expense list and keeps it in sync with
// its persisted slot.
package expense

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/store"
)

// Store is the single source of truth for the expense list. It is not safe
// for concurrent use; callers serialize intents.
type Store struct {
	slot     store.Slot
	now      func() time.Time
	expenses []model.Expense
	lastID   int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for id generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store backed by slot. Call Initialize before use.
func New(slot store.Slot, opts ...Option) *Store {
	s := &Store{slot: slot, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadReport describes how Initialize populated the list.
type LoadReport struct {
	Loaded int
	Found  bool  // a payload existed in the slot
	Err    error // read or decode failure; the list was started empty
}

// Initialize loads the persisted list. A missing, unreadable or malformed
// payload leaves the list empty; the reason is returned in the report and
// never fails startup.
func (s *Store) Initialize(ctx context.Context) LoadReport {
	s.expenses = nil
	s.lastID = 0

	data, err := s.slot.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return LoadReport{}
	}
	if err != nil {
		return LoadReport{Err: err}
	}

	expenses, err := store.DecodeExpenses(data)
	if err != nil {
		return LoadReport{Found: true, Err: err}
	}

	s.expenses = expenses
	for _, e := range expenses {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	return LoadReport{Loaded: len(expenses), Found: true}
}

// Add validates and appends a new expense, then persists the full list.
// Validation failures return a *model.ValidationError and change nothing.
// If the write fails the record stays in memory and is returned together
// with an error wrapping store.ErrPersist.
func (s *Store) Add(ctx context.Context, category string, amount float64) (model.Expense, error) {
	e := model.Expense{
		Category: strings.TrimSpace(category),
		Amount:   amount,
	}
	if err := e.Validate(); err != nil {
		return model.Expense{}, err
	}
	if t := s.Total() + amount; math.IsInf(t, 0) || math.IsNaN(t) {
		return model.Expense{}, &model.ValidationError{Field: "amount", Reason: "total would overflow"}
	}

	e.ID = s.nextID()
	s.expenses = append(s.expenses, e)

	return e, s.persist(ctx)
}

// Remove deletes the expense with the given id. It reports false, and does
// not write, when no such expense exists.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	kept := s.expenses[:0:0]
	for _, e := range s.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.expenses) {
		return false, nil
	}
	s.expenses = kept
	return true, s.persist(ctx)
}

// Clear removes every expense and persists the empty list.
func (s *Store) Clear(ctx context.Context) error {
	s.expenses = nil
	return s.persist(ctx)
}

// List returns a copy of the expenses in insertion order.
func (s *Store) List() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Len returns the number of expenses.
func (s *Store) Len() int {
	return len(s.expenses)
}

// Total sums every amount. An empty list totals 0.
func (s *Store) Total() float64 {
	var total float64
	for _, e := range s.expenses {
		total += e.Amount
	}
	return total
}

// TotalsByCategory groups amounts by exact category string. Categories are
// emitted in the order they first appear in the list.
func (s *Store) TotalsByCategory() []model.CategoryTotal {
	idx := make(map[string]int)
	var totals []model.CategoryTotal
	for _, e := range s.expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(totals)
			idx[e.Category] = i
			totals = append(totals, model.CategoryTotal{Category: e.Category})
		}
		totals[i].Amount += e.Amount
	}
	return totals
}

// Location describes where the list is persisted.
func (s *Store) Location() string {
	return s.slot.Location()
}

// nextID issues creation-time ids that are strictly increasing, so two adds
// in the same millisecond still get distinct ids.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) persist(ctx context.Context) error {
	payload, err := store.EncodeExpenses(s.expenses)
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", store.ErrPersist, err)
	}
	if err := s.slot.Save(ctx, payload); err != nil {
		if errors.Is(err, store.ErrPersist) {
			return err
		}
		return fmt.Errorf("%w: %v", store.ErrPersist, err)
	}
	return nil
}
