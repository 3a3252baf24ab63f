package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/spent/internal/model"
)

// EncodeExpenses serializes the list as an ordered JSON array.
func EncodeExpenses(expenses []model.Expense) ([]byte, error) {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return json.Marshal(expenses)
}

// DecodeExpenses parses a slot payload. Anything that is not an array of
// well-formed records is reported as ErrCorrupt, including records with
// missing fields, records that break the expense invariants and repeated ids.
// Extra fields are ignored.
func DecodeExpenses(data []byte) ([]model.Expense, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw []struct {
		ID       *int64   `json:"id"`
		Category *string  `json:"category"`
		Amount   *float64 `json:"amount"`
	}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrCorrupt)
	}
	if raw == nil {
		// literal null
		return nil, fmt.Errorf("%w: not an array", ErrCorrupt)
	}

	expenses := make([]model.Expense, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	for i, r := range raw {
		if r.ID == nil || r.Category == nil || r.Amount == nil {
			return nil, fmt.Errorf("%w: record %d missing fields", ErrCorrupt, i)
		}
		e := model.Expense{ID: *r.ID, Category: *r.Category, Amount: *r.Amount}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorrupt, i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrCorrupt, e.ID)
		}
		seen[e.ID] = struct{}{}
		expenses = append(expenses, e)
	}
	return expenses, nil
}
