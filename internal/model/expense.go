// Package model defines the domain types for spent.
package model

import (
	"errors"
	"fmt"
)

// Expense is one recorded expense entry.
type Expense struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategoryTotal holds the summed amount for one distinct category.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// ErrInvalidExpense is the sentinel matched by every ValidationError.
var ErrInvalidExpense = errors.New("invalid expense")

// ValidationError reports why an expense was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidExpense) match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidExpense
}
