package model

import (
	"math"
	"strings"
)

// Validate checks the record invariants: non-empty trimmed category and a
// positive finite amount. The category is checked as stored, so callers that
// accept user input should trim first.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Category) == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return ValidateAmount(e.Amount)
}

// ValidateAmount rejects NaN, infinities, zero and negative amounts.
func ValidateAmount(amount float64) error {
	switch {
	case math.IsNaN(amount):
		return &ValidationError{Field: "amount", Reason: "not a number"}
	case math.IsInf(amount, 0):
		return &ValidationError{Field: "amount", Reason: "not finite"}
	case amount <= 0:
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}
