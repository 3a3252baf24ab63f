// Package controller turns user intents into Store mutations and re-renders
// the active surface after each one.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/view"
)

// InvalidInputMessage is the blocking notice shown for rejected submissions.
const InvalidInputMessage = "Please enter a valid category and amount."

// PersistWarning is shown when a change could not be written.
const PersistWarning = "Could not save changes; they will be lost when spent exits."

// NoticeLevel distinguishes blocking notices from passive warnings.
type NoticeLevel int

const (
	// NoticeBlocking must be acknowledged before further input.
	NoticeBlocking NoticeLevel = iota
	// NoticeWarning is shown without interrupting input.
	NoticeWarning
)

// Notice is a user-facing message.
type Notice struct {
	Level   NoticeLevel
	Message string
	Err     error
	// Sticky warnings describe a session-wide condition and stay visible
	// after later intents.
	Sticky bool
}

// Surface displays view models and notices.
type Surface interface {
	Render(m view.Model)
	Notify(n Notice)
	// ClearInput empties the entry form and returns focus to its first field.
	ClearInput()
}

// Controller wires intents to the Store. It holds no expense state itself.
type Controller struct {
	store    *expense.Store
	surface  Surface
	currency string
	log      logrus.FieldLogger
}

// Option configures a Controller.
type Option func(*Controller)

// WithCurrency sets the amount prefix used in rendered views.
func WithCurrency(currency string) Option {
	return func(c *Controller) { c.currency = currency }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// New returns a Controller for s rendering to surface.
func New(s *expense.Store, surface Surface, opts ...Option) *Controller {
	c := &Controller{
		store:    s,
		surface:  surface,
		currency: view.DefaultCurrency,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads the persisted list and renders once.
func (c *Controller) Start(ctx context.Context) expense.LoadReport {
	report := c.store.Initialize(ctx)
	entry := c.log.WithField("location", c.store.Location())
	switch {
	case report.Err != nil:
		entry.WithError(report.Err).Warn("stored expenses unreadable, starting empty")
	case report.Found:
		entry.WithField("count", report.Loaded).Info("loaded expenses")
	default:
		entry.Info("no stored expenses, starting empty")
	}
	c.Refresh()
	return report
}

// Submit validates the raw form input and adds an expense. Invalid input
// raises a blocking notice and leaves both the list and the form untouched.
func (c *Controller) Submit(ctx context.Context, categoryText, amountText string) error {
	category := strings.TrimSpace(categoryText)
	amount, parseErr := ParseAmount(amountText)

	var err error
	switch {
	case category == "":
		err = &model.ValidationError{Field: "category", Reason: "must not be empty"}
	case parseErr != nil:
		err = parseErr
	default:
		err = model.ValidateAmount(amount)
	}
	if err != nil {
		c.log.WithError(err).Debug("rejected expense")
		c.surface.Notify(Notice{Level: NoticeBlocking, Message: InvalidInputMessage, Err: err})
		return err
	}

	e, err := c.store.Add(ctx, category, amount)
	if errors.Is(err, model.ErrInvalidExpense) {
		c.surface.Notify(Notice{Level: NoticeBlocking, Message: InvalidInputMessage, Err: err})
		return err
	}
	if err != nil {
		c.warnPersist(err)
	}

	c.log.WithFields(logrus.Fields{"id": e.ID, "category": e.Category, "amount": e.Amount}).Debug("added expense")
	c.surface.ClearInput()
	c.Refresh()
	return err
}

// Delete removes the expense with id and re-renders whether or not it existed.
func (c *Controller) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := c.store.Remove(ctx, id)
	if err != nil {
		c.warnPersist(err)
	}
	c.log.WithFields(logrus.Fields{"id": id, "removed": removed}).Debug("delete expense")
	c.Refresh()
	return removed, err
}

// Clear removes every expense.
func (c *Controller) Clear(ctx context.Context) error {
	err := c.store.Clear(ctx)
	if err != nil {
		c.warnPersist(err)
	}
	c.log.Info("cleared expenses")
	c.Refresh()
	return err
}

// SetCurrency changes the amount prefix for subsequent renders.
func (c *Controller) SetCurrency(currency string) {
	if currency == "" {
		currency = view.DefaultCurrency
	}
	c.currency = currency
}

// Refresh re-renders the surface from the current Store state.
func (c *Controller) Refresh() {
	c.surface.Render(c.View())
}

// View builds the current view model.
func (c *Controller) View() view.Model {
	return view.Build(c.store, c.currency)
}

func (c *Controller) warnPersist(err error) {
	c.log.WithError(err).Error("persisting expenses failed")
	c.surface.Notify(Notice{Level: NoticeWarning, Message: PersistWarning, Err: err})
}

// ParseAmount parses a decimal amount typed by the user. A decimal comma is
// accepted in place of the dot.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &model.ValidationError{Field: "amount", Reason: "missing"}
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &model.ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", s)}
	}
	return v, nil
}
