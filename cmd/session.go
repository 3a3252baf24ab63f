package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/controller"
	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/store"

	"github.com/sirupsen/logrus"
)

// storageUnavailable is shown when the configured slot cannot be opened and
// the session falls back to memory.
const storageUnavailable = "Storage unavailable; changes will not be saved."

// session is the wiring shared by every command: config, log file, storage
// slot, Store and Controller.
type session struct {
	cfg       config.Config
	log       *logrus.Logger
	logCloser io.Closer
	slot      store.Slot
	store     *expense.Store
	ctrl      *controller.Controller
}

// openSession wires everything up for surface and performs the startup load.
// A storage slot that cannot be opened degrades to an in-memory one.
func openSession(ctx context.Context, surface controller.Surface) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, logCloser, err := logging.New(cfg.Log.Level, cfg.ResolvedLogFile(), nil)
	if err != nil {
		log, logCloser, _ = logging.New(cfg.Log.Level, "", io.Discard)
	}

	slot, err := store.Open(cfg.Storage.Backend, cfg.ResolvedDataDir(), cfg.Storage.Slot)
	if err != nil {
		log.WithError(err).WithField("backend", cfg.Storage.Backend).Error("opening storage failed, using memory")
		surface.Notify(controller.Notice{Level: controller.NoticeWarning, Message: storageUnavailable, Err: err, Sticky: true})
		slot = store.NewMemorySlot(cfg.Storage.Slot)
	}

	s := &session{
		cfg:       cfg,
		log:       log,
		logCloser: logCloser,
		slot:      slot,
		store:     expense.New(slot),
	}
	s.ctrl = controller.New(s.store, surface,
		controller.WithCurrency(cfg.Display.Currency),
		controller.WithLogger(log.WithField("component", "controller")),
	)
	s.ctrl.Start(ctx)
	return s, nil
}

// Close releases the storage slot and the log file.
func (s *session) Close() {
	if err := s.slot.Close(); err != nil {
		s.log.WithError(err).Warn("closing storage")
	}
	_ = s.logCloser.Close()
}
