package tui

import (
	"github.com/theirongolddev/spent/internal/controller"
	"github.com/theirongolddev/spent/internal/view"
)

// Screen receives renders and notices from the controller and holds them
// until the next View. App keeps it by pointer so every copy of the Bubble
// Tea model sees the same state.
type Screen struct {
	model   view.Model
	notice  *controller.Notice
	warning string
	sticky  string
	cleared bool
}

// NewScreen returns an empty screen.
func NewScreen() *Screen {
	return &Screen{}
}

// Render implements controller.Surface.
func (s *Screen) Render(m view.Model) {
	s.model = m
}

// Notify implements controller.Surface. Blocking notices wait for a key
// press; warnings stay in the status bar until the next intent, sticky ones
// for the rest of the session.
func (s *Screen) Notify(n controller.Notice) {
	switch {
	case n.Level == controller.NoticeBlocking:
		s.notice = &n
	case n.Sticky:
		s.sticky = n.Message
	default:
		s.warning = n.Message
	}
}

// ClearInput implements controller.Surface.
func (s *Screen) ClearInput() {
	s.cleared = true
}

func (s *Screen) takeCleared() bool {
	c := s.cleared
	s.cleared = false
	return c
}

func (s *Screen) dismiss() {
	s.notice = nil
}

// clearWarning drops the transient warning before a new intent.
func (s *Screen) clearWarning() {
	s.warning = ""
}

// statusWarning is the text for the status bar: the latest transient
// warning, else the sticky one.
func (s *Screen) statusWarning() string {
	if s.warning != "" {
		return s.warning
	}
	return s.sticky
}
