package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrSessionFailed is returned when an operation needs a live session but
// the session already moved to the fallback screen.
var ErrSessionFailed = errors.New("session failed")

// LoadState is the navigation state of the browsing session.
type LoadState int

const (
	LoadStateIdle LoadState = iota
	LoadStateLoading
	LoadStateLoaded
	// LoadStateFailed is terminal: the fallback screen replaced the page.
	LoadStateFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadStateIdle:
		return "idle"
	case LoadStateLoading:
		return "loading"
	case LoadStateLoaded:
		return "loaded"
	case LoadStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailureReason records why a session ended on the fallback screen.
type FailureReason string

const (
	FailureNone          FailureReason = ""
	FailureNoNetwork     FailureReason = "no_network"
	FailureMainFrameLoad FailureReason = "main_frame_error"
	FailureHTTPStatus    FailureReason = "http_error"
)

// SessionID identifies one launch of the shell.
type SessionID string

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Session is the single piece of mutable state behind the browser window.
// It is not safe for concurrent use; callers serialize access.
type Session struct {
	ID        SessionID
	Target    string
	StartedAt time.Time

	state            LoadState
	progress         int
	indicatorVisible bool
	failure          FailureReason
	currentURL       string
	chooser          *PendingFileChooser
}

// NewSession creates an idle session for target.
func NewSession(target string, now time.Time) *Session {
	return &Session{
		ID:        NewSessionID(),
		Target:    target,
		StartedAt: now,
	}
}

func (s *Session) State() LoadState { return s.state }
func (s *Session) Progress() int { return s.progress }
func (s *Session) IndicatorVisible() bool { return s.indicatorVisible }
func (s *Session) Failure() FailureReason { return s.failure }
func (s *Session) CurrentURL() string { return s.currentURL }
func (s *Session) IsFailed() bool { return s.state == LoadStateFailed }
func (s *Session) HasPendingFileChooser() bool { return s.chooser != nil }

// StartNavigation moves the session to Loading, resets progress and marks
// the indicator visible.
func (s *Session) StartNavigation(uri string) error {
	if s.IsFailed() {
		return ErrSessionFailed
	}
	s.state = LoadStateLoading
	s.progress = 0
	s.indicatorVisible = true
	s.currentURL = uri
	return nil
}

// UpdateProgress clamps percent to 0..100 and stores it. It reports whether
// the indicator should now be hidden because loading reached 100.
func (s *Session) UpdateProgress(percent int) (hide bool) {
	if s.IsFailed() {
		return false
	}
	s.progress = min(max(percent, 0), 100)
	if s.progress == 100 && s.indicatorVisible {
		s.indicatorVisible = false
		return true
	}
	return false
}

// HideIndicator marks the indicator hidden without touching the load state.
// It reports whether it was visible.
func (s *Session) HideIndicator() bool {
	was := s.indicatorVisible
	s.indicatorVisible = false
	return was
}

// FinishNavigation moves Loading to Loaded. Other states are left alone.
func (s *Session) FinishNavigation() bool {
	if s.state != LoadStateLoading {
		return false
	}
	s.state = LoadStateLoaded
	return true
}

// Fail moves the session to the terminal Failed state. Only the first call
// has an effect; it returns false when the session had already failed.
func (s *Session) Fail(reason FailureReason) bool {
	if s.IsFailed() {
		return false
	}
	s.state = LoadStateFailed
	s.failure = reason
	s.indicatorVisible = false
	return true
}

// ReplaceFileChooser stores next as the pending chooser and returns the one
// it displaced, which the caller must cancel.
func (s *Session) ReplaceFileChooser(next *PendingFileChooser) (previous *PendingFileChooser) {
	previous = s.chooser
	s.chooser = next
	return previous
}

// TakeFileChooser removes the pending chooser if its id matches.
func (s *Session) TakeFileChooser(id string) *PendingFileChooser {
	if s.chooser == nil || s.chooser.ID != id {
		return nil
	}
	c := s.chooser
	s.chooser = nil
	return c
}

// PendingFileChooser wraps the page's file chooser callback so it is
// resolved at most once.
type PendingFileChooser struct {
	ID       string
	resolve  func(uris []string)
	resolved bool
}

// NewPendingFileChooser wraps resolve with a fresh id.
func NewPendingFileChooser(resolve func(uris []string)) *PendingFileChooser {
	return &PendingFileChooser{ID: uuid.NewString(), resolve: resolve}
}

// Resolve hands uris to the page. Subsequent calls are ignored and return
// false.
func (p *PendingFileChooser) Resolve(uris []string) bool {
	if p == nil || p.resolved {
		return false
	}
	p.resolved = true
	if p.resolve != nil {
		p.resolve(uris)
	}
	return true
}

// Cancel resolves with an empty selection.
func (p *PendingFileChooser) Cancel() bool {
	return p.Resolve(nil)
}

// Resolved reports whether the callback already ran.
func (p *PendingFileChooser) Resolved() bool {
	return p != nil && p.resolved
}
