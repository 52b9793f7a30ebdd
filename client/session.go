package client

import (
	"errors"
	"fmt"

	"kbs-store/utils"
)

// SessionState tracks where the client sits in the admin-gating flow.
// Transitions: Browsing -> PinPending (RequestAdmin), PinPending -> Admin
// (PinVerified), anything -> Browsing (Reset).
type SessionState int

const (
	StateBrowsing SessionState = iota
	StatePinPending
	StateAdmin
)

func (s SessionState) String() string {
	switch s {
	case StatePinPending:
		return "pin-pending"
	case StateAdmin:
		return "admin"
	default:
		return "browsing"
	}
}

var ErrBadTransition = errors.New("invalid session transition")

// Session is the explicit client-session state container. The admin flag
// lives here and nowhere else; UI code asks IsAdmin instead of consulting
// ambient globals.
type Session struct {
	state SessionState
	phone string
}

func NewSession() *Session {
	return &Session{state: StateBrowsing}
}

func (s *Session) State() SessionState { return s.state }

// Phone returns the canonical phone a PIN was requested for.
func (s *Session) Phone() string { return s.phone }

func (s *Session) IsAdmin() bool { return s.state == StateAdmin }

// RequestAdmin validates the phone and moves the session into the
// PIN-pending state. Requesting again while pending just restarts the flow
// (the server invalidates the old PIN on regenerate).
func (s *Session) RequestAdmin(rawPhone string) error {
	if s.state == StateAdmin {
		return fmt.Errorf("%w: already admin", ErrBadTransition)
	}

	phone, err := utils.NormalizePhone(rawPhone)
	if err != nil {
		return err
	}

	s.phone = phone
	s.state = StatePinPending
	return nil
}

// PinVerified flips the session to admin. Only valid while a PIN is pending.
func (s *Session) PinVerified() error {
	if s.state != StatePinPending {
		return fmt.Errorf("%w: no PIN verification in progress", ErrBadTransition)
	}
	s.state = StateAdmin
	return nil
}

// Reset drops admin rights and any pending verification.
func (s *Session) Reset() {
	s.state = StateBrowsing
	s.phone = ""
}
