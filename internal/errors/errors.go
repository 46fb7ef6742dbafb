// internal/errors/errors.go
package appErrors

import "fmt"

// ErrSessionNotFound is a sentinel error
type ErrSessionNotFound struct {
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session %s not found", e.SessionID)
}

// Helper constructor
func NewSessionNotFound(id string) error {
	return &ErrSessionNotFound{SessionID: id}
}

// ErrActionInFlight signals that another workflow action is still running
// for the same campaign in the same session.
type ErrActionInFlight struct {
	CampaignID string
	Action     string
}

func (e *ErrActionInFlight) Error() string {
	return fmt.Sprintf("action %q already in progress for campaign %s", e.Action, e.CampaignID)
}

func NewActionInFlight(campaignID, action string) error {
	return &ErrActionInFlight{CampaignID: campaignID, Action: action}
}

// ErrActionNotAllowed signals a workflow action whose gate is closed, e.g.
// generate-emails with zero draft businesses.
type ErrActionNotAllowed struct {
	Action string
	Reason string
}

func (e *ErrActionNotAllowed) Error() string {
	return fmt.Sprintf("action %q not allowed: %s", e.Action, e.Reason)
}

func NewActionNotAllowed(action, reason string) error {
	return &ErrActionNotAllowed{Action: action, Reason: reason}
}
