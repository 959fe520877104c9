package concierge

import "fmt"

type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError(id string) error {
	return &SessionError{
		Code:    "sessionNotFound",
		Message: fmt.Sprintf("chat session %q not found or expired", id),
	}
}

func NewSessionBusyError(id string) error {
	return &SessionError{
		Code:    "sessionBusy",
		Message: fmt.Sprintf("chat session %q already has a message in flight", id),
	}
}
