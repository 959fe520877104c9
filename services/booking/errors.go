package booking

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
		Message: fmt.Sprintf("booking session %q not found or expired", id),
	}
}

func NewRoomNotFoundError(id string) error {
	return &SessionError{
		Code:    "roomNotFound",
		Message: fmt.Sprintf("room %q is not in the catalog", id),
	}
}

func NewAlreadySubmittedError(id string) error {
	return &SessionError{
		Code:    "alreadySubmitted",
		Message: fmt.Sprintf("booking session %q was already submitted", id),
	}
}
