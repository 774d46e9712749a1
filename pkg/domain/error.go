package domain

import "errors"

// Error is a failure meant to be shown to the person at the keyboard.
// Topic names the operation (it becomes the dialog or banner title), Message is the
// exact text to show, and Kind is the sentinel callers match with errors.Is.
type Error struct {
	Topic   string
	Message string
	Kind    error
}

// NewError builds a user-facing error.
func NewError(topic string, kind error, message string) *Error {
	return &Error{Topic: topic, Message: message, Kind: kind}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// AsError extracts a user-facing error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
