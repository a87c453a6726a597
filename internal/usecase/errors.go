package usecase

import (
	"errors"
)

var (
	// ErrUnknownOrderAlert is returned when a dismissal names an order
	// with no pending notification record.
	ErrUnknownOrderAlert = errors.New("no pending notification for order")

	// ErrUnknownNotification is returned when a mark-read names an entry
	// absent from the session's notification log.
	ErrUnknownNotification = errors.New("notification not found in session log")
)
