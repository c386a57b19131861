// services/errors.go
package services

import "errors"

var (
	// ErrConflictingAvailability means more than one availability rule
	// is effective for the same weekday and date. This is a data
	// integrity problem, surfaced as a configuration error.
	ErrConflictingAvailability = errors.New("conflicting availability rules for employee")

	// ErrOutsideAvailability means the requested window is not fully
	// contained in any bookable window. The caller picks another window.
	ErrOutsideAvailability = errors.New("requested window is outside employee availability")

	// ErrSlotTaken means the requested window overlaps an existing
	// booked appointment. The caller picks another window.
	ErrSlotTaken = errors.New("slot already taken")

	// ErrInvalidTransition means a state change was attempted from a
	// state that does not permit it. Terminal states are final.
	ErrInvalidTransition = errors.New("invalid appointment state transition")

	// ErrInvalidWindow means start/end do not form a valid half-open
	// interval.
	ErrInvalidWindow = errors.New("start must be before end")

	// ErrNotBookable means the order item is not of kind 'service'.
	ErrNotBookable = errors.New("order item is not bookable")
)
