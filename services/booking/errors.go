package booking

import "errors"

var (
	// ErrNoSubscription gates the wizard: without an active subscription
	// the flow never gets past the start call.
	ErrNoSubscription = errors.New("an active subscription is required to schedule pickups")

	// ErrSessionNotFound covers expired, consumed and foreign sessions alike.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	ErrMissingDate    = errors.New("please choose a pickup date")
	ErrPastDate       = errors.New("pickup date cannot be in the past")
	ErrMissingSlot    = errors.New("please select a time slot")
	ErrUnknownSlot    = errors.New("selected time slot is not available")
	ErrMissingAddress = errors.New("pickup address is required")
	ErrUnknownAction  = errors.New("unknown wizard action")
)
