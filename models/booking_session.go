package models

import "time"

// Wizard steps.
const (
	WizardStepDate    = 1
	WizardStepSlot    = 2
	WizardStepConfirm = 3
)

// BookingWizardSession holds the state of an in-flight pickup booking
// wizard. It lives in Redis for the duration of the flow and is consumed
// on confirm.
type BookingWizardSession struct {
	SessionID    string     `json:"sessionId"`
	UserID       string     `json:"userId"`
	Step         int        `json:"step"`
	PickupDate   string     `json:"pickupDate,omitempty"` // "YYYY-MM-DD"
	TimeSlotID   string     `json:"timeSlotId,omitempty"`
	Address      string     `json:"address"`
	Instructions string     `json:"instructions,omitempty"`
	TimeSlots    []TimeSlot `json:"timeSlots"`
	CreatedAt    time.Time  `json:"createdAt"`
}
