package models

// ReminderPayload is the asynq task payload for a pickup reminder.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	CustomerName string `json:"customerName"`
	PickupDate   string `json:"pickupDate"` // "YYYY-MM-DD"
	SlotName     string `json:"slotName"`
}
