package models

import "time"

// Booking statuses. Transitions are admin-driven and unconstrained
// within this set.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusPickedUp   = "picked_up"
	BookingStatusProcessing = "processing"
	BookingStatusReady      = "ready"
	BookingStatusDelivered  = "delivered"
	BookingStatusCancelled  = "cancelled"
)

// BookingStatuses lists every valid booking status.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusPickedUp,
	BookingStatusProcessing,
	BookingStatusReady,
	BookingStatusDelivered,
	BookingStatusCancelled,
}

// IsValidBookingStatus reports whether s is a known booking status.
func IsValidBookingStatus(s string) bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Booking represents a scheduled laundry pickup.
type Booking struct {
	ID                  string    `bson:"id" json:"id"`
	UserID              string    `bson:"user_id" json:"userId"`
	PickupDate          string    `bson:"pickup_date" json:"pickupDate"` // "YYYY-MM-DD"
	TimeSlotID          string    `bson:"pickup_time_slot_id" json:"pickupTimeSlotId"`
	Address             string    `bson:"address" json:"address"`
	SpecialInstructions *string   `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	Status              string    `bson:"status" json:"status"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
}

// BookingWithSlot is a booking joined with its time slot's display name.
type BookingWithSlot struct {
	Booking  `bson:",inline"`
	SlotName string `bson:"slot_name" json:"slotName"`
}

// AdminBooking is a booking joined with the customer's name and slot name
// for the admin list view.
type AdminBooking struct {
	Booking      `bson:",inline"`
	CustomerName string `bson:"customer_name" json:"customerName"`
	SlotName     string `bson:"slot_name" json:"slotName"`
}
