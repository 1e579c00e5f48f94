package models

import "time"

// Notification types.
const (
	NotificationTypeBooking = "booking"
	NotificationTypeContact = "contact"
	NotificationTypeOther   = "other"
)

// Notification is an admin-facing alert row.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	IsRead    bool      `bson:"is_read" json:"isRead"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
