package models

import "time"

// ContactSubmission is a message sent through the public contact form.
// Phone is a pointer so an omitted phone is stored as null, not "".
type ContactSubmission struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     *string   `bson:"phone" json:"phone"`
	Message   string    `bson:"message" json:"message"`
	IsRead    bool      `bson:"is_read" json:"isRead"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
