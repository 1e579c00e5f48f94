package contactRepo

import "freshlaundry/models"

// ContactRepository defines persistence operations for contact form
// submissions.
type ContactRepository interface {
	Create(c *models.ContactSubmission) error
	ListRecent(limit int64) ([]models.ContactSubmission, error)
	MarkRead(id string) error
	CountUnread() (int64, error)
}
