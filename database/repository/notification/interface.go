package notificationRepo

import "freshlaundry/models"

// NotificationRepository defines persistence operations for admin
// notifications.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListRecent(limit int64) ([]models.Notification, error)
	MarkRead(id string) error
}
