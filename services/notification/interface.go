package notification

import (
	notificationRepo "freshlaundry/database/repository/notification"
)

// NotificationService fans business events out into admin-facing
// notification rows.
type NotificationService interface {
	NotifyBookingCreated(customerName, pickupDate, slotName string) error
	NotifyContactReceived(name, email string) error
	NotifyPickupDue(customerName, pickupDate, slotName string) error
}

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}
