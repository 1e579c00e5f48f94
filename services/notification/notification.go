package notification

import (
	"fmt"

	"freshlaundry/models"
	"freshlaundry/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotifyBookingCreated records a notification for a newly scheduled pickup.
func (s *DefaultNotificationService) NotifyBookingCreated(customerName, pickupDate, slotName string) error {
	title := "New Pickup Scheduled"
	if customerName == "" {
		customerName = "A customer"
	}
	msg := fmt.Sprintf("%s scheduled a pickup for %s (%s).", customerName, pickupDate, slotName)
	return s.create(title, msg, models.NotificationTypeBooking)
}

// NotifyContactReceived records a notification for a new contact message.
func (s *DefaultNotificationService) NotifyContactReceived(name, email string) error {
	title := "New Contact Message"
	msg := fmt.Sprintf("%s (%s) sent a message through the contact form.", name, email)
	return s.create(title, msg, models.NotificationTypeContact)
}

// NotifyPickupDue records a reminder notification on the pickup morning.
func (s *DefaultNotificationService) NotifyPickupDue(customerName, pickupDate, slotName string) error {
	title := "Pickup Due Today"
	if customerName == "" {
		customerName = "A customer"
	}
	msg := fmt.Sprintf("%s has a pickup due on %s (%s).", customerName, pickupDate, slotName)
	return s.create(title, msg, models.NotificationTypeOther)
}

func (s *DefaultNotificationService) create(title, message, notifType string) error {
	n := &models.Notification{
		ID:      uuid.New().String(),
		Title:   title,
		Message: message,
		Type:    notifType,
	}
	if err := s.Repo.Create(n); err != nil {
		utils.GetLogger().Error("failed to record notification",
			zap.String("type", notifType), zap.Error(err))
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}
