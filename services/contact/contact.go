package contact

import (
	"errors"
	"strings"

	contactRepo "freshlaundry/database/repository/contact"
	"freshlaundry/models"
	"freshlaundry/services/notification"
	"freshlaundry/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingFields is the single validation error the public contact form
// surfaces.
var ErrMissingFields = errors.New("name, email and message are required")

// SubmitRequest is the public contact form payload.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// Service accepts contact form submissions.
type Service interface {
	Submit(req SubmitRequest) (*models.ContactSubmission, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Repo     contactRepo.ContactRepository
	Notifier notification.NotificationService
}

// Submit validates, normalizes and stores a submission, then records an
// admin notification. An empty phone is stored as null, not "".
func (s *DefaultService) Submit(req SubmitRequest) (*models.ContactSubmission, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}
	if !strings.Contains(email, "@") {
		return nil, errors.New("please provide a valid email address")
	}

	sub := &models.ContactSubmission{
		ID:      uuid.New().String(),
		Name:    name,
		Email:   email,
		Message: message,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		sub.Phone = &phone
	}

	if err := s.Repo.Create(sub); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyContactReceived(sub.Name, sub.Email); err != nil {
			utils.GetLogger().Warn("contact: failed to notify submission",
				zap.String("id", sub.ID), zap.Error(err))
		}
	}

	return sub, nil
}
