package user

import (
	"fmt"
	"strings"

	"freshlaundry/models"

	"golang.org/x/crypto/bcrypt"
)

// GetProfile returns the user's account record.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// UpdateProfile applies the mutable profile fields and returns the
// updated record.
func (s *DefaultUserService) UpdateProfile(userID string, upd models.ProfileUpdate) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(upd.FullName); name != "" {
		userRec.FullName = name
	}
	userRec.Phone = strings.TrimSpace(upd.Phone)
	userRec.Address = strings.TrimSpace(upd.Address)

	if err := s.Repo.Update(userRec); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return userRec, nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
