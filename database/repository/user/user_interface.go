package userRepo

import "freshlaundry/models"

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(hash string) (*models.User, error)
	SetTokenHash(id, hash string) error
	Count() (int64, error)
}
