package repository

import (
	"errors"

	"github.com/studylink/studylink-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user data access interface
type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id int64) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	ExistsByID(id int64) (bool, error)
	ExistsByEmail(email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user
func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by primary key
func (r *userRepository) FindByID(id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByID checks if a user with the id exists
func (r *userRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if a user with the email exists
func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
