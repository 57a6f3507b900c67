package repository

import (
	"errors"
	"time"

	"github.com/studylink/studylink-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository user profile data access interface
type ProfileRepository interface {
	Upsert(profile *domain.UserProfile) error
	FindByUserID(userID int64) (*domain.UserProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert creates or updates a profile keyed by user_id
func (r *profileRepository) Upsert(profile *domain.UserProfile) error {
	profile.UpdatedAt = time.Now()

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "age", "gender", "university", "major", "location", "bio", "updated_at",
		}),
	}).Create(profile).Error
}

// FindByUserID finds a profile by owner user id
func (r *profileRepository) FindByUserID(userID int64) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
