package service

import (
	"github.com/studylink/studylink-backend/internal/common"
	"github.com/studylink/studylink-backend/internal/domain"
	"github.com/studylink/studylink-backend/internal/repository"
)

// ProfileService user profile business logic
type ProfileService interface {
	GetProfile(userID int64) (*domain.UserProfile, error)
	UpdateProfile(userID int64, req *domain.UpdateProfileRequest) (*domain.UserProfile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetProfile returns the profile of the given user
func (s *profileService) GetProfile(userID int64) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, common.ErrNotFound
	}
	return profile, nil
}

// UpdateProfile applies a partial update to the caller's profile
func (s *profileService) UpdateProfile(userID int64, req *domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &domain.UserProfile{
			UserID: userID,
			Name:   user.Name,
		}
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.University != "" {
		profile.University = req.University
	}
	if req.Major != "" {
		profile.Major = req.Major
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
