package service

import (
	"time"

	"github.com/studylink/studylink-backend/internal/common"
	"github.com/studylink/studylink-backend/internal/domain"
	"github.com/studylink/studylink-backend/internal/repository"
	"github.com/studylink/studylink-backend/pkg/auth"
	"github.com/studylink/studylink-backend/pkg/jwt"
)

// AuthService authentication business logic
type AuthService interface {
	Register(req *domain.RegisterRequest) (*domain.UserResponse, error)
	Login(email, password string) (*LoginResponse, error)
	RefreshToken(refreshToken string) (*TokenPair, error)
	GetMe(userID int64) (*domain.UserResponse, error)
}

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtManager  *jwt.Manager
}

// LoginResponse login response
type LoginResponse struct {
	User         *domain.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// TokenPair token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtManager:  jwtManager,
	}
}

// Register creates a new account with an empty profile
func (s *authService) Register(req *domain.RegisterRequest) (*domain.UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrUserAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	profile := &domain.UserProfile{
		UserID:    user.ID,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// Login authenticates a user and returns tokens
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.Password) {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken creates a new token pair from a valid refresh token
func (s *authService) RefreshToken(refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, err
	}

	newRefresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

// GetMe returns the authenticated user's account
func (s *authService) GetMe(userID int64) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	return user.ToResponse(), nil
}
