package repository

import (
	"errors"

	"github.com/studylink/studylink-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository match data access interface
type MatchRepository interface {
	CreateOrPromote(match *domain.Match) error
	FindByPair(userLowID, userHighID int64) (*domain.Match, error)
	FindByID(id int64) (*domain.Match, error)
	FindMatchedByUser(userID int64) ([]*domain.Match, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// CreateOrPromote inserts a match for the canonical pair, or promotes the
// existing row to the given status. The unique index on
// (user_low_id, user_high_id) keeps the row singular under concurrent
// mutual likes; the losing insert becomes an update of status and updated_at.
func (r *matchRepository) CreateOrPromote(match *domain.Match) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_low_id"}, {Name: "user_high_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(match).Error
}

// FindByPair retrieves the match for a canonical (low, high) pair
func (r *matchRepository) FindByPair(userLowID, userHighID int64) (*domain.Match, error) {
	var match domain.Match
	err := r.db.Where("user_low_id = ? AND user_high_id = ?", userLowID, userHighID).First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

// FindByID finds a match by primary key
func (r *matchRepository) FindByID(id int64) (*domain.Match, error) {
	var match domain.Match
	err := r.db.First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

// FindMatchedByUser returns all MATCHED rows where the user is either side of
// the pair. Order is not part of the contract.
func (r *matchRepository) FindMatchedByUser(userID int64) ([]*domain.Match, error) {
	var matches []*domain.Match
	err := r.db.Where("(user_low_id = ? OR user_high_id = ?) AND status = ?",
		userID, userID, domain.MatchMatched).Find(&matches).Error
	return matches, err
}
