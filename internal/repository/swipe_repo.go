package repository

import (
	"errors"

	"github.com/studylink/studylink-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SwipeRepository swipe ledger data access interface
type SwipeRepository interface {
	Upsert(swipe *domain.SwipeDecision) error
	FindByPair(swiperID, swipedID int64) (*domain.SwipeDecision, error)
}

type swipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new SwipeRepository
func NewSwipeRepository(db *gorm.DB) SwipeRepository {
	return &swipeRepository{db: db}
}

// Upsert records a swipe decision. The unique index on (swiper_id, swiped_id)
// guarantees a single row per ordered pair; a repeated swipe overwrites the
// decision and timestamp in place.
func (r *swipeRepository) Upsert(swipe *domain.SwipeDecision) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"swipe_type", "created_at"}),
	}).Create(swipe).Error
}

// FindByPair retrieves the decision for an ordered (swiper, swiped) pair
func (r *swipeRepository) FindByPair(swiperID, swipedID int64) (*domain.SwipeDecision, error) {
	var swipe domain.SwipeDecision
	err := r.db.Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).First(&swipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &swipe, nil
}
