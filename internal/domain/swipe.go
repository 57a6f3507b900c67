package domain

import "time"

// SwipeType is a user's decision toward another user
type SwipeType string

const (
	SwipeLike    SwipeType = "LIKE"
	SwipeDislike SwipeType = "DISLIKE"
)

// Valid reports whether the swipe type is a known value
func (t SwipeType) Valid() bool {
	return t == SwipeLike || t == SwipeDislike
}

// SwipeDecision records one user's decision toward another (user_swipes table).
// At most one row exists per (swiper_id, swiped_id); a repeated swipe
// overwrites the decision and timestamp in place.
type SwipeDecision struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SwiperID  int64     `gorm:"column:swiper_id;not null;uniqueIndex:uniq_swipe_pair,priority:1" json:"swiper_id"`
	SwipedID  int64     `gorm:"column:swiped_id;not null;uniqueIndex:uniq_swipe_pair,priority:2" json:"swiped_id"`
	SwipeType SwipeType `gorm:"column:swipe_type;size:10;not null" json:"swipe_type"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (SwipeDecision) TableName() string {
	return "user_swipes"
}

// SwipeRequest represents a swipe request
type SwipeRequest struct {
	SwipedUserID int64     `json:"swiped_user_id" binding:"required"`
	SwipeType    SwipeType `json:"swipe_type" binding:"required"`
}

// SwipeResponse reports whether the swipe produced a mutual match
type SwipeResponse struct {
	Match bool `json:"match"`
}
