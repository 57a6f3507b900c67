package domain

import "time"

// MatchStatus is the lifecycle state of a match
type MatchStatus string

const (
	MatchPending MatchStatus = "PENDING"
	MatchMatched MatchStatus = "MATCHED"
	// MatchRejected is reserved for a future unmatch flow; no operation sets it.
	MatchRejected MatchStatus = "REJECTED"
)

// Match records mutual interest between two users (matches table).
// The pair is stored canonically with UserLowID < UserHighID so at most one
// row exists per unordered pair.
type Match struct {
	ID         int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserLowID  int64       `gorm:"column:user_low_id;not null;uniqueIndex:uniq_match_pair,priority:1" json:"user_low_id"`
	UserHighID int64       `gorm:"column:user_high_id;not null;uniqueIndex:uniq_match_pair,priority:2" json:"user_high_id"`
	Status     MatchStatus `gorm:"column:status;size:10;not null" json:"status"`
	CreatedAt  time.Time   `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Match) TableName() string {
	return "matches"
}

// CanonicalPair orders two user ids as (low, high)
func CanonicalPair(a, b int64) (low, high int64) {
	if a < b {
		return a, b
	}
	return b, a
}

// OtherUser returns the match participant that is not the given user
func (m *Match) OtherUser(userID int64) int64 {
	if m.UserLowID == userID {
		return m.UserHighID
	}
	return m.UserLowID
}

// MatchResponse represents a match in API responses
type MatchResponse struct {
	ID         int64  `json:"id"`
	UserLowID  int64  `json:"user_low_id"`
	UserHighID int64  `json:"user_high_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ToResponse converts Match to MatchResponse
func (m *Match) ToResponse() *MatchResponse {
	return &MatchResponse{
		ID:         m.ID,
		UserLowID:  m.UserLowID,
		UserHighID: m.UserHighID,
		Status:     string(m.Status),
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  m.UpdatedAt.Format(time.RFC3339),
	}
}
