package migration

import (
	"github.com/studylink/studylink-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all tables. The unique indexes it creates on
// user_swipes (swiper_id, swiped_id), matches (user_low_id, user_high_id) and
// chat_rooms (match_id) are the backstop for every upsert in the repository
// layer; the application is not correct without them.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserProfile{},
		&domain.SwipeDecision{},
		&domain.Match{},
		&domain.ChatRoom{},
		&domain.Message{},
	)
}
