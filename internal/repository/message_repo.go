package repository

import (
	"github.com/studylink/studylink-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access interface
type MessageRepository interface {
	Create(msg *domain.Message) error
	FindByChatRoom(chatRoomID int64) ([]*domain.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new message
func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

// FindByChatRoom returns the full history of a room, oldest first.
// The id tiebreak keeps ordering stable for messages in the same instant.
func (r *messageRepository) FindByChatRoom(chatRoomID int64) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.Where("chat_room_id = ?", chatRoomID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}
