package repository

import (
	"errors"

	"github.com/studylink/studylink-backend/internal/domain"
	"gorm.io/gorm"
)

// ChatRoomRepository chat room data access interface
type ChatRoomRepository interface {
	Create(room *domain.ChatRoom) error
	FindByID(id int64) (*domain.ChatRoom, error)
	FindByMatchID(matchID int64) (*domain.ChatRoom, error)
	FindByUser(userID int64) ([]*domain.ChatRoom, error)
}

type chatRoomRepository struct {
	db *gorm.DB
}

// NewChatRoomRepository creates a new ChatRoomRepository
func NewChatRoomRepository(db *gorm.DB) ChatRoomRepository {
	return &chatRoomRepository{db: db}
}

// Create inserts a new chat room. The unique index on match_id means a
// concurrent creator can win the race; callers should treat
// gorm.ErrDuplicatedKey as "re-fetch by match id".
func (r *chatRoomRepository) Create(room *domain.ChatRoom) error {
	return r.db.Create(room).Error
}

// FindByID finds a chat room by primary key
func (r *chatRoomRepository) FindByID(id int64) (*domain.ChatRoom, error) {
	var room domain.ChatRoom
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// FindByMatchID finds the room bound to a match
func (r *chatRoomRepository) FindByMatchID(matchID int64) (*domain.ChatRoom, error) {
	var room domain.ChatRoom
	err := r.db.Where("match_id = ?", matchID).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// FindByUser returns all rooms where the user is either participant
func (r *chatRoomRepository) FindByUser(userID int64) ([]*domain.ChatRoom, error) {
	var rooms []*domain.ChatRoom
	err := r.db.Where("user1_id = ? OR user2_id = ?", userID, userID).Find(&rooms).Error
	return rooms, err
}
