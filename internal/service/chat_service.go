package service

import (
	"errors"
	"time"

	"github.com/studylink/studylink-backend/internal/common"
	"github.com/studylink/studylink-backend/internal/domain"
	"github.com/studylink/studylink-backend/internal/repository"
	"gorm.io/gorm"
)

// ChatService chat room and message business logic
type ChatService interface {
	FindOrCreateChatRoom(user1ID, user2ID, matchID int64) (*domain.ChatRoom, error)
	GetUserChatRooms(userID int64) ([]*domain.ChatRoomResponse, error)
	SendMessage(chatRoomID, senderID int64, content string) (*domain.MessageResponse, error)
	GetMessages(chatRoomID, requesterID int64) ([]*domain.MessageResponse, error)
}

type chatService struct {
	chatRoomRepo repository.ChatRoomRepository
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
}

// NewChatService creates a new ChatService
func NewChatService(
	chatRoomRepo repository.ChatRoomRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) ChatService {
	return &chatService{
		chatRoomRepo: chatRoomRepo,
		messageRepo:  messageRepo,
		userRepo:     userRepo,
	}
}

// FindOrCreateChatRoom returns the room bound to the match, creating it if
// absent. The caller is responsible for the match being canonical and
// MATCHED. A concurrent creator winning the unique index race on match_id is
// not an error; the existing row is returned.
func (s *chatService) FindOrCreateChatRoom(user1ID, user2ID, matchID int64) (*domain.ChatRoom, error) {
	room, err := s.chatRoomRepo.FindByMatchID(matchID)
	if err != nil {
		return nil, err
	}
	if room != nil {
		return room, nil
	}

	for _, id := range []int64{user1ID, user2ID} {
		exists, err := s.userRepo.ExistsByID(id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, common.ErrUserNotFound
		}
	}

	room = &domain.ChatRoom{
		User1ID:   user1ID,
		User2ID:   user2ID,
		MatchID:   matchID,
		CreatedAt: time.Now(),
	}
	if err := s.chatRoomRepo.Create(room); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.chatRoomRepo.FindByMatchID(matchID)
		}
		return nil, err
	}
	return room, nil
}

// GetUserChatRooms returns all rooms where the user is a participant
func (s *chatService) GetUserChatRooms(userID int64) ([]*domain.ChatRoomResponse, error) {
	rooms, err := s.chatRoomRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.ChatRoomResponse, 0, len(rooms))
	for _, r := range rooms {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// SendMessage persists a message from a room participant
func (s *chatService) SendMessage(chatRoomID, senderID int64, content string) (*domain.MessageResponse, error) {
	room, err := s.chatRoomRepo.FindByID(chatRoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, common.ErrChatRoomNotFound
	}

	exists, err := s.userRepo.ExistsByID(senderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}

	if !isParticipant(room, senderID) {
		return nil, common.ErrNotParticipant
	}

	msg := &domain.Message{
		ChatRoomID: chatRoomID,
		SenderID:   senderID,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}
	return msg.ToResponse(), nil
}

// GetMessages returns the full room history, oldest first. The participant
// check applies to reads exactly as it does to writes.
func (s *chatService) GetMessages(chatRoomID, requesterID int64) ([]*domain.MessageResponse, error) {
	room, err := s.chatRoomRepo.FindByID(chatRoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, common.ErrChatRoomNotFound
	}

	if !isParticipant(room, requesterID) {
		return nil, common.ErrNotParticipant
	}

	messages, err := s.messageRepo.FindByChatRoom(chatRoomID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, m.ToResponse())
	}
	return responses, nil
}

// isParticipant reports whether the user is one of the room's two
// participants. A zero user id is never a participant.
func isParticipant(room *domain.ChatRoom, userID int64) bool {
	if userID == 0 {
		return false
	}
	return room.User1ID == userID || room.User2ID == userID
}
