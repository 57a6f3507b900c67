package domain

import "time"

// ChatRoom is the messaging channel bound 1:1 to a match (chat_rooms table)
type ChatRoom struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	User1ID   int64     `gorm:"column:user1_id;not null;index" json:"user1_id"`
	User2ID   int64     `gorm:"column:user2_id;not null;index" json:"user2_id"`
	MatchID   int64     `gorm:"column:match_id;not null;uniqueIndex" json:"match_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// Message is a single chat message (messages table)
type Message struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ChatRoomID int64     `gorm:"column:chat_room_id;not null;index" json:"chat_room_id"`
	SenderID   int64     `gorm:"column:sender_id;not null" json:"sender_id"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest represents a send message request
type SendMessageRequest struct {
	ChatRoomID int64  `json:"chat_room_id" binding:"required"`
	Content    string `json:"content" binding:"required,max=4000"`
}

// ChatRoomResponse represents a chat room in API responses
type ChatRoomResponse struct {
	ID        int64  `json:"id"`
	User1ID   int64  `json:"user1_id"`
	User2ID   int64  `json:"user2_id"`
	MatchID   int64  `json:"match_id"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts ChatRoom to ChatRoomResponse
func (r *ChatRoom) ToResponse() *ChatRoomResponse {
	return &ChatRoomResponse{
		ID:        r.ID,
		User1ID:   r.User1ID,
		User2ID:   r.User2ID,
		MatchID:   r.MatchID,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID         int64  `json:"id"`
	ChatRoomID int64  `json:"chat_room_id"`
	SenderID   int64  `json:"sender_id"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		ChatRoomID: m.ChatRoomID,
		SenderID:   m.SenderID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
