package domain

import "time"

// UserProfile holds the public study profile of a user (user_profiles table)
type UserProfile struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Name       string    `gorm:"column:name;size:50;not null" json:"name"`
	Age        *int      `gorm:"column:age" json:"age,omitempty"`
	Gender     string    `gorm:"column:gender;size:20" json:"gender,omitempty"`
	University string    `gorm:"column:university;size:100" json:"university,omitempty"`
	Major      string    `gorm:"column:major;size:100" json:"major,omitempty"`
	Location   string    `gorm:"column:location;size:100" json:"location,omitempty"`
	Bio        string    `gorm:"column:bio;type:text" json:"bio,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	Name       string `json:"name" binding:"omitempty,max=50"`
	Age        *int   `json:"age" binding:"omitempty,gte=0,lte=150"`
	Gender     string `json:"gender" binding:"omitempty,max=20"`
	University string `json:"university" binding:"omitempty,max=100"`
	Major      string `json:"major" binding:"omitempty,max=100"`
	Location   string `json:"location" binding:"omitempty,max=100"`
	Bio        string `json:"bio" binding:"omitempty,max=2000"`
}
