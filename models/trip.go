package models

import (
	"time"
)

type Trip struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Destination  string        `gorm:"size:255;not null" json:"destination"`
	StartDate    string        `gorm:"size:10;not null" json:"startDate"` // plain YYYY-MM-DD
	EndDate      string        `gorm:"size:10;not null" json:"endDate"`
	Budget       int           `gorm:"not null" json:"budget"`
	Description  string        `gorm:"type:text;not null" json:"description"`
	UserID       uint          `json:"user_id"`
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	JoinRequests []JoinRequest `json:"join_requests,omitempty"`
}
