package models

import (
	"time"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

type JoinRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_trip" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TripID    uint      `gorm:"uniqueIndex:idx_user_trip" json:"trip_id"`
	Trip      Trip      `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	Status    string    `gorm:"size:20;default:'pending'" json:"status"` // pending, accepted, rejected
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
