package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	Name             string        `gorm:"size:255;not null" json:"name"`
	Email            string        `gorm:"size:255;not null;unique" json:"email"`
	Password         string        `gorm:"size:255;not null" json:"-"`
	Bio              string        `gorm:"size:500" json:"bio,omitempty"`
	Location         string        `gorm:"size:100" json:"location,omitempty"`
	ProfileImage     string        `gorm:"size:512" json:"profile_image,omitempty"`
	Interests        []string      `gorm:"serializer:json" json:"interests,omitempty"`
	IsVerified       bool          `gorm:"default:false" json:"is_verified"`
	VerificationCode string        `gorm:"size:6" json:"-"`
	ResetCode        string        `gorm:"size:6" json:"-"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	Trips            []Trip        `json:"-"`
	JoinRequests     []JoinRequest `json:"-"`
}

// BeforeSave hashes the password before saving to the database
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password != "" && !isBcryptHash(u.Password) {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// isBcryptHash reports whether s already looks like a bcrypt hash, so that
// updating an unrelated profile field does not re-hash the stored hash.
func isBcryptHash(s string) bool {
	return len(s) == 60 && (s[:4] == "$2a$" || s[:4] == "$2b$" || s[:4] == "$2y$")
}

// ValidatePassword checks if the provided password matches the stored hash
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
