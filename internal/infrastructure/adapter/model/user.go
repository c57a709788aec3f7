package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID            string    `gorm:"primaryKey;size:36"`
	IdentityID    string    `gorm:"uniqueIndex;not null;size:255"`
	Email         string    `gorm:"uniqueIndex;not null;size:320"`
	Username      *string   `gorm:"uniqueIndex;size:255"`
	FirstName     string    `gorm:"size:255"`
	LastName      string    `gorm:"size:255"`
	Photo         string    `gorm:"type:text"`
	CreditBalance int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
