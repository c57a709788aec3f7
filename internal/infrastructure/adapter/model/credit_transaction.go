package model

import (
	"time"
)

// CreditTransaction represents one row of the credit ledger
type CreditTransaction struct {
	ID           string    `gorm:"primaryKey;size:36"`
	UserID       string    `gorm:"not null;index;size:36"`
	Delta        int64     `gorm:"not null"`
	BalanceAfter int64     `gorm:"not null"`
	Reason       string    `gorm:"not null;size:50"`
	Reference    string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"not null;index"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for CreditTransaction
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
