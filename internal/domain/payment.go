package domain

import (
	"time" // Top-up timestamp

	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
)

// UserPaymentTransaction records one balance top-up; rows are append-only
type UserPaymentTransaction struct {
	Base
	UserID uint            `gorm:"index;not null"`               // Foreign key to User
	User   User            `gorm:"constraint:OnUpdate:CASCADE;"` // Owning user
	Amount decimal.Decimal `gorm:"type:decimal(19,2);not null"`  // Top-up amount
	Date   time.Time       `gorm:"not null"`                     // Time of the top-up
}
