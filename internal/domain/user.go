package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic for money

// User Model
type User struct {
	Base
	FullName string          `gorm:"not null"`                    // Display name
	Username string          `gorm:"index;not null"`              // Unique among active users, checked by the account service
	Balance  decimal.Decimal `gorm:"type:decimal(19,2);not null"` // Account balance, never negative
}

// UserPatch lists the user fields an update may overwrite; nil leaves the field unchanged
type UserPatch struct {
	FullName *string
	Username *string
	Balance  *decimal.Decimal
}

// Columns maps every supplied field to its column; absent fields are left out
// so an update never overwrites them
func (p UserPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.FullName != nil {
		cols["full_name"] = *p.FullName
	}
	if p.Username != nil {
		cols["username"] = *p.Username
	}
	if p.Balance != nil {
		cols["balance"] = *p.Balance
	}
	return cols
}
