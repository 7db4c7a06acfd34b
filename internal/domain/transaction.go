package domain

import (
	"time" // Purchase timestamp

	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
)

// Transaction Model: one purchase made by a user
type Transaction struct {
	Base
	UserID      uint              `gorm:"index;not null"`               // Foreign key to the buyer
	User        User              `gorm:"constraint:OnUpdate:CASCADE;"` // Buyer
	TotalAmount decimal.Decimal   `gorm:"type:decimal(19,2);not null"`  // Sum of the line totals at creation
	Date        time.Time         `gorm:"not null"`                     // Time of purchase
	Items       []TransactionItem `gorm:"foreignKey:TransactionID"`     // Line items, created together with the header
}

// TransactionItem Model: one line of a purchase, immutable after creation
type TransactionItem struct {
	Base
	ProductID     uint            `gorm:"index;not null"`               // Foreign key to Product
	Product       Product         `gorm:"constraint:OnUpdate:CASCADE;"` // Purchased product
	Count         int64           `gorm:"not null"`                     // Purchased units
	Amount        decimal.Decimal `gorm:"type:decimal(19,2);not null"`  // Unit amount
	TotalAmount   decimal.Decimal `gorm:"type:decimal(19,2);not null"`  // Amount x Count
	TransactionID uint            `gorm:"index;not null"`               // Foreign key to the owning Transaction
	Transaction   *Transaction    `gorm:"constraint:OnUpdate:CASCADE;"` // Owning transaction
}

// LineItem is one requested basket entry of a purchase
type LineItem struct {
	ProductID uint
	Count     int64
	Amount    decimal.Decimal
}

// LineTotal returns amount x count. Whole-cent amounts give whole-cent totals.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Amount.Mul(decimal.NewFromInt(l.Count))
}

// BasketTotal sums the line totals of every item
func BasketTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}
