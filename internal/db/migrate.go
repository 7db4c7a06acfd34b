package db

import (
	"back_office/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Models lists every table owned by the back office, parents first
func Models() []any {
	return []any{
		&domain.User{},                   // Users and balances
		&domain.Category{},               // Product categories
		&domain.Product{},                // Products and stock
		&domain.Transaction{},            // Purchase headers
		&domain.TransactionItem{},        // Purchase line items
		&domain.UserPaymentTransaction{}, // Balance top-up history
	}
}

// Migrate performs automatic migration for the database schema
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
