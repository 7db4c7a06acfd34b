// Package service holds the back office managers: accounts, catalog,
// purchases and their line items. Each manager validates its inputs, maps
// store failures to domain errors and owns the atomic units of work.
package service

import (
	"errors"
	"fmt"
	"time"

	"back_office/internal/cache"
	"back_office/internal/store"

	"gorm.io/gorm"
)

// Services bundles every manager built on one database handle
type Services struct {
	Accounts     *AccountService
	Catalog      *CatalogService
	Transactions *TransactionService
	Items        *TransactionItemService
}

// New wires all managers to db. c may be nil to disable caching.
func New(db *gorm.DB, c *cache.Cache) *Services {
	return &Services{
		Accounts:     NewAccountService(db, c),
		Catalog:      NewCatalogService(db, c),
		Transactions: NewTransactionService(db),
		Items:        NewTransactionItemService(db),
	}
}

// Clock returns the current time; tests replace it for deterministic timestamps
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// notFound maps store.ErrNotFound to the given domain error and wraps anything else
func notFound(err error, domainErr error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return domainErr
	}
	return fmt.Errorf("%s: %w", op, err)
}

// where builds a scope filtering on one qualified column
func where(column string, value any) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func withDefaultSort(p store.Page, sort string) store.Page {
	if p.Sort == "" {
		p.Sort = sort
	}
	return p
}
