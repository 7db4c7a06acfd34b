package service

import (
	"context"
	"fmt"

	"back_office/internal/domain"
	"back_office/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TransactionService records purchases and answers the read-side queries over them
type TransactionService struct {
	db           *gorm.DB
	users        *store.Repository[domain.User]
	products     *store.Repository[domain.Product]
	transactions *store.Repository[domain.Transaction]
	items        *store.Repository[domain.TransactionItem]
	now          Clock // Stamps transaction dates
}

// NewTransactionService builds the purchase manager
func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{
		db:           db,
		users:        store.New[domain.User](db),
		products:     store.New[domain.Product](db),
		transactions: store.New[domain.Transaction](db),
		items:        store.New[domain.TransactionItem](db),
		now:          systemClock,
	}
}

// Create records a purchase of basket by the user. The header and every line
// item are written in one database transaction; any failure leaves no trace.
//
// The buyer's balance and each product's stock are checked but not changed.
func (s *TransactionService) Create(ctx context.Context, userID uint, basket []domain.LineItem) (*domain.Transaction, error) {
	if len(basket) == 0 {
		return nil, domain.WrongAmount(0)
	}
	for _, it := range basket {
		if it.Count <= 0 {
			return nil, domain.WrongAmount(it.Count)
		}
		if !it.Amount.IsPositive() || !domain.IsWholeCents(it.Amount) {
			return nil, domain.WrongAmount(it.Amount)
		}
	}

	var created *domain.Transaction
	err := store.Atomic(ctx, s.db, func(tx *gorm.DB) error {
		user, err := s.users.WithTx(tx).FindActiveByID(ctx, userID)
		if err != nil {
			return notFound(err, domain.UserNotFound(userID), "find user")
		}

		total := domain.BasketTotal(basket)
		if user.Balance.LessThan(total) {
			return domain.NotEnoughBalance()
		}

		header := &domain.Transaction{UserID: user.ID, TotalAmount: total, Date: s.now()}
		if err := s.transactions.WithTx(tx).Insert(ctx, header); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		products := s.products.WithTx(tx)
		items := s.items.WithTx(tx)
		for _, it := range basket {
			p, err := products.FindActiveByID(ctx, it.ProductID)
			if err != nil {
				return notFound(err, domain.ProductNotFound(it.ProductID), "find product")
			}
			if p.Count < it.Count {
				return domain.NotEnoughProduct(p.Count)
			}
			item := domain.TransactionItem{
				ProductID:     p.ID,
				Count:         it.Count,
				Amount:        it.Amount,
				TotalAmount:   it.LineTotal(),
				TransactionID: header.ID,
			}
			if err := items.Insert(ctx, &item); err != nil {
				return fmt.Errorf("insert transaction item: %w", err)
			}
			header.Items = append(header.Items, item)
		}
		created = header
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"items":   len(basket),
			"error":   err.Error(),
		}).Warn("Purchase rejected")
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": created.ID,
		"total_amount":   created.TotalAmount.String(),
		"items":          len(created.Items),
		"type":           "purchase",
	}).Info("Purchase transaction")
	return created, nil
}

// Get returns an active transaction with its buyer loaded
func (s *TransactionService) Get(ctx context.Context, id uint) (*domain.Transaction, error) {
	t, err := s.transactions.WithPreload("User").FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.TransactionNotFound(id), "find transaction")
	}
	return t, nil
}

// List returns one page of active transactions
func (s *TransactionService) List(ctx context.Context, p store.Page) (store.Result[domain.Transaction], error) {
	return s.transactions.WithPreload("User").FindAllActive(ctx, p)
}

// Delete soft-deletes the transaction header only; its line items stay active
func (s *TransactionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.transactions.SoftDeleteByID(ctx, id); err != nil {
		return notFound(err, domain.TransactionNotFound(id), "delete transaction")
	}
	return nil
}

// PurchasedProducts pages through every active line item bought by the user
func (s *TransactionService) PurchasedProducts(ctx context.Context, userID uint, p store.Page) (store.Result[domain.TransactionItem], error) {
	if _, err := s.users.FindActiveByID(ctx, userID); err != nil {
		return store.Result[domain.TransactionItem]{}, notFound(err, domain.UserNotFound(userID), "find user")
	}
	byBuyer := func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN "+s.transactions.Table()+" ON "+s.transactions.Column("id")+" = "+s.items.Column("transaction_id")).
			Where(s.transactions.Column("user_id")+" = ?", userID)
	}
	return s.items.WithPreload("Product").FindAllActive(ctx, p, byBuyer)
}

// ItemsOfTransaction pages through the active line items of one active transaction
func (s *TransactionService) ItemsOfTransaction(ctx context.Context, transactionID uint, p store.Page) (store.Result[domain.TransactionItem], error) {
	if _, err := s.transactions.FindActiveByID(ctx, transactionID); err != nil {
		return store.Result[domain.TransactionItem]{}, notFound(err, domain.TransactionNotFound(transactionID), "find transaction")
	}
	return s.items.WithPreload("Product").FindAllActive(ctx, p,
		where(s.items.Column("transaction_id"), transactionID))
}
