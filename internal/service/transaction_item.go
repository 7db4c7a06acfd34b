package service

import (
	"context"

	"back_office/internal/domain"
	"back_office/internal/store"

	"gorm.io/gorm"
)

// TransactionItemService exposes line items individually. Items are only ever
// created by TransactionService.Create.
type TransactionItemService struct {
	items *store.Repository[domain.TransactionItem]
}

// NewTransactionItemService builds the line item manager
func NewTransactionItemService(db *gorm.DB) *TransactionItemService {
	return &TransactionItemService{items: store.New[domain.TransactionItem](db)}
}

// Get returns an active line item with its product loaded
func (s *TransactionItemService) Get(ctx context.Context, id uint) (*domain.TransactionItem, error) {
	it, err := s.items.WithPreload("Product").FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.TransactionItemNotFound(id), "find transaction item")
	}
	return it, nil
}

// List returns one page of active line items
func (s *TransactionItemService) List(ctx context.Context, p store.Page) (store.Result[domain.TransactionItem], error) {
	return s.items.WithPreload("Product").FindAllActive(ctx, p)
}

// Delete soft-deletes a line item. Its transaction total is not recomputed.
func (s *TransactionItemService) Delete(ctx context.Context, id uint) error {
	if _, err := s.items.SoftDeleteByID(ctx, id); err != nil {
		return notFound(err, domain.TransactionItemNotFound(id), "delete transaction item")
	}
	return nil
}
