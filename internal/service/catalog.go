package service

import (
	"context"
	"fmt"

	"back_office/internal/cache"
	"back_office/internal/domain"
	"back_office/internal/store"

	"gorm.io/gorm"
)

// CatalogService manages categories and products
type CatalogService struct {
	categories *store.Repository[domain.Category]
	products   *store.Repository[domain.Product]
	cache      *cache.Cache // Read-through cache of categories and products, may be nil
}

// NewCatalogService builds the catalog manager. c may be nil.
func NewCatalogService(db *gorm.DB, c *cache.Cache) *CatalogService {
	return &CatalogService{
		categories: store.New[domain.Category](db),
		products:   store.New[domain.Product](db),
		cache:      c,
	}
}

// CreateCategory inserts a category
func (s *CatalogService) CreateCategory(ctx context.Context, name string, order int64, description *string) (*domain.Category, error) {
	c := &domain.Category{Name: name, Order: order, Description: description}
	if err := s.categories.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

// UpdateCategory writes the supplied fields of an active category
func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, patch domain.CategoryPatch) (*domain.Category, error) {
	if err := s.categories.UpdateActive(ctx, id, patch.Columns()); err != nil {
		return nil, notFound(err, domain.CategoryNotFound(id), "update category")
	}
	s.cache.Delete(ctx, cache.CategoryKey(id))
	c, err := s.categories.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.CategoryNotFound(id), "reload category")
	}
	return c, nil
}

// GetCategory returns an active category
func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*domain.Category, error) {
	var cached domain.Category
	if s.cache.Get(ctx, cache.CategoryKey(id), &cached) {
		return &cached, nil
	}
	c, err := s.categories.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.CategoryNotFound(id), "find category")
	}
	s.cache.Set(ctx, cache.CategoryKey(id), c)
	return c, nil
}

// ListCategories returns one page of active categories
func (s *CatalogService) ListCategories(ctx context.Context, p store.Page) (store.Result[domain.Category], error) {
	return s.categories.FindAllActive(ctx, p)
}

// DeleteCategory soft-deletes a category. Its products are left untouched.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categories.SoftDeleteByID(ctx, id); err != nil {
		return notFound(err, domain.CategoryNotFound(id), "delete category")
	}
	s.cache.Delete(ctx, cache.CategoryKey(id))
	return nil
}

// CreateProduct inserts a product under an active category
func (s *CatalogService) CreateProduct(ctx context.Context, name string, count int64, categoryID uint) (*domain.Product, error) {
	if count < 0 {
		return nil, domain.WrongAmount(count)
	}
	if err := s.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	p := &domain.Product{Name: name, Count: count, CategoryID: categoryID}
	if err := s.products.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

// UpdateProduct writes the supplied fields of an active product. A new
// category must be active.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, patch domain.ProductPatch) (*domain.Product, error) {
	if _, err := s.products.FindActiveByID(ctx, id); err != nil {
		return nil, notFound(err, domain.ProductNotFound(id), "find product")
	}
	if patch.CategoryID != nil {
		if err := s.requireCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}
	if patch.Count != nil && *patch.Count < 0 {
		return nil, domain.WrongAmount(*patch.Count)
	}
	if err := s.products.UpdateActive(ctx, id, patch.Columns()); err != nil {
		return nil, notFound(err, domain.ProductNotFound(id), "update product")
	}
	s.cache.Delete(ctx, cache.ProductKey(id)) // the cached copy carries the old category
	p, err := s.products.WithPreload("Category").FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ProductNotFound(id), "reload product")
	}
	return p, nil
}

// GetProduct returns an active product with its category loaded
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	var cached domain.Product
	if s.cache.Get(ctx, cache.ProductKey(id), &cached) {
		return &cached, nil
	}
	p, err := s.products.WithPreload("Category").FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ProductNotFound(id), "find product")
	}
	s.cache.Set(ctx, cache.ProductKey(id), p)
	return p, nil
}

// ListProducts returns one page of active products
func (s *CatalogService) ListProducts(ctx context.Context, p store.Page) (store.Result[domain.Product], error) {
	return s.products.WithPreload("Category").FindAllActive(ctx, p)
}

// DeleteProduct soft-deletes a product
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.products.SoftDeleteByID(ctx, id); err != nil {
		return notFound(err, domain.ProductNotFound(id), "delete product")
	}
	s.cache.Delete(ctx, cache.ProductKey(id))
	return nil
}

func (s *CatalogService) requireCategory(ctx context.Context, id uint) error {
	ok, err := s.categories.ExistsActive(ctx, where(s.categories.Column("id"), id))
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return domain.CategoryNotFound(id)
	}
	return nil
}
