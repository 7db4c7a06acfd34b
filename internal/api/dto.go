package api

import (
	"back_office/internal/domain" // Importing domain models
	"back_office/internal/store"  // Paged results
	"time"                        // Timestamps

	"github.com/shopspring/decimal" // Money values
)

// UserCreateRequest represents a user registration request
type UserCreateRequest struct {
	FullName string          `json:"full_name" binding:"required"` // Display name
	Username string          `json:"username" binding:"required"`  // Unique username
	Balance  decimal.Decimal `json:"balance"`                      // Opening balance, zero when omitted
}

// UserUpdateRequest carries the user fields to overwrite; omitted fields are kept
type UserUpdateRequest struct {
	FullName *string          `json:"full_name"` // New display name
	Username *string          `json:"username"`  // New username
	Balance  *decimal.Decimal `json:"balance"`   // New balance
}

// Patch converts the request to a domain patch
func (r UserUpdateRequest) Patch() domain.UserPatch {
	return domain.UserPatch{FullName: r.FullName, Username: r.Username, Balance: r.Balance}
}

// UserResponse is the public projection of a user
type UserResponse struct {
	ID       uint            `json:"id"`        // User ID
	FullName string          `json:"full_name"` // Display name
	Username string          `json:"username"`  // Username
	Balance  decimal.Decimal `json:"balance"`   // Current balance
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, FullName: u.FullName, Username: u.Username, Balance: u.Balance}
}

// FillBalanceRequest represents a balance top-up request
type FillBalanceRequest struct {
	UserID uint            `json:"user_id" binding:"required"` // Target user
	Amount decimal.Decimal `json:"amount"`                     // Top-up amount, must be positive
}

// PaymentResponse is the projection of a payment record
type PaymentResponse struct {
	ID     uint            `json:"id"`      // Payment record ID
	UserID uint            `json:"user_id"` // Owning user
	Amount decimal.Decimal `json:"amount"`  // Top-up amount
	Date   time.Time       `json:"date"`    // Time of the top-up
}

func toPaymentResponse(p domain.UserPaymentTransaction) PaymentResponse {
	return PaymentResponse{ID: p.ID, UserID: p.UserID, Amount: p.Amount, Date: p.Date}
}

// PaymentHistoryResponse is one row of a user's payment history
type PaymentHistoryResponse struct {
	Amount decimal.Decimal `json:"amount"` // Top-up amount
	Date   time.Time       `json:"date"`   // Time of the top-up
}

func toPaymentHistoryResponse(p domain.UserPaymentTransaction) PaymentHistoryResponse {
	return PaymentHistoryResponse{Amount: p.Amount, Date: p.Date}
}

// CategoryCreateRequest represents a category creation request
type CategoryCreateRequest struct {
	Name        string  `json:"name" binding:"required"` // Category name
	Order       int64   `json:"order"`                   // Display order
	Description *string `json:"description"`             // Optional description
}

// CategoryUpdateRequest carries the category fields to overwrite
type CategoryUpdateRequest struct {
	Name        *string `json:"name"`        // New name
	Order       *int64  `json:"order"`       // New display order
	Description *string `json:"description"` // New description
}

// Patch converts the request to a domain patch
func (r CategoryUpdateRequest) Patch() domain.CategoryPatch {
	return domain.CategoryPatch{Name: r.Name, Order: r.Order, Description: r.Description}
}

// CategoryResponse is the public projection of a category
type CategoryResponse struct {
	ID          uint    `json:"id"`                    // Category ID
	Name        string  `json:"name"`                  // Category name
	Order       int64   `json:"order"`                 // Display order
	Description *string `json:"description,omitempty"` // Optional description
}

func toCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Order: c.Order, Description: c.Description}
}

// ProductCreateRequest represents a product creation request
type ProductCreateRequest struct {
	Name       string `json:"name" binding:"required"`        // Product name
	Count      int64  `json:"count"`                          // Units in stock
	CategoryID uint   `json:"category_id" binding:"required"` // Owning category
}

// ProductUpdateRequest carries the product fields to overwrite
type ProductUpdateRequest struct {
	Name       *string `json:"name"`        // New name
	Count      *int64  `json:"count"`       // New stock count
	CategoryID *uint   `json:"category_id"` // New category
}

// Patch converts the request to a domain patch
func (r ProductUpdateRequest) Patch() domain.ProductPatch {
	return domain.ProductPatch{Name: r.Name, Count: r.Count, CategoryID: r.CategoryID}
}

// ProductResponse is the public projection of a product
type ProductResponse struct {
	ID           uint   `json:"id"`                      // Product ID
	Name         string `json:"name"`                    // Product name
	Count        int64  `json:"count"`                   // Units in stock
	CategoryID   uint   `json:"category_id"`             // Owning category
	CategoryName string `json:"category_name,omitempty"` // Category name when loaded
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Count:        p.Count,
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
	}
}

// TransactionItemRequest is one basket line of a purchase request
type TransactionItemRequest struct {
	ProductID uint            `json:"product_id" binding:"required"` // Purchased product
	Count     int64           `json:"count"`                         // Units to buy
	Amount    decimal.Decimal `json:"amount"`                        // Unit amount
}

// TransactionCreateRequest represents a purchase request
type TransactionCreateRequest struct {
	UserID uint                     `json:"user_id" binding:"required"`                // Buyer
	Items  []TransactionItemRequest `json:"transaction_items" binding:"required,dive"` // Basket
}

// Basket converts the request lines to domain line items
func (r TransactionCreateRequest) Basket() []domain.LineItem {
	basket := make([]domain.LineItem, len(r.Items))
	for i, it := range r.Items {
		basket[i] = domain.LineItem{ProductID: it.ProductID, Count: it.Count, Amount: it.Amount}
	}
	return basket
}

// TransactionResponse is the public projection of a purchase
type TransactionResponse struct {
	ID          uint                      `json:"id"`                          // Transaction ID
	UserID      uint                      `json:"user_id"`                     // Buyer
	Username    string                    `json:"username,omitempty"`          // Buyer username when loaded
	TotalAmount decimal.Decimal           `json:"total_amount"`                // Sum of the line totals
	Date        time.Time                 `json:"date"`                        // Time of purchase
	Items       []TransactionItemResponse `json:"transaction_items,omitempty"` // Line items, only on creation
}

func toTransactionResponse(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Username:    t.User.Username,
		TotalAmount: t.TotalAmount,
		Date:        t.Date,
	}
	for _, it := range t.Items {
		resp.Items = append(resp.Items, toTransactionItemResponse(it))
	}
	return resp
}

// TransactionItemResponse is the public projection of a line item
type TransactionItemResponse struct {
	ID            uint            `json:"id"`                     // Line item ID
	ProductID     uint            `json:"product_id"`             // Purchased product
	ProductName   string          `json:"product_name,omitempty"` // Product name when loaded
	Count         int64           `json:"count"`                  // Purchased units
	Amount        decimal.Decimal `json:"amount"`                 // Unit amount
	TotalAmount   decimal.Decimal `json:"total_amount"`           // Amount x Count
	TransactionID uint            `json:"transaction_id"`         // Owning transaction
}

func toTransactionItemResponse(it domain.TransactionItem) TransactionItemResponse {
	return TransactionItemResponse{
		ID:            it.ID,
		ProductID:     it.ProductID,
		ProductName:   it.Product.Name,
		Count:         it.Count,
		Amount:        it.Amount,
		TotalAmount:   it.TotalAmount,
		TransactionID: it.TransactionID,
	}
}

// UserProductResponse is one product a user purchased
type UserProductResponse struct {
	ProductName string          `json:"product_name"` // Product name
	Amount      decimal.Decimal `json:"amount"`       // Unit amount
	Count       int64           `json:"count"`        // Purchased units
	TotalAmount decimal.Decimal `json:"total_amount"` // Amount x Count
}

func toUserProductResponse(it domain.TransactionItem) UserProductResponse {
	return UserProductResponse{
		ProductName: it.Product.Name,
		Amount:      it.Amount,
		Count:       it.Count,
		TotalAmount: it.TotalAmount,
	}
}

// PageResponse is the envelope of every paged listing
type PageResponse[T any] struct {
	Items      []T   `json:"items"`       // Rows of this page
	Page       int   `json:"page"`        // Current page
	PageSize   int   `json:"page_size"`   // Page size
	Total      int64 `json:"total"`       // Total number of rows
	TotalPages int   `json:"total_pages"` // Total pages
}

func toPage[T, U any](r store.Result[T], fn func(T) U) PageResponse[U] {
	m := store.Map(r, fn)
	return PageResponse[U]{
		Items:      m.Items,
		Page:       m.Page,
		PageSize:   m.PageSize,
		Total:      m.Total,
		TotalPages: m.TotalPages,
	}
}
