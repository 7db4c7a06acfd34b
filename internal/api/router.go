package api

import (
	"back_office/internal/cache"      // Redis cache
	"back_office/internal/i18n"       // Localized messages
	"back_office/internal/middleware" // Request middleware
	"back_office/internal/service"    // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Deps holds everything the routes need
type Deps struct {
	DB         *gorm.DB          // Database handle for health checks
	Services   *service.Services // Business logic
	Cache      *cache.Cache      // Optional Redis cache, may be nil
	Translator *i18n.Translator  // Error message catalog
}

// RegisterRoutes installs the middleware chain and every back office route on r
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestID())            // Tag each request with an ID
	r.Use(middleware.AccessLog())            // Log each request
	r.Use(middleware.Language(d.Translator)) // Negotiate the response language
	r.Use(ErrorMiddleware(d.Translator))     // Map handler errors to responses

	r.GET("/health", HealthHandler(d.DB, d.Cache)) // Liveness endpoint

	v1 := r.Group("/api/v1")
	accounts := d.Services.Accounts

	// User routes
	v1.POST("/user", CreateUserHandler(accounts))                        // Create user
	v1.PUT("/user/:id", UpdateUserHandler(accounts))                     // Update user
	v1.GET("/user/:id", GetUserHandler(accounts))                        // Get user
	v1.GET("/user", ListUsersHandler(accounts))                          // List users
	v1.DELETE("/user/:id", DeleteUserHandler(accounts))                  // Delete user
	v1.POST("/user/add-balance", FillBalanceHandler(accounts))           // Top up balance
	v1.GET("/user/payment-history/:id", PaymentHistoryHandler(accounts)) // Payment history of a user

	// Payment record routes
	v1.GET("/payment", ListPaymentsHandler(accounts))         // List payment records
	v1.DELETE("/payment/:id", DeletePaymentHandler(accounts)) // Delete payment record

	catalog := d.Services.Catalog

	// Category routes
	v1.POST("/category", CreateCategoryHandler(catalog))       // Create category
	v1.PUT("/category/:id", UpdateCategoryHandler(catalog))    // Update category
	v1.GET("/category/:id", GetCategoryHandler(catalog))       // Get category
	v1.GET("/category", ListCategoriesHandler(catalog))        // List categories
	v1.DELETE("/category/:id", DeleteCategoryHandler(catalog)) // Delete category

	// Product routes
	v1.POST("/product", CreateProductHandler(catalog))       // Create product
	v1.PUT("/product/:id", UpdateProductHandler(catalog))    // Update product
	v1.GET("/product/:id", GetProductHandler(catalog))       // Get product
	v1.GET("/product", ListProductsHandler(catalog))         // List products
	v1.DELETE("/product/:id", DeleteProductHandler(catalog)) // Delete product

	transactions := d.Services.Transactions

	// Transaction routes
	v1.POST("/transaction", CreateTransactionHandler(transactions))                      // Purchase
	v1.GET("/transaction/:id", GetTransactionHandler(transactions))                      // Get transaction
	v1.GET("/transaction", ListTransactionsHandler(transactions))                        // List transactions
	v1.DELETE("/transaction/:id", DeleteTransactionHandler(transactions))                // Delete transaction
	v1.GET("/transaction/purchased-product/:id", PurchasedProductsHandler(transactions)) // Products bought by a user
	v1.GET("/transaction/products/:id", TransactionProductsHandler(transactions))        // Items of a transaction

	items := d.Services.Items

	// Transaction item routes
	v1.GET("/transaction-item/:id", GetTransactionItemHandler(items))       // Get item
	v1.GET("/transaction-item", ListTransactionItemsHandler(items))         // List items
	v1.DELETE("/transaction-item/:id", DeleteTransactionItemHandler(items)) // Delete item
}
