package api

import (
	"back_office/internal/service" // Business logic
	"net/http"                     // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateTransactionHandler records a purchase of a basket of products
func CreateTransactionHandler(transactions *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransactionCreateRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		tx, err := transactions.Create(c.Request.Context(), req.UserID, req.Basket())
		if err != nil {
			fail(c, err) // Nothing was persisted
			return
		}
		c.JSON(http.StatusCreated, toTransactionResponse(*tx))
	}
}

// GetTransactionHandler returns a transaction header
func GetTransactionHandler(transactions *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		tx, err := transactions.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toTransactionResponse(*tx))
	}
}

// ListTransactionsHandler returns a page of transaction headers
func ListTransactionsHandler(transactions *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := transactions.List(c.Request.Context(), pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toTransactionResponse))
	}
}

// DeleteTransactionHandler soft deletes a transaction header; its items stay active
func DeleteTransactionHandler(transactions *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := transactions.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
	}
}

// PurchasedProductsHandler lists every product line a user has bought
func PurchasedProductsHandler(transactions *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c) // User ID
		if !ok {
			return
		}
		res, err := transactions.PurchasedProducts(c.Request.Context(), id, pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toUserProductResponse))
	}
}

// TransactionProductsHandler lists the line items of one transaction
func TransactionProductsHandler(transactions *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c) // Transaction ID
		if !ok {
			return
		}
		res, err := transactions.ItemsOfTransaction(c.Request.Context(), id, pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toTransactionItemResponse))
	}
}

// GetTransactionItemHandler returns one line item
func GetTransactionItemHandler(items *service.TransactionItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		it, err := items.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toTransactionItemResponse(*it))
	}
}

// ListTransactionItemsHandler returns a page of line items across all transactions
func ListTransactionItemsHandler(items *service.TransactionItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := items.List(c.Request.Context(), pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toTransactionItemResponse))
	}
}

// DeleteTransactionItemHandler soft deletes a line item
func DeleteTransactionItemHandler(items *service.TransactionItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := items.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transaction item deleted"})
	}
}
