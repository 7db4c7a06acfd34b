package api

import (
	"back_office/internal/service" // Business logic
	"net/http"                     // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateUserHandler registers a new user
func CreateUserHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserCreateRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		user, err := accounts.Create(c.Request.Context(), req.FullName, req.Username, req.Balance)
		if err != nil {
			fail(c, err) // Username taken or negative balance
			return
		}
		c.JSON(http.StatusCreated, toUserResponse(*user))
	}
}

// UpdateUserHandler overwrites the supplied fields of a user
func UpdateUserHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req UserUpdateRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		user, err := accounts.Update(c.Request.Context(), id, req.Patch())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toUserResponse(*user))
	}
}

// GetUserHandler returns a single user
func GetUserHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		user, err := accounts.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toUserResponse(*user))
	}
}

// ListUsersHandler returns a page of users
func ListUsersHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := accounts.List(c.Request.Context(), pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toUserResponse))
	}
}

// DeleteUserHandler soft deletes a user
func DeleteUserHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := accounts.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// FillBalanceHandler tops up a user's balance and records the payment
func FillBalanceHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FillBalanceRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		user, err := accounts.FillBalance(c.Request.Context(), req.UserID, req.Amount)
		if err != nil {
			fail(c, err) // Unknown user or non-positive amount
			return
		}
		c.JSON(http.StatusOK, toUserResponse(*user))
	}
}

// PaymentHistoryHandler lists the top-ups of one user, newest first by default
func PaymentHistoryHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		res, err := accounts.PaymentHistory(c.Request.Context(), id, pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toPaymentHistoryResponse))
	}
}

// ListPaymentsHandler returns a page of payment records across all users
func ListPaymentsHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := accounts.ListPayments(c.Request.Context(), pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toPaymentResponse))
	}
}

// DeletePaymentHandler soft deletes a payment record. The balance is left as is.
func DeletePaymentHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := accounts.DeletePayment(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
	}
}
