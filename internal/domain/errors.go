package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a domain failure on the wire; values are locale independent
type ErrorCode int

// Closed set of domain failures
const (
	CodeUsernameExists          ErrorCode = 100
	CodeUserNotFound            ErrorCode = 101
	CodeCategoryNotFound        ErrorCode = 102
	CodeProductNotFound         ErrorCode = 103
	CodeWrongAmount             ErrorCode = 104
	CodeNotEnoughProduct        ErrorCode = 105
	CodeTransactionNotFound     ErrorCode = 106
	CodeNegativeBalance         ErrorCode = 107
	CodePaymentRecordNotFound   ErrorCode = 108
	CodeTransactionItemNotFound ErrorCode = 109
	CodeNotEnoughBalance        ErrorCode = 110
)

var codeNames = map[ErrorCode]string{
	CodeUsernameExists:          "USER_NAME_EXISTS",
	CodeUserNotFound:            "USER_NOT_FOUND",
	CodeCategoryNotFound:        "CATEGORY_NOT_FOUND",
	CodeProductNotFound:         "PRODUCT_NOT_FOUND",
	CodeWrongAmount:             "WRONG_AMOUNT",
	CodeNotEnoughProduct:        "NOT_ENOUGH_PRODUCT",
	CodeTransactionNotFound:     "TRANSACTION_NOT_FOUND",
	CodeNegativeBalance:         "NEGATIVE_BALANCE",
	CodePaymentRecordNotFound:   "USER_PAYMENT_TRANSACTION_NOT_FOUND",
	CodeTransactionItemNotFound: "TRANSACTION_ITEM_NOT_FOUND",
	CodeNotEnoughBalance:        "NOT_ENOUGH_BALANCE",
}

// Codes returns every declared error code in ascending order
func Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(codeNames))
	for c := CodeUsernameExists; c <= CodeNotEnoughBalance; c++ {
		codes = append(codes, c)
	}
	return codes
}

// String returns the symbolic name of the code, used as the message catalog key
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error is a domain failure: the code selects the variant, Value carries the
// offending value used when formatting the message (nil for NotEnoughBalance).
type Error struct {
	Code  ErrorCode
	Value any
}

func (e *Error) Error() string {
	if e.Value == nil {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Value)
}

// Is matches any *Error with the same code, so errors.Is(err, &Error{Code: c}) works
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// AsError extracts a domain error from err
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether err is a domain error with the given code
func HasCode(err error, code ErrorCode) bool {
	de, ok := AsError(err)
	return ok && de.Code == code
}

func UsernameExists(username string) *Error {
	return &Error{Code: CodeUsernameExists, Value: username}
}

func UserNotFound(id uint) *Error {
	return &Error{Code: CodeUserNotFound, Value: id}
}

func CategoryNotFound(id uint) *Error {
	return &Error{Code: CodeCategoryNotFound, Value: id}
}

func ProductNotFound(id uint) *Error {
	return &Error{Code: CodeProductNotFound, Value: id}
}

func WrongAmount(amount any) *Error {
	return &Error{Code: CodeWrongAmount, Value: amount}
}

// NotEnoughProduct carries the stock count that was available
func NotEnoughProduct(available int64) *Error {
	return &Error{Code: CodeNotEnoughProduct, Value: available}
}

func TransactionNotFound(id uint) *Error {
	return &Error{Code: CodeTransactionNotFound, Value: id}
}

func NegativeBalance(amount any) *Error {
	return &Error{Code: CodeNegativeBalance, Value: amount}
}

func PaymentRecordNotFound(id uint) *Error {
	return &Error{Code: CodePaymentRecordNotFound, Value: id}
}

func TransactionItemNotFound(id uint) *Error {
	return &Error{Code: CodeTransactionItemNotFound, Value: id}
}

func NotEnoughBalance() *Error {
	return &Error{Code: CodeNotEnoughBalance}
}
