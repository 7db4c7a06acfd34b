package service

import (
	"context"
	"fmt"

	"back_office/internal/cache"
	"back_office/internal/domain"
	"back_office/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AccountService manages users, their balances and the top-up history
type AccountService struct {
	db       *gorm.DB
	users    *store.Repository[domain.User]
	payments *store.Repository[domain.UserPaymentTransaction]
	cache    *cache.Cache // Read-through cache of single users, may be nil
	now      Clock        // Stamps payment dates
}

// NewAccountService builds the account manager. c may be nil.
func NewAccountService(db *gorm.DB, c *cache.Cache) *AccountService {
	return &AccountService{
		db:       db,
		users:    store.New[domain.User](db),
		payments: store.New[domain.UserPaymentTransaction](db),
		cache:    c,
		now:      systemClock,
	}
}

// Create registers a user. The username must not be held by another active user.
func (s *AccountService) Create(ctx context.Context, fullName, username string, balance decimal.Decimal) (*domain.User, error) {
	if err := checkBalance(balance); err != nil {
		return nil, err
	}
	taken, err := s.usernameTaken(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.UsernameExists(username)
	}
	u := &domain.User{FullName: fullName, Username: username, Balance: balance}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// Update writes the supplied fields of an active user and returns the row as stored
func (s *AccountService) Update(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	u, err := s.users.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.UserNotFound(id), "find user")
	}
	if patch.Balance != nil {
		if err := checkBalance(*patch.Balance); err != nil {
			return nil, err
		}
	}
	if patch.Username != nil && *patch.Username != u.Username {
		taken, err := s.usernameTaken(ctx, *patch.Username, u.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.UsernameExists(*patch.Username)
		}
	}
	if err := s.users.UpdateActive(ctx, id, patch.Columns()); err != nil {
		return nil, notFound(err, domain.UserNotFound(id), "update user")
	}
	s.cache.Delete(ctx, cache.UserKey(id))
	u, err = s.users.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.UserNotFound(id), "reload user")
	}
	return u, nil
}

// Get returns an active user
func (s *AccountService) Get(ctx context.Context, id uint) (*domain.User, error) {
	var cached domain.User
	if s.cache.Get(ctx, cache.UserKey(id), &cached) {
		return &cached, nil
	}
	u, err := s.users.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.UserNotFound(id), "find user")
	}
	s.cache.Set(ctx, cache.UserKey(id), u)
	return u, nil
}

// List returns one page of active users
func (s *AccountService) List(ctx context.Context, p store.Page) (store.Result[domain.User], error) {
	return s.users.FindAllActive(ctx, p)
}

// Delete soft-deletes a user. Purchases and payment history are kept.
func (s *AccountService) Delete(ctx context.Context, id uint) error {
	if _, err := s.users.SoftDeleteByID(ctx, id); err != nil {
		return notFound(err, domain.UserNotFound(id), "delete user")
	}
	s.cache.Delete(ctx, cache.UserKey(id))
	return nil
}

// FillBalance adds amount to the user's balance and appends a payment record.
// Both writes commit together or not at all.
func (s *AccountService) FillBalance(ctx context.Context, userID uint, amount decimal.Decimal) (*domain.User, error) {
	if !amount.IsPositive() || !domain.IsWholeCents(amount) {
		return nil, domain.WrongAmount(amount)
	}
	var user *domain.User
	err := store.Atomic(ctx, s.db, func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		u, err := users.FindActiveForUpdate(ctx, userID)
		if err != nil {
			return notFound(err, domain.UserNotFound(userID), "find user")
		}
		topUp := map[string]any{"balance": gorm.Expr(users.Column("balance")+" + ?", amount)}
		if err := users.UpdateActive(ctx, u.ID, topUp); err != nil {
			return notFound(err, domain.UserNotFound(userID), "add balance")
		}
		if u, err = users.FindActiveByID(ctx, u.ID); err != nil {
			return notFound(err, domain.UserNotFound(userID), "reload user")
		}
		payment := &domain.UserPaymentTransaction{UserID: u.ID, Amount: amount, Date: s.now()}
		if err := s.payments.WithTx(tx).Insert(ctx, payment); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		user = u
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  amount.String(),
			"error":   err.Error(),
		}).Warn("Balance top-up failed")
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount.String(),
		"balance": user.Balance.String(),
		"type":    "top_up",
	}).Info("Balance top-up")
	s.cache.Delete(ctx, cache.UserKey(userID))
	return user, nil
}

// PaymentHistory returns the active user's top-ups, newest first unless p.Sort says otherwise
func (s *AccountService) PaymentHistory(ctx context.Context, userID uint, p store.Page) (store.Result[domain.UserPaymentTransaction], error) {
	if _, err := s.users.FindActiveByID(ctx, userID); err != nil {
		return store.Result[domain.UserPaymentTransaction]{}, notFound(err, domain.UserNotFound(userID), "find user")
	}
	return s.payments.FindAllActive(ctx, withDefaultSort(p, "date,desc"),
		where(s.payments.Column("user_id"), userID))
}

// ListPayments returns one page of every active payment record
func (s *AccountService) ListPayments(ctx context.Context, p store.Page) (store.Result[domain.UserPaymentTransaction], error) {
	return s.payments.FindAllActive(ctx, p)
}

// DeletePayment soft-deletes a payment record. The balance is left as is.
func (s *AccountService) DeletePayment(ctx context.Context, id uint) error {
	if _, err := s.payments.SoftDeleteByID(ctx, id); err != nil {
		return notFound(err, domain.PaymentRecordNotFound(id), "delete payment")
	}
	return nil
}

// usernameTaken reports whether an active user other than exceptID holds username
func (s *AccountService) usernameTaken(ctx context.Context, username string, exceptID uint) (bool, error) {
	scopes := []store.Scope{where(s.users.Column("username"), username)}
	if exceptID != 0 {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where(s.users.Column("id")+" <> ?", exceptID)
		})
	}
	taken, err := s.users.ExistsActive(ctx, scopes...)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return taken, nil
}

// checkBalance rejects balances a money column cannot hold as given
func checkBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return domain.NegativeBalance(balance)
	}
	if !domain.IsWholeCents(balance) {
		return domain.WrongAmount(balance)
	}
	return nil
}
