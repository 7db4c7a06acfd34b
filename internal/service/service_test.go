package service

import (
	"context"
	"testing"
	"time"

	"back_office/internal/dbtest"
	"back_office/internal/domain"
	"back_office/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db  *gorm.DB
	svc *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := dbtest.Open(t)
	return &fixture{db: gdb, svc: New(gdb, nil)}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func assertCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, code), "want %s, got %v", code, err)
}

func (f *fixture) user(t *testing.T, username, balance string) *domain.User {
	t.Helper()
	u, err := f.svc.Accounts.Create(context.Background(), "Full "+username, username, dec(balance))
	require.NoError(t, err)
	return u
}

func (f *fixture) product(t *testing.T, name string, count int64) *domain.Product {
	t.Helper()
	ctx := context.Background()
	c, err := f.svc.Catalog.CreateCategory(ctx, "cat-"+name, 1, nil)
	require.NoError(t, err)
	p, err := f.svc.Catalog.CreateProduct(ctx, name, count, c.ID)
	require.NoError(t, err)
	return p
}

// rowCount counts rows regardless of the soft-delete flag
func (f *fixture) rowCount(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

// interleave runs write once inside the next UPDATE on table, after its row was
// read by the caller and just before the UPDATE statement itself executes
func (f *fixture) interleave(t *testing.T, table string, write func(tx *gorm.DB) error) {
	t.Helper()
	done := false
	err := f.db.Callback().Update().Before("gorm:update").Register("test:interleave:"+table, func(d *gorm.DB) {
		if done || d.Statement.Table != table {
			return
		}
		done = true
		if err := write(d.Session(&gorm.Session{NewDB: true})); err != nil {
			_ = d.AddError(err)
		}
	})
	require.NoError(t, err)
}

type userRow struct {
	FullName string
	Balance  decimal.Decimal
	Deleted  bool
}

func (f *fixture) userRow(t *testing.T, id uint) userRow {
	t.Helper()
	var row userRow
	require.NoError(t, f.db.Raw("SELECT full_name, balance, deleted FROM users WHERE id = ?", id).Scan(&row).Error)
	return row
}

func TestAccount_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.svc.Accounts.Create(ctx, "Alice Doe", "alice", decimal.Zero)
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	got, err := f.svc.Accounts.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", got.FullName)
	assert.Equal(t, "alice", got.Username)
	assertDecimal(t, "0", got.Balance)
}

func TestAccount_CreateRejectsNegativeBalance(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Accounts.Create(context.Background(), "Bob", "bob", dec("-1"))
	assertCode(t, err, domain.CodeNegativeBalance)
}

func TestAccount_UsernameFreedBySoftDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.user(t, "carol", "0")

	_, err := f.svc.Accounts.Create(ctx, "Carol Again", "carol", decimal.Zero)
	assertCode(t, err, domain.CodeUsernameExists)

	require.NoError(t, f.svc.Accounts.Delete(ctx, first.ID))

	second, err := f.svc.Accounts.Create(ctx, "Carol Again", "carol", decimal.Zero)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAccount_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dave := f.user(t, "dave", "10")
	f.user(t, "erin", "0")

	t.Run("partial patch keeps absent fields", func(t *testing.T) {
		name := "David"
		u, err := f.svc.Accounts.Update(ctx, dave.ID, domain.UserPatch{FullName: &name})
		require.NoError(t, err)
		assert.Equal(t, "David", u.FullName)
		assert.Equal(t, "dave", u.Username)
		assertDecimal(t, "10", u.Balance)
	})

	t.Run("same username is not a conflict", func(t *testing.T) {
		same := "dave"
		_, err := f.svc.Accounts.Update(ctx, dave.ID, domain.UserPatch{Username: &same})
		require.NoError(t, err)
	})

	t.Run("username held by another user", func(t *testing.T) {
		taken := "erin"
		_, err := f.svc.Accounts.Update(ctx, dave.ID, domain.UserPatch{Username: &taken})
		assertCode(t, err, domain.CodeUsernameExists)
	})

	t.Run("negative balance", func(t *testing.T) {
		neg := dec("-0.01")
		_, err := f.svc.Accounts.Update(ctx, dave.ID, domain.UserPatch{Balance: &neg})
		assertCode(t, err, domain.CodeNegativeBalance)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.svc.Accounts.Update(ctx, 999, domain.UserPatch{})
		assertCode(t, err, domain.CodeUserNotFound)
	})
}

func TestAccount_UpdateKeepsConcurrentTopUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "lena", "100")
	f.interleave(t, "users", func(tx *gorm.DB) error {
		return tx.Exec("UPDATE users SET balance = balance + 50 WHERE id = ?", u.ID).Error
	})

	name := "Lena L."
	got, err := f.svc.Accounts.Update(ctx, u.ID, domain.UserPatch{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Lena L.", got.FullName)
	assertDecimal(t, "150", got.Balance)

	row := f.userRow(t, u.ID)
	assertDecimal(t, "150", row.Balance)
	assert.False(t, row.Deleted)
}

func TestAccount_UpdateDoesNotReviveConcurrentDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "mona", "100")
	f.interleave(t, "users", func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE users SET balance = balance + 50 WHERE id = ?", u.ID).Error; err != nil {
			return err
		}
		return tx.Exec("UPDATE users SET deleted = ? WHERE id = ?", true, u.ID).Error
	})

	name := "Mona M."
	_, err := f.svc.Accounts.Update(ctx, u.ID, domain.UserPatch{FullName: &name})
	assertCode(t, err, domain.CodeUserNotFound)

	row := f.userRow(t, u.ID)
	assert.True(t, row.Deleted)
	assertDecimal(t, "150", row.Balance)
	assert.Equal(t, "Full mona", row.FullName)
}

func TestAccount_RejectsFractionsOfACent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Accounts.Create(ctx, "Nick", "nick", dec("10.005"))
	assertCode(t, err, domain.CodeWrongAmount)

	u := f.user(t, "olga", "10")
	tiny := dec("0.001")
	_, err = f.svc.Accounts.Update(ctx, u.ID, domain.UserPatch{Balance: &tiny})
	assertCode(t, err, domain.CodeWrongAmount)

	_, err = f.svc.Accounts.FillBalance(ctx, u.ID, dec("0.005"))
	assertCode(t, err, domain.CodeWrongAmount)

	assert.Zero(t, f.rowCount(t, &domain.UserPaymentTransaction{}))
	assertDecimal(t, "10", f.userRow(t, u.ID).Balance)
}

func TestAccount_SoftDeletedUserIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "frank", "5")
	require.NoError(t, f.svc.Accounts.Delete(ctx, u.ID))

	_, err := f.svc.Accounts.Get(ctx, u.ID)
	assertCode(t, err, domain.CodeUserNotFound)

	name := "x"
	_, err = f.svc.Accounts.Update(ctx, u.ID, domain.UserPatch{FullName: &name})
	assertCode(t, err, domain.CodeUserNotFound)

	assertCode(t, f.svc.Accounts.Delete(ctx, u.ID), domain.CodeUserNotFound)

	_, err = f.svc.Accounts.FillBalance(ctx, u.ID, dec("1"))
	assertCode(t, err, domain.CodeUserNotFound)

	res, err := f.svc.Accounts.List(ctx, store.Page{})
	require.NoError(t, err)
	assert.Zero(t, res.Total)
}

func TestAccount_FillBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "gina", "100.25")

	updated, err := f.svc.Accounts.FillBalance(ctx, u.ID, dec("50.50"))
	require.NoError(t, err)
	assertDecimal(t, "150.75", updated.Balance)

	got, err := f.svc.Accounts.Get(ctx, u.ID)
	require.NoError(t, err)
	assertDecimal(t, "150.75", got.Balance)

	history, err := f.svc.Accounts.PaymentHistory(ctx, u.ID, store.Page{})
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	assertDecimal(t, "50.50", history.Items[0].Amount)
	assert.Equal(t, u.ID, history.Items[0].UserID)
}

func TestAccount_FillBalanceRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "hank", "1")

	for _, amount := range []string{"0", "-5"} {
		_, err := f.svc.Accounts.FillBalance(ctx, u.ID, dec(amount))
		assertCode(t, err, domain.CodeWrongAmount)
	}
	assert.Zero(t, f.rowCount(t, &domain.UserPaymentTransaction{}))
}

func TestAccount_PaymentHistoryNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "ivy", "0")
	other := f.user(t, "jack", "0")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	f.svc.Accounts.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Hour)
	}

	for _, amount := range []string{"1", "2", "3"} {
		_, err := f.svc.Accounts.FillBalance(ctx, u.ID, dec(amount))
		require.NoError(t, err)
	}
	_, err := f.svc.Accounts.FillBalance(ctx, other.ID, dec("9"))
	require.NoError(t, err)

	history, err := f.svc.Accounts.PaymentHistory(ctx, u.ID, store.Page{})
	require.NoError(t, err)
	require.Len(t, history.Items, 3)
	assertDecimal(t, "3", history.Items[0].Amount)
	assertDecimal(t, "1", history.Items[2].Amount)

	oldestFirst, err := f.svc.Accounts.PaymentHistory(ctx, u.ID, store.Page{Sort: "date"})
	require.NoError(t, err)
	assertDecimal(t, "1", oldestFirst.Items[0].Amount)

	all, err := f.svc.Accounts.ListPayments(ctx, store.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.Total)

	_, err = f.svc.Accounts.PaymentHistory(ctx, 999, store.Page{})
	assertCode(t, err, domain.CodeUserNotFound)
}

func TestAccount_DeletePayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "kate", "0")
	_, err := f.svc.Accounts.FillBalance(ctx, u.ID, dec("10"))
	require.NoError(t, err)

	history, err := f.svc.Accounts.PaymentHistory(ctx, u.ID, store.Page{})
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	paymentID := history.Items[0].ID

	require.NoError(t, f.svc.Accounts.DeletePayment(ctx, paymentID))
	assertCode(t, f.svc.Accounts.DeletePayment(ctx, paymentID), domain.CodePaymentRecordNotFound)

	history, err = f.svc.Accounts.PaymentHistory(ctx, u.ID, store.Page{})
	require.NoError(t, err)
	assert.Empty(t, history.Items)

	got, err := f.svc.Accounts.Get(ctx, u.ID)
	require.NoError(t, err)
	assertDecimal(t, "10", got.Balance)
}
