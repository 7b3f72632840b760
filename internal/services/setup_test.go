package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/repository"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/pg"
)

type testEnv struct {
	db              *pg.DB
	rawDB           *gorm.DB
	userRepo        *repository.UserRepository
	customerRepo    *repository.CustomerRepository
	accountRepo     *repository.AccountRepository
	transactionRepo *repository.TransactionRepository
	auditRepo       *repository.AuditRepository
}

func setupTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&repository.UserEntity{},
		&repository.CustomerEntity{},
		&repository.AccountEntity{},
		&repository.TransactionEntity{},
		&repository.AuditEntryEntity{},
	)
	require.NoError(t, err)

	pgDB := &pg.DB{}
	pgDBValue := reflect.ValueOf(pgDB).Elem()

	readField := pgDBValue.FieldByName("read")
	writeField := pgDBValue.FieldByName("write")

	readField = reflect.NewAt(readField.Type(), readField.Addr().UnsafePointer()).Elem()
	writeField = reflect.NewAt(writeField.Type(), writeField.Addr().UnsafePointer()).Elem()

	readField.Set(reflect.ValueOf(db))
	writeField.Set(reflect.ValueOf(db))

	return &testEnv{
		db:              pgDB,
		rawDB:           db,
		userRepo:        repository.NewUserRepository(pgDB),
		customerRepo:    repository.NewCustomerRepository(pgDB),
		accountRepo:     repository.NewAccountRepository(pgDB),
		transactionRepo: repository.NewTransactionRepository(pgDB),
		auditRepo:       repository.NewAuditRepository(pgDB),
	}
}

// seedAccount creates user -> customer -> account and returns the account
// number.
func (e *testEnv) seedAccount(t *testing.T, ownerUserID int64, balance int64) int64 {
	t.Helper()
	ctx := context.Background()

	user := &repository.UserEntity{ID: ownerUserID, Username: usernameFor(ownerUserID), PasswordHash: "x"}
	require.NoError(t, e.db.Write(ctx).FirstOrCreate(user).Error)

	customer := &repository.CustomerEntity{
		OwnerUserID: ownerUserID,
		Name:        "customer",
		NationalID:  "nid-" + user.Username + "-" + randomSuffix(t),
		Phone:       "0300",
	}
	require.NoError(t, e.db.Write(ctx).Create(customer).Error)

	account := &repository.AccountEntity{
		CustomerID: customer.ID,
		Email:      "a@b.c",
		Type:       "Savings",
		Balance:    balance,
	}
	require.NoError(t, e.db.Write(ctx).Create(account).Error)

	return account.AccountNo
}

func (e *testEnv) balance(t *testing.T, accountNo int64) int64 {
	t.Helper()
	b, err := e.accountRepo.GetBalance(context.Background(), accountNo)
	require.NoError(t, err)
	return b
}

func (e *testEnv) transactionCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.rawDB.Model(&repository.TransactionEntity{}).Count(&count).Error)
	return count
}

func (e *testEnv) auditCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.rawDB.Model(&repository.AuditEntryEntity{}).Count(&count).Error)
	return count
}

func identityFor(userID int64) model.Identity {
	return model.Identity{UserID: userID, Username: usernameFor(userID)}
}

func usernameFor(userID int64) string {
	return "user-" + string('0'+rune(userID%10))
}

var suffixCounter int

func randomSuffix(t *testing.T) string {
	t.Helper()
	suffixCounter++
	return string('a' + rune(suffixCounter%26))
}
