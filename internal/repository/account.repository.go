package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/pg"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrConcurrentUpdate  = errors.New("concurrent update detected")
)

type AccountRepository struct {
	*pg.DB
}

func NewAccountRepository(db *pg.DB) *AccountRepository {
	return &AccountRepository{
		db,
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	entity := toAccountEntity(account)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toAccountModel(entity), nil
}

// GetOwnedForUpdate locks the account row (SELECT ... FOR UPDATE) and scopes
// the lookup to accounts whose customer belongs to the given user. The lock
// is what keeps a concurrent balance check from racing past this one; it only
// has effect inside WithinTransaction.
func (r *AccountRepository) GetOwnedForUpdate(ctx context.Context, accountNo int64, ownerUserID int64) (*model.Account, error) {
	var entity AccountEntity

	err := r.Write(ctx).WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "accounts"}}).
		Joins("JOIN customers ON customers.id = accounts.customer_id").
		Where("accounts.account_no = ? AND customers.owner_user_id = ?", accountNo, ownerUserID).
		First(&entity).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return toAccountModel(&entity), nil
}

// GetForUpdate locks an account row without an ownership scope. Transfer
// destinations are looked up this way: paying into another user's account is
// allowed.
func (r *AccountRepository) GetForUpdate(ctx context.Context, accountNo int64) (*model.Account, error) {
	var entity AccountEntity

	err := r.Write(ctx).WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_no = ?", accountNo).
		First(&entity).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return toAccountModel(&entity), nil
}

func (r *AccountRepository) AddBalance(ctx context.Context, accountNo int64, amount int64) error {
	result := r.Write(ctx).WithContext(ctx).
		Model(&AccountEntity{}).
		Where("account_no = ?", accountNo).
		Update("balance", gorm.Expr("balance + ?", amount))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// DeductBalance guards the subtraction with a balance predicate so the row
// can never go negative even if a caller skipped the locked read.
func (r *AccountRepository) DeductBalance(ctx context.Context, accountNo int64, amount int64) error {
	result := r.Write(ctx).WithContext(ctx).
		Model(&AccountEntity{}).
		Where("account_no = ? AND balance >= ?", accountNo, amount).
		Update("balance", gorm.Expr("balance - ?", amount))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.checkDeductionFailureReason(ctx, accountNo, amount)
	}
	return nil
}

func (r *AccountRepository) checkDeductionFailureReason(ctx context.Context, accountNo int64, amount int64) error {
	var entity AccountEntity
	err := r.Write(ctx).WithContext(ctx).
		Where("account_no = ?", accountNo).
		First(&entity).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	if entity.Balance < amount {
		return ErrInsufficientFunds
	}

	return ErrConcurrentUpdate
}

func (r *AccountRepository) GetBalance(ctx context.Context, accountNo int64) (int64, error) {
	var entity AccountEntity
	err := r.Read(ctx).WithContext(ctx).
		Select("balance").
		Where("account_no = ?", accountNo).
		First(&entity).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}

	return entity.Balance, nil
}

func (r *AccountRepository) ListByOwner(ctx context.Context, ownerUserID int64) ([]*model.Account, error) {
	var entities []*AccountEntity

	err := r.Read(ctx).WithContext(ctx).
		Joins("JOIN customers ON customers.id = accounts.customer_id").
		Where("customers.owner_user_id = ?", ownerUserID).
		Order("accounts.account_no").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}

	return toAccountModels(entities), nil
}

func (r *AccountRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	err := r.Read(ctx).WithContext(ctx).
		Model(&AccountEntity{}).
		Where("customer_id = ?", customerID).
		Count(&count).
		Error
	return count, err
}

func (r *AccountRepository) TotalBalanceByOwner(ctx context.Context, ownerUserID int64) (int64, error) {
	var total int64
	err := r.Read(ctx).WithContext(ctx).
		Model(&AccountEntity{}).
		Select("COALESCE(SUM(balance), 0)").
		Joins("JOIN customers ON customers.id = accounts.customer_id").
		Where("customers.owner_user_id = ?", ownerUserID).
		Scan(&total).
		Error
	return total, err
}
