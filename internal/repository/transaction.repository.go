package repository

import (
	"context"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/pg"
)

type TransactionRepository struct {
	*pg.DB
}

func NewTransactionRepository(db *pg.DB) *TransactionRepository {
	return &TransactionRepository{
		db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	entity := toTransactionEntity(txn)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toTransactionModel(entity), nil
}

// ListByActor returns the acting user's ledger entries, newest first.
// limit <= 0 means no limit.
func (r *TransactionRepository) ListByActor(ctx context.Context, actingUserID int64, limit int) ([]*model.Transaction, error) {
	var entities []*TransactionEntity

	q := r.Read(ctx).WithContext(ctx).
		Where("acting_user_id = ?", actingUserID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}

	return toTransactionModels(entities), nil
}

func (r *TransactionRepository) CountByAccount(ctx context.Context, accountNo int64) (int64, error) {
	var count int64
	err := r.Read(ctx).WithContext(ctx).
		Model(&TransactionEntity{}).
		Where("debit_account = ? OR credit_account = ?", accountNo, accountNo).
		Count(&count).
		Error
	return count, err
}
