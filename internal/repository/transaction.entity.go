package repository

import (
	"time"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

// TransactionEntity rows are append-only: no repository method updates or
// deletes them.
type TransactionEntity struct {
	ID            int64     `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	DebitAccount  *int64    `db:"debit_account"  gorm:"column:debit_account;index"`
	CreditAccount *int64    `db:"credit_account" gorm:"column:credit_account;index"`
	Amount        int64     `db:"amount"         gorm:"column:amount;not null"`
	Kind          string    `db:"kind"           gorm:"column:kind;not null"`
	CreatedAt     time.Time `db:"created_at"     gorm:"column:created_at;autoCreateTime"`
	ActingUserID  int64     `db:"acting_user_id" gorm:"column:acting_user_id;not null;index"`
}

func (TransactionEntity) TableName() string {
	return "transactions"
}

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	return &TransactionEntity{
		ID:            m.ID,
		DebitAccount:  m.DebitAccount,
		CreditAccount: m.CreditAccount,
		Amount:        m.Amount,
		Kind:          m.Kind,
		CreatedAt:     m.CreatedAt,
		ActingUserID:  m.ActingUserID,
	}
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	return &model.Transaction{
		ID:            e.ID,
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		Amount:        e.Amount,
		Kind:          e.Kind,
		CreatedAt:     e.CreatedAt,
		ActingUserID:  e.ActingUserID,
	}
}

func toTransactionModels(entities []*TransactionEntity) []*model.Transaction {
	if entities == nil {
		return nil
	}
	models := make([]*model.Transaction, len(entities))
	for i, e := range entities {
		models[i] = toTransactionModel(e)
	}
	return models
}
