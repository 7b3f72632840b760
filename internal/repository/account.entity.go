package repository

import (
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type AccountEntity struct {
	AccountNo  int64  `db:"account_no"  gorm:"primaryKey;autoIncrement;column:account_no"`
	CustomerID int64  `db:"customer_id" gorm:"column:customer_id;not null;index"`
	Email      string `db:"email"       gorm:"column:email;not null"`
	Type       string `db:"type"        gorm:"column:type;not null"`
	Balance    int64  `db:"balance"     gorm:"column:balance;not null;default:0"`
}

func (AccountEntity) TableName() string {
	return "accounts"
}

func toAccountEntity(m *model.Account) *AccountEntity {
	if m == nil {
		return nil
	}
	return &AccountEntity{
		AccountNo:  m.AccountNo,
		CustomerID: m.CustomerID,
		Email:      m.Email,
		Type:       m.Type,
		Balance:    m.Balance,
	}
}

func toAccountModel(e *AccountEntity) *model.Account {
	if e == nil {
		return nil
	}
	return &model.Account{
		AccountNo:  e.AccountNo,
		CustomerID: e.CustomerID,
		Email:      e.Email,
		Type:       e.Type,
		Balance:    e.Balance,
	}
}

func toAccountModels(entities []*AccountEntity) []*model.Account {
	if entities == nil {
		return nil
	}
	models := make([]*model.Account, len(entities))
	for i, e := range entities {
		models[i] = toAccountModel(e)
	}
	return models
}
