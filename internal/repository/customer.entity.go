package repository

import (
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type CustomerEntity struct {
	ID          int64  `db:"id"            gorm:"primaryKey;autoIncrement;column:id"`
	OwnerUserID int64  `db:"owner_user_id" gorm:"column:owner_user_id;not null;index"`
	Name        string `db:"name"          gorm:"column:name;not null"`
	NationalID  string `db:"national_id"   gorm:"column:national_id;not null;unique"`
	Phone       string `db:"phone"         gorm:"column:phone;not null"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		NationalID:  m.NationalID,
		Phone:       m.Phone,
	}
}

func toCustomerModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		ID:          e.ID,
		OwnerUserID: e.OwnerUserID,
		Name:        e.Name,
		NationalID:  e.NationalID,
		Phone:       e.Phone,
	}
}

func toCustomerModels(entities []*CustomerEntity) []*model.Customer {
	if entities == nil {
		return nil
	}
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e)
	}
	return models
}
