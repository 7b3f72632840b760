package repository

import (
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type UserEntity struct {
	ID           int64  `db:"id"            gorm:"primaryKey;autoIncrement;column:id"`
	Username     string `db:"username"      gorm:"column:username;not null;unique"`
	PasswordHash string `db:"password_hash" gorm:"column:password_hash;not null"`
}

func (UserEntity) TableName() string {
	return "users"
}

func toUserEntity(m *model.User) *UserEntity {
	if m == nil {
		return nil
	}
	return &UserEntity{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
	}
}

func toUserModel(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		ID:           e.ID,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
	}
}
