package model

import (
	"errors"
	"strings"
)

type Customer struct {
	ID          int64  `json:"id"`
	OwnerUserID int64  `json:"owner_user_id"`
	Name        string `json:"name"`
	NationalID  string `json:"national_id"`
	Phone       string `json:"phone"`
}

func (Customer) TableName() string { return "customers" }

type CustomerCreateRequest struct {
	Name       string
	NationalID string
	Phone      string
}

func (r *CustomerCreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("customer name cannot be empty")
	}
	if strings.TrimSpace(r.NationalID) == "" {
		return errors.New("national id cannot be empty")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return errors.New("phone cannot be empty")
	}
	return nil
}
