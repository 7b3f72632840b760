package model

import (
	"errors"
	"strings"
)

// Account balance is stored in integer minor units (cents) so repeated
// mutations never accumulate rounding drift.
type Account struct {
	AccountNo  int64  `json:"account_no"`
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email"`
	Type       string `json:"type"`
	Balance    int64  `json:"balance"`
}

func (Account) TableName() string { return "accounts" }

type AccountCreateRequest struct {
	CustomerID     int64
	Type           string
	Email          string
	InitialBalance int64
}

func (r *AccountCreateRequest) Validate() error {
	if r.CustomerID <= 0 {
		return errors.New("customer id is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("account type cannot be empty")
	}
	if r.InitialBalance < 0 {
		return errors.New("initial balance cannot be negative")
	}
	return nil
}
