package model

import "time"

const (
	KindDeposit  = "Deposit"
	KindWithdraw = "Withdraw"
	KindTransfer = "Transfer"
)

// Transaction is an append-only ledger entry. Deposit sets the credit side
// only, Withdraw the debit side only, Transfer both. Amount is always
// positive, in minor units.
type Transaction struct {
	ID            int64     `json:"id"`
	DebitAccount  *int64    `json:"debit_account"`
	CreditAccount *int64    `json:"credit_account"`
	Amount        int64     `json:"amount"`
	Kind          string    `json:"kind"`
	CreatedAt     time.Time `json:"created_at"`
	ActingUserID  int64     `json:"acting_user_id"`
}

func (Transaction) TableName() string { return "transactions" }
