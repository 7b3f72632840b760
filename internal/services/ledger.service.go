package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/repository"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/prom"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrAccountNotFound   = errors.New("account not found")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
)

type AccountRepository interface {
	GetOwnedForUpdate(ctx context.Context, accountNo int64, ownerUserID int64) (*model.Account, error)
	GetForUpdate(ctx context.Context, accountNo int64) (*model.Account, error)
	AddBalance(ctx context.Context, accountNo int64, amount int64) error
	DeductBalance(ctx context.Context, accountNo int64, amount int64) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	ListByActor(ctx context.Context, actingUserID int64, limit int) ([]*model.Transaction, error)
}

// LedgerService applies the three balance-mutating operations. Each one runs
// as a single unit of work: the account row is locked, the balance check and
// mutation happen under that lock, and exactly one ledger entry is inserted
// before the transaction commits. No caller can observe a balance change
// without its ledger entry or vice versa.
type LedgerService struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
}

func NewLedgerService(accountRepo AccountRepository, transactionRepo TransactionRepository) *LedgerService {
	return &LedgerService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *LedgerService) Deposit(ctx context.Context, identity model.Identity, accountNo int64, amount int64) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var created *model.Transaction
	err := s.accountRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.accountRepo.GetOwnedForUpdate(ctx, accountNo, identity.UserID); err != nil {
			return mapAccountError(err)
		}

		if err := s.accountRepo.AddBalance(ctx, accountNo, amount); err != nil {
			return fmt.Errorf("add balance: %w", err)
		}

		txn, err := s.transactionRepo.Create(ctx, &model.Transaction{
			CreditAccount: &accountNo,
			Amount:        amount,
			Kind:          model.KindDeposit,
			ActingUserID:  identity.UserID,
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		created = txn
		return nil
	})
	observeLedgerOp(model.KindDeposit, amount, err)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *LedgerService) Withdraw(ctx context.Context, identity model.Identity, accountNo int64, amount int64) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var created *model.Transaction
	err := s.accountRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetOwnedForUpdate(ctx, accountNo, identity.UserID)
		if err != nil {
			return mapAccountError(err)
		}
		if account.Balance < amount {
			return ErrInsufficientFunds
		}

		if err := s.accountRepo.DeductBalance(ctx, accountNo, amount); err != nil {
			return mapAccountError(err)
		}

		txn, err := s.transactionRepo.Create(ctx, &model.Transaction{
			DebitAccount: &accountNo,
			Amount:       amount,
			Kind:         model.KindWithdraw,
			ActingUserID: identity.UserID,
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		created = txn
		return nil
	})
	observeLedgerOp(model.KindWithdraw, amount, err)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transfer debits the caller's account and credits the destination. Only the
// source must belong to the caller; paying into any account is allowed.
func (s *LedgerService) Transfer(ctx context.Context, identity model.Identity, fromAccountNo, toAccountNo int64, amount int64) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if fromAccountNo == toAccountNo {
		return nil, ErrSameAccount
	}

	var created *model.Transaction
	err := s.accountRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		var source *model.Account
		lockSource := func() error {
			a, err := s.accountRepo.GetOwnedForUpdate(ctx, fromAccountNo, identity.UserID)
			if err != nil {
				return mapAccountError(err)
			}
			source = a
			return nil
		}
		lockDest := func() error {
			if _, err := s.accountRepo.GetForUpdate(ctx, toAccountNo); err != nil {
				return mapAccountError(err)
			}
			return nil
		}

		// Row locks are taken in ascending account order so two crossed
		// transfers cannot deadlock each other.
		first, second := lockSource, lockDest
		if toAccountNo < fromAccountNo {
			first, second = lockDest, lockSource
		}
		if err := first(); err != nil {
			return err
		}
		if err := second(); err != nil {
			return err
		}

		if source.Balance < amount {
			return ErrInsufficientFunds
		}

		if err := s.accountRepo.DeductBalance(ctx, fromAccountNo, amount); err != nil {
			return mapAccountError(err)
		}
		if err := s.accountRepo.AddBalance(ctx, toAccountNo, amount); err != nil {
			return mapAccountError(err)
		}

		txn, err := s.transactionRepo.Create(ctx, &model.Transaction{
			DebitAccount:  &fromAccountNo,
			CreditAccount: &toAccountNo,
			Amount:        amount,
			Kind:          model.KindTransfer,
			ActingUserID:  identity.UserID,
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		created = txn
		return nil
	})
	observeLedgerOp(model.KindTransfer, amount, err)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// History returns the acting user's ledger entries, newest first.
func (s *LedgerService) History(ctx context.Context, identity model.Identity, limit int) ([]*model.Transaction, error) {
	return s.transactionRepo.ListByActor(ctx, identity.UserID, limit)
}

func mapAccountError(err error) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, repository.ErrInsufficientFunds):
		return ErrInsufficientFunds
	default:
		return err
	}
}

func observeLedgerOp(kind string, amount int64, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	prom.AddTransactionProcessed(kind, outcome, amount)
}
