package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/repository"
)

type AccountStore interface {
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	ListByOwner(ctx context.Context, ownerUserID int64) ([]*model.Account, error)
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CustomerGetter interface {
	GetOwned(ctx context.Context, id int64, ownerUserID int64) (*model.Customer, error)
}

type AccountService struct {
	accountRepo     AccountStore
	customerRepo    CustomerGetter
	transactionRepo TransactionRepository
	auditor         Auditor
}

func NewAccountService(accountRepo AccountStore, customerRepo CustomerGetter, transactionRepo TransactionRepository, auditor Auditor) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		auditor:         auditor,
	}
}

// Create opens an account under one of the caller's customers. The account
// row, the synthetic opening-deposit ledger entry and the audit entry are one
// unit of work.
func (s *AccountService) Create(ctx context.Context, identity model.Identity, p model.AccountCreateRequest) (*model.Account, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var created *model.Account
	err := s.accountRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.customerRepo.GetOwned(ctx, p.CustomerID, identity.UserID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		account, err := s.accountRepo.Create(ctx, &model.Account{
			CustomerID: p.CustomerID,
			Email:      p.Email,
			Type:       p.Type,
			Balance:    p.InitialBalance,
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		created = account

		// an opening balance is a deposit and gets a ledger entry; a
		// zero-balance account gets none (ledger amounts are always positive)
		if p.InitialBalance > 0 {
			_, err = s.transactionRepo.Create(ctx, &model.Transaction{
				CreditAccount: &account.AccountNo,
				Amount:        p.InitialBalance,
				Kind:          model.KindDeposit,
				ActingUserID:  identity.UserID,
			})
			if err != nil {
				return fmt.Errorf("create opening transaction: %w", err)
			}
		}

		return s.auditor.Record(ctx, model.AuditActionCreate, model.AuditTargetAccount, identity.Username)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AccountService) List(ctx context.Context, identity model.Identity) ([]*model.Account, error) {
	return s.accountRepo.ListByOwner(ctx, identity.UserID)
}
