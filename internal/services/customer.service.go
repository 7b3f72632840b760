package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/repository"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrDuplicateNationalID = errors.New("national id already registered")
	ErrCustomerHasAccounts = errors.New("cannot delete customer with active accounts")
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetOwned(ctx context.Context, id int64, ownerUserID int64) (*model.Customer, error)
	ListByOwner(ctx context.Context, ownerUserID int64) ([]*model.Customer, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	Delete(ctx context.Context, id int64) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AccountCounter interface {
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}

type Auditor interface {
	Record(ctx context.Context, action, targetType, actorUsername string) error
}

type CustomerService struct {
	customerRepo CustomerRepository
	accounts     AccountCounter
	auditor      Auditor
}

func NewCustomerService(customerRepo CustomerRepository, accounts AccountCounter, auditor Auditor) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		accounts:     accounts,
		auditor:      auditor,
	}
}

// Create registers a customer under the caller. The duplicate check, the
// insert and the audit entry commit together.
func (s *CustomerService) Create(ctx context.Context, identity model.Identity, p model.CustomerCreateRequest) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var created *model.Customer
	err := s.customerRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.ExistsByNationalID(ctx, p.NationalID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateNationalID
		}

		customer, err := s.customerRepo.Create(ctx, &model.Customer{
			OwnerUserID: identity.UserID,
			Name:        p.Name,
			NationalID:  p.NationalID,
			Phone:       p.Phone,
		})
		if err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		created = customer

		return s.auditor.Record(ctx, model.AuditActionCreate, model.AuditTargetCustomer, identity.Username)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete removes an owned customer. A customer that still owns accounts is
// left untouched.
func (s *CustomerService) Delete(ctx context.Context, identity model.Identity, id int64) error {
	return s.customerRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.customerRepo.GetOwned(ctx, id, identity.UserID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		count, err := s.accounts.CountByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCustomerHasAccounts
		}

		if err := s.customerRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}

		return s.auditor.Record(ctx, model.AuditActionDelete, model.AuditTargetCustomer, identity.Username)
	})
}

func (s *CustomerService) List(ctx context.Context, identity model.Identity) ([]*model.Customer, error) {
	return s.customerRepo.ListByOwner(ctx, identity.UserID)
}
