package services

import (
	"context"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

const recentTransactions = 5

type CustomerCounter interface {
	CountByOwner(ctx context.Context, ownerUserID int64) (int64, error)
}

type AccountSummarizer interface {
	ListByOwner(ctx context.Context, ownerUserID int64) ([]*model.Account, error)
	TotalBalanceByOwner(ctx context.Context, ownerUserID int64) (int64, error)
}

type DashboardService struct {
	customers    CustomerCounter
	accounts     AccountSummarizer
	transactions TransactionRepository
}

func NewDashboardService(customers CustomerCounter, accounts AccountSummarizer, transactions TransactionRepository) *DashboardService {
	return &DashboardService{
		customers:    customers,
		accounts:     accounts,
		transactions: transactions,
	}
}

func (s *DashboardService) Summary(ctx context.Context, identity model.Identity) (*model.DashboardSummary, error) {
	customerCount, err := s.customers.CountByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accounts.ListByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	total, err := s.accounts.TotalBalanceByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactions.ListByActor(ctx, identity.UserID, recentTransactions)
	if err != nil {
		return nil, err
	}

	return &model.DashboardSummary{
		CustomerCount: customerCount,
		AccountCount:  int64(len(accounts)),
		TotalBalance:  total,
		Recent:        recent,
	}, nil
}
