package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/prom"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid login details")
	ErrEmptyCredentials   = errors.New("username and password cannot be empty")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AuthService struct {
	userRepo   UserRepository
	bcryptCost int
}

func NewAuthService(userRepo UserRepository, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// Register stores a new user with a bcrypt hash. The uniqueness pre-check and
// the insert run in one transaction; the unique index on username backs the
// check against races.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *model.User
	err = s.userRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.userRepo.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateUsername
		}

		user, err := s.userRepo.Create(ctx, &model.User{
			Username:     username,
			PasswordHash: string(hash),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials and returns the identity to bind into a
// session. An unknown username and a wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Identity, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		prom.AddLogin("failed")
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		prom.AddLogin("failed")
		return nil, ErrInvalidCredentials
	}

	prom.AddLogin("ok")
	return &model.Identity{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}
