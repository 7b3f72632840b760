package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/pg"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrDuplicateNationalID = errors.New("national id already registered")
)

type CustomerRepository struct {
	*pg.DB
}

func NewCustomerRepository(db *pg.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(customer)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCustomerModel(entity), nil
}

// GetOwned returns the customer only when it belongs to the given user; a
// foreign user's customer is indistinguishable from an absent one.
func (r *CustomerRepository) GetOwned(ctx context.Context, id int64, ownerUserID int64) (*model.Customer, error) {
	var entity CustomerEntity

	err := r.Read(ctx).WithContext(ctx).
		Where("id = ? AND owner_user_id = ?", id, ownerUserID).
		First(&entity).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return toCustomerModel(&entity), nil
}

func (r *CustomerRepository) ListByOwner(ctx context.Context, ownerUserID int64) ([]*model.Customer, error) {
	var entities []*CustomerEntity

	err := r.Read(ctx).WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("id").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}

	return toCustomerModels(entities), nil
}

func (r *CustomerRepository) CountByOwner(ctx context.Context, ownerUserID int64) (int64, error) {
	var count int64
	err := r.Read(ctx).WithContext(ctx).
		Model(&CustomerEntity{}).
		Where("owner_user_id = ?", ownerUserID).
		Count(&count).
		Error
	return count, err
}

func (r *CustomerRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	err := r.Write(ctx).WithContext(ctx).
		Model(&CustomerEntity{}).
		Where("national_id = ?", nationalID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&CustomerEntity{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
