package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

func TestCustomerRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Customer{
		OwnerUserID: 1,
		Name:        "Ali Raza",
		NationalID:  "35202-1111111-1",
		Phone:       "0300-1234567",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ali Raza", created.Name)
}

func TestCustomerRepository_GetOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Customer{
		OwnerUserID: 1,
		Name:        "Ali Raza",
		NationalID:  "35202-1111111-1",
		Phone:       "0300-1234567",
	})
	require.NoError(t, err)

	t.Run("owner sees the customer", func(t *testing.T) {
		got, err := repo.GetOwned(ctx, created.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("other users do not", func(t *testing.T) {
		_, err := repo.GetOwned(ctx, created.ID, 2)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestCustomerRepository_ExistsByNationalID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Customer{
		OwnerUserID: 1,
		Name:        "Ali Raza",
		NationalID:  "35202-1111111-1",
		Phone:       "0300-1234567",
	})
	require.NoError(t, err)

	exists, err := repo.ExistsByNationalID(ctx, "35202-1111111-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByNationalID(ctx, "35202-2222222-2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCustomerRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Customer{
		OwnerUserID: 1,
		Name:        "Ali Raza",
		NationalID:  "35202-1111111-1",
		Phone:       "0300-1234567",
	})
	require.NoError(t, err)

	t.Run("delete existing", func(t *testing.T) {
		err := repo.Delete(ctx, created.ID)
		assert.NoError(t, err)

		_, err = repo.GetOwned(ctx, created.ID, 1)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		err := repo.Delete(ctx, 999)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestCustomerRepository_ListByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db.DB)
	ctx := context.Background()

	for i, nid := range []string{"nid-1", "nid-2", "nid-3"} {
		owner := int64(1)
		if i == 2 {
			owner = 2
		}
		_, err := repo.Create(ctx, &model.Customer{
			OwnerUserID: owner,
			Name:        "customer",
			NationalID:  nid,
			Phone:       "0300",
		})
		require.NoError(t, err)
	}

	customers, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	count, err := repo.CountByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
