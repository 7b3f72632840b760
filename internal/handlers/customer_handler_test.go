package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/services"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, identity model.Identity, p model.CustomerCreateRequest) (*model.Customer, error) {
	args := m.Called(ctx, identity, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, identity model.Identity, id int64) error {
	args := m.Called(ctx, identity, id)
	return args.Error(0)
}

func (m *MockCustomerService) List(ctx context.Context, identity model.Identity) ([]*model.Customer, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	t.Run("creates customer for caller", func(t *testing.T) {
		svc := new(MockCustomerService)
		handler := NewCustomerHandler(svc)

		svc.On("Create", mock.Anything, model.Identity{UserID: 1, Username: "usman"}, mock.MatchedBy(func(p model.CustomerCreateRequest) bool {
			return p.Name == "Ali" && p.NationalID == "35202-1234567-1"
		})).Return(&model.Customer{ID: 3, OwnerUserID: 1, Name: "Ali"}, nil)

		ctx := setupFormContext("POST", "/clients/new", "name=Ali&national_id=35202-1234567-1&phone=0300-1234567")
		asIdentity(ctx, 1, "usman")
		handler.CreateCustomer(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var response model.Customer
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, int64(3), response.ID)

		svc.AssertExpectations(t)
	})

	t.Run("blank fields map to 400 before the service runs", func(t *testing.T) {
		svc := new(MockCustomerService)
		handler := NewCustomerHandler(svc)

		ctx := setupFormContext("POST", "/clients/new", "name=&national_id=x&phone=y")
		asIdentity(ctx, 1, "usman")
		handler.CreateCustomer(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate national id maps to 409", func(t *testing.T) {
		svc := new(MockCustomerService)
		handler := NewCustomerHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, services.ErrDuplicateNationalID)

		ctx := setupFormContext("POST", "/clients/new", "name=Ali&national_id=dup&phone=0300")
		asIdentity(ctx, 1, "usman")
		handler.CreateCustomer(ctx)

		assert.Equal(t, 409, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	t.Run("removes customer", func(t *testing.T) {
		svc := new(MockCustomerService)
		handler := NewCustomerHandler(svc)

		svc.On("Delete", mock.Anything, model.Identity{UserID: 1, Username: "usman"}, int64(3)).
			Return(nil)

		ctx := setupFormContext("GET", "/clients/remove/3", "")
		ctx.SetUserValue("id", "3")
		asIdentity(ctx, 1, "usman")
		handler.DeleteCustomer(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})

	t.Run("customer with accounts maps to 409", func(t *testing.T) {
		svc := new(MockCustomerService)
		handler := NewCustomerHandler(svc)

		svc.On("Delete", mock.Anything, mock.Anything, int64(3)).
			Return(services.ErrCustomerHasAccounts)

		ctx := setupFormContext("GET", "/clients/remove/3", "")
		ctx.SetUserValue("id", "3")
		asIdentity(ctx, 1, "usman")
		handler.DeleteCustomer(ctx)

		assert.Equal(t, 409, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})

	t.Run("non-numeric id maps to 400", func(t *testing.T) {
		svc := new(MockCustomerService)
		handler := NewCustomerHandler(svc)

		ctx := setupFormContext("GET", "/clients/remove/abc", "")
		ctx.SetUserValue("id", "abc")
		asIdentity(ctx, 1, "usman")
		handler.DeleteCustomer(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
		svc.AssertNotCalled(t, "Delete")
	})

	t.Run("foreign customer maps to 404", func(t *testing.T) {
		svc := new(MockCustomerService)
		handler := NewCustomerHandler(svc)

		svc.On("Delete", mock.Anything, mock.Anything, int64(9)).
			Return(services.ErrCustomerNotFound)

		ctx := setupFormContext("GET", "/clients/remove/9", "")
		ctx.SetUserValue("id", "9")
		asIdentity(ctx, 1, "usman")
		handler.DeleteCustomer(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	svc := new(MockCustomerService)
	handler := NewCustomerHandler(svc)

	items := []*model.Customer{
		{ID: 1, OwnerUserID: 1, Name: "Ali"},
		{ID: 2, OwnerUserID: 1, Name: "Sara"},
	}
	svc.On("List", mock.Anything, model.Identity{UserID: 1, Username: "usman"}).
		Return(items, nil)

	ctx := setupFormContext("GET", "/clients", "")
	asIdentity(ctx, 1, "usman")
	handler.ListCustomers(ctx)

	assert.Equal(t, 200, ctx.Response.StatusCode())

	var response customerListResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
	assert.Len(t, response.Items, 2)

	svc.AssertExpectations(t)
}
