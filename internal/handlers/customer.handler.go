package handlers

import (
	"context"
	"strconv"

	"github.com/fasthttp/router"

	xhttp "github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/http"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type CustomerService interface {
	Create(ctx context.Context, identity model.Identity, p model.CustomerCreateRequest) (*model.Customer, error)
	Delete(ctx context.Context, identity model.Identity, id int64) error
	List(ctx context.Context, identity model.Identity) ([]*model.Customer, error)
}

type CustomerHandler struct {
	svc CustomerService
}

func RegisterCustomerRoutes(r *router.Router, h *CustomerHandler) {
	r.GET("/clients", h.ListCustomers)
	r.POST("/clients/new", h.CreateCustomer)
	r.GET("/clients/remove/{id}", h.DeleteCustomer)
}

func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{
		svc: customerService,
	}
}

type customerListResponse struct {
	Items []*model.Customer `json:"items"`
}

func (h *CustomerHandler) ListCustomers(ctx *xhttp.RequestCtx) {
	items, err := h.svc.List(ctx, callerIdentity(ctx))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, customerListResponse{Items: items})
}

func (h *CustomerHandler) CreateCustomer(ctx *xhttp.RequestCtx) {
	p := model.CustomerCreateRequest{
		Name:       form(ctx, "name"),
		NationalID: form(ctx, "national_id"),
		Phone:      form(ctx, "phone"),
	}
	if err := p.Validate(); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.svc.Create(ctx, callerIdentity(ctx), p)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, customer)
}

func (h *CustomerHandler) DeleteCustomer(ctx *xhttp.RequestCtx) {
	id, err := strconv.ParseInt(param(ctx, "id"), 10, 64)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid customer id")
		return
	}

	if err := h.svc.Delete(ctx, callerIdentity(ctx), id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, map[string]string{"status": "removed"})
}

func param(ctx *xhttp.RequestCtx, name string) string {
	if v, ok := ctx.UserValue(name).(string); ok {
		return v
	}
	return ""
}
