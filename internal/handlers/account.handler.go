package handlers

import (
	"context"
	"strconv"

	"github.com/fasthttp/router"

	xhttp "github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/http"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type AccountService interface {
	Create(ctx context.Context, identity model.Identity, p model.AccountCreateRequest) (*model.Account, error)
	List(ctx context.Context, identity model.Identity) ([]*model.Account, error)
}

type AccountHandler struct {
	svc AccountService
}

func RegisterAccountRoutes(r *router.Router, h *AccountHandler) {
	r.GET("/bank", h.ListAccounts)
	r.POST("/bank/new", h.CreateAccount)
}

func NewAccountHandler(accountService AccountService) *AccountHandler {
	return &AccountHandler{
		svc: accountService,
	}
}

type accountListResponse struct {
	Items []*model.Account `json:"items"`
}

func (h *AccountHandler) ListAccounts(ctx *xhttp.RequestCtx) {
	items, err := h.svc.List(ctx, callerIdentity(ctx))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, accountListResponse{Items: items})
}

func (h *AccountHandler) CreateAccount(ctx *xhttp.RequestCtx) {
	customerID, err := strconv.ParseInt(form(ctx, "customer_id"), 10, 64)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid customer id")
		return
	}

	// An empty balance field means the account opens empty.
	initial := int64(0)
	if v := form(ctx, "balance"); v != "" {
		initial, err = parseAmount(v)
		if err != nil {
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
	}

	p := model.AccountCreateRequest{
		CustomerID:     customerID,
		Type:           form(ctx, "type"),
		Email:          form(ctx, "email"),
		InitialBalance: initial,
	}
	if err := p.Validate(); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, err.Error())
		return
	}

	account, err := h.svc.Create(ctx, callerIdentity(ctx), p)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, account)
}
