package handlers

import (
	"context"
	"strconv"

	"github.com/fasthttp/router"

	xhttp "github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/http"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type LedgerService interface {
	Deposit(ctx context.Context, identity model.Identity, accountNo int64, amount int64) (*model.Transaction, error)
	Withdraw(ctx context.Context, identity model.Identity, accountNo int64, amount int64) (*model.Transaction, error)
	Transfer(ctx context.Context, identity model.Identity, fromAccountNo, toAccountNo int64, amount int64) (*model.Transaction, error)
	History(ctx context.Context, identity model.Identity, limit int) ([]*model.Transaction, error)
}

type TransactionHandler struct {
	svc LedgerService
}

func RegisterTransactionRoutes(r *router.Router, h *TransactionHandler) {
	r.GET("/transactions", h.ListTransactions)
	r.POST("/transactions/new", h.CreateTransaction)
}

func NewTransactionHandler(ledgerService LedgerService) *TransactionHandler {
	return &TransactionHandler{
		svc: ledgerService,
	}
}

type transactionListResponse struct {
	Items []*model.Transaction `json:"items"`
}

func (h *TransactionHandler) ListTransactions(ctx *xhttp.RequestCtx) {
	limit := 0
	if v := query(ctx, "limit"); v != "" {
		if n, e := strconv.Atoi(v); e == nil {
			limit = n
		}
	}

	items, err := h.svc.History(ctx, callerIdentity(ctx), limit)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, transactionListResponse{Items: items})
}

// CreateTransaction dispatches on the form's type field: Deposit and
// Withdraw act on a single account, Transfer moves between two.
func (h *TransactionHandler) CreateTransaction(ctx *xhttp.RequestCtx) {
	amount, err := parseAmount(form(ctx, "amount"))
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, err.Error())
		return
	}

	identity := callerIdentity(ctx)

	var txn *model.Transaction
	switch kind := form(ctx, "type"); kind {
	case model.KindDeposit:
		accountNo, e := formInt64(ctx, "account")
		if e != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid account number")
			return
		}
		txn, err = h.svc.Deposit(ctx, identity, accountNo, amount)
	case model.KindWithdraw:
		accountNo, e := formInt64(ctx, "account")
		if e != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid account number")
			return
		}
		txn, err = h.svc.Withdraw(ctx, identity, accountNo, amount)
	case model.KindTransfer:
		from, e := formInt64(ctx, "from_account")
		if e != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid source account number")
			return
		}
		to, e := formInt64(ctx, "to_account")
		if e != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid destination account number")
			return
		}
		txn, err = h.svc.Transfer(ctx, identity, from, to, amount)
	default:
		writeError(ctx, xhttp.StatusBadRequest, "unknown transaction type: "+kind)
		return
	}

	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, txn)
}

func formInt64(ctx *xhttp.RequestCtx, key string) (int64, error) {
	return strconv.ParseInt(form(ctx, key), 10, 64)
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}
