package handlers

import (
	"context"

	"github.com/fasthttp/router"

	xhttp "github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/http"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type AuditService interface {
	Trail(ctx context.Context, limit int) ([]*model.AuditEntry, error)
}

type AuditHandler struct {
	svc AuditService
}

func RegisterAuditRoutes(r *router.Router, h *AuditHandler) {
	r.GET("/trail", h.GetTrail)
}

func NewAuditHandler(auditService AuditService) *AuditHandler {
	return &AuditHandler{
		svc: auditService,
	}
}

type trailResponse struct {
	Items []*model.AuditEntry `json:"items"`
}

func (h *AuditHandler) GetTrail(ctx *xhttp.RequestCtx) {
	items, err := h.svc.Trail(ctx, 0)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, trailResponse{Items: items})
}
