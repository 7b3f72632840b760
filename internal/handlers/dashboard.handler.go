package handlers

import (
	"context"

	"github.com/fasthttp/router"

	xhttp "github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/http"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type DashboardService interface {
	Summary(ctx context.Context, identity model.Identity) (*model.DashboardSummary, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func RegisterDashboardRoutes(r *router.Router, h *DashboardHandler) {
	r.GET("/dashboard", h.GetDashboard)
}

func NewDashboardHandler(dashboardService DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: dashboardService,
	}
}

func (h *DashboardHandler) GetDashboard(ctx *xhttp.RequestCtx) {
	summary, err := h.svc.Summary(ctx, callerIdentity(ctx))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, summary)
}
