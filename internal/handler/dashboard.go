package handler

import (
	"net/http"

	"github.com/dangerclosesec/roofdesk/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

type DashboardResponse struct {
	BaseResponse
	*service.Dashboard
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard.Summary(r.Context(), actor(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, DashboardResponse{BaseResponse: BaseResponse{Ok: true}, Dashboard: d})
}
