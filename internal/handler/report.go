package handler

import (
	"net/http"

	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type ReportResponse struct {
	BaseResponse
	Report *model.InspectionReport `json:"report"`
}

type ReportsResponse struct {
	BaseResponse
	Reports []model.InspectionReport `json:"reports"`
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.List(r.Context(), actor(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ReportsResponse{BaseResponse{Ok: true}, reports})
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Get(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ReportResponse{BaseResponse{Ok: true}, report})
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ReportInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	report, err := h.reports.Create(r.Context(), actor(r), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, ReportResponse{BaseResponse{Ok: true}, report})
}

func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ReportPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	report, err := h.reports.Update(r.Context(), actor(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ReportResponse{BaseResponse{Ok: true}, report})
}
