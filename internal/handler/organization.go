package handler

import (
	"net/http"

	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler struct {
	orgs  *service.OrganizationService
	depts *service.DepartmentService
}

func NewOrganizationHandler(orgs *service.OrganizationService, depts *service.DepartmentService) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs, depts: depts}
}

type OrganizationResponse struct {
	BaseResponse
	Organization *model.Organization `json:"organization"`
}

type OrganizationsResponse struct {
	BaseResponse
	Organizations []model.Organization `json:"organizations"`
}

type DepartmentResponse struct {
	BaseResponse
	Department *model.Department `json:"department"`
}

type DepartmentsResponse struct {
	BaseResponse
	Departments []model.Department `json:"departments"`
}

func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgs.List(r.Context(), actor(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, OrganizationsResponse{BaseResponse{Ok: true}, orgs})
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgs.Get(r.Context(), actor(r), chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, OrganizationResponse{BaseResponse{Ok: true}, org})
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.OrganizationInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := h.orgs.Create(r.Context(), actor(r), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, OrganizationResponse{BaseResponse{Ok: true}, org})
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.OrganizationPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := h.orgs.Update(r.Context(), actor(r), chi.URLParam(r, "orgID"), patch)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, OrganizationResponse{BaseResponse{Ok: true}, org})
}

func (h *OrganizationHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.depts.List(r.Context(), actor(r), chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, DepartmentsResponse{BaseResponse{Ok: true}, depts})
}

func (h *OrganizationHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	d, err := h.depts.Get(r.Context(), actor(r), chi.URLParam(r, "orgID"), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, DepartmentResponse{BaseResponse{Ok: true}, d})
}

func (h *OrganizationHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var input model.DepartmentInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	d, err := h.depts.Create(r.Context(), actor(r), chi.URLParam(r, "orgID"), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, DepartmentResponse{BaseResponse{Ok: true}, d})
}

func (h *OrganizationHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var patch model.DepartmentPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	d, err := h.depts.Update(r.Context(), actor(r), chi.URLParam(r, "orgID"), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, DepartmentResponse{BaseResponse{Ok: true}, d})
}
