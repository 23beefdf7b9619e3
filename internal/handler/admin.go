package handler

import (
	"net/http"

	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

// AdminHandler serves API token management and the email activity log.
type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type APITokenResponse struct {
	BaseResponse
	Token *model.APIToken `json:"token"`
}

type APITokensResponse struct {
	BaseResponse
	Tokens []model.APIToken `json:"tokens"`
}

type EmailLogsResponse struct {
	BaseResponse
	Logs []model.EmailLog `json:"logs"`
}

func (h *AdminHandler) ListTokens(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.admin.ListTokens(r.Context(), actor(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, APITokensResponse{BaseResponse{Ok: true}, tokens})
}

func (h *AdminHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var input model.APITokenInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	tok, err := h.admin.CreateToken(r.Context(), actor(r), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, APITokenResponse{BaseResponse{Ok: true}, tok})
}

func (h *AdminHandler) RevokeToken(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.RevokeToken(r.Context(), actor(r), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *AdminHandler) ListEmailLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.admin.ListEmailLogs(r.Context(), actor(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, EmailLogsResponse{BaseResponse{Ok: true}, logs})
}
