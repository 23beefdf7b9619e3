package handler

import (
	"net/http"

	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

type QuoteHandler struct {
	quotes *service.QuoteService
}

func NewQuoteHandler(quotes *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

type QuoteResponse struct {
	BaseResponse
	Quote *model.Quote `json:"quote"`
}

type QuotesResponse struct {
	BaseResponse
	Quotes []model.Quote `json:"quotes"`
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quotes.List(r.Context(), actor(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, QuotesResponse{BaseResponse{Ok: true}, quotes})
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.Get(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, QuoteResponse{BaseResponse{Ok: true}, q})
}

// Create prices the line items server side; totals sent by the client are
// not read.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.QuoteInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	q, err := h.quotes.Create(r.Context(), actor(r), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, QuoteResponse{BaseResponse{Ok: true}, q})
}

func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.QuotePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	q, err := h.quotes.Update(r.Context(), actor(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, QuoteResponse{BaseResponse{Ok: true}, q})
}
