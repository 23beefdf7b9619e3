package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// Error codes returned by the callable email functions.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeNotFound        = "not-found"
	CodeInvalidArgument = "invalid-argument"
	CodeInternal        = "internal"
)

// FunctionHandler exposes the two email functions. Unlike the REST routes
// their failures always carry an error_code.
type FunctionHandler struct {
	mail *service.MailService
}

func NewFunctionHandler(mail *service.MailService) *FunctionHandler {
	return &FunctionHandler{mail: mail}
}

func (h *FunctionHandler) SendReportEmail(w http.ResponseWriter, r *http.Request) {
	var input service.SendReportEmailInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithCode(w, http.StatusBadRequest, "Invalid request payload", CodeInvalidArgument)
		return
	}

	res, err := h.mail.SendReportEmail(r.Context(), actor(r), input)
	if err != nil {
		h.fail(w, r, err, "Report not found")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (h *FunctionHandler) SendQuoteEmail(w http.ResponseWriter, r *http.Request) {
	var input service.SendQuoteEmailInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithCode(w, http.StatusBadRequest, "Invalid request payload", CodeInvalidArgument)
		return
	}

	res, err := h.mail.SendQuoteEmail(r.Context(), actor(r), input)
	if err != nil {
		h.fail(w, r, err, "Quote not found")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (h *FunctionHandler) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		details := validationDetails(verr)
		code := CodeInvalidArgument
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: &details,
			Fields:  verr.Fields,
			Code:    &code,
		})
	case errors.Is(err, domain.ErrNotFound):
		respondWithCode(w, http.StatusNotFound, notFound, CodeNotFound)
	case errors.Is(err, domain.ErrUnauthenticated):
		respondWithCode(w, http.StatusUnauthorized, "Authentication required", CodeUnauthenticated)
	case errors.Is(err, domain.ErrDeliveryFailed):
		slog.ErrorContext(r.Context(), "Email delivery failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithCode(w, http.StatusInternalServerError, "Failed to send email", CodeInternal)
	default:
		slog.ErrorContext(r.Context(), "Email function failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithCode(w, http.StatusInternalServerError, "Internal server error", CodeInternal)
	}
}

func respondWithCode(w http.ResponseWriter, status int, message, code string) {
	respondWithJSON(w, status, ErrorResponse{Error: message, Code: &code})
}
