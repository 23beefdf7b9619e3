// internal/handler/auth.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/roofdesk/internal/middleware"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginResponse struct {
	BaseResponse
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *model.User `json:"user"`
}

type UserResponse struct {
	BaseResponse
	User *model.User `json:"user"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input model.LoginInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session, err := h.authService.Login(r.Context(), input)
	if err != nil {
		slog.InfoContext(r.Context(), "Login rejected", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		Token:        session.Token,
		ExpiresAt:    session.ExpiresAt,
		User:         &session.User,
	})
}

// LogoutHandler ends the session named by the bearer token. Logging out
// without a token, or with one that is already gone, still succeeds.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.BearerToken(r); ok {
		if err := h.authService.Logout(r.Context(), token); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, UserResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         actor(r),
	})
}
