// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/roofdesk/internal/auth"
	"github.com/dangerclosesec/roofdesk/internal/model"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type contextKey string

const (
	userKey  contextKey = "roofdesk_user"
	tokenKey contextKey = "roofdesk_token"
)

const codeUnauthenticated = "unauthenticated"

// Authenticate resolves the bearer token through authenticator and stores
// the caller in the request context. Requests without a valid session are
// rejected with 401.
func Authenticate(authenticator auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Authentication required", codeUnauthenticated)
				return
			}

			user, err := authenticator.CurrentUser(r.Context(), token)
			if err != nil {
				slog.ErrorContext(r.Context(), "Failed to resolve session", "error", err, "requestID", chmw.GetReqID(r.Context()))
				respondWithError(w, http.StatusInternalServerError, "Internal server error", "internal")
				return
			}
			if user == nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid or expired session", codeUnauthenticated)
				return
			}

			ctx := WithUser(r.Context(), user, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// WithUser returns a copy of ctx carrying the authenticated caller.
func WithUser(ctx context.Context, user *model.User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, tokenKey, token)
}

// UserFromContext returns the caller stored by Authenticate, or nil.
func UserFromContext(ctx context.Context) *model.User {
	u, _ := ctx.Value(userKey).(*model.User)
	return u
}

func TokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

type errorResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
	Code  string `json:"error_code,omitempty"`
}

func respondWithError(w http.ResponseWriter, code int, message, errorCode string) {
	respondWithJSON(w, code, errorResponse{Error: message, Code: errorCode})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
