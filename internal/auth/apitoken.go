// internal/auth/apitoken.go
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/roofdesk/internal/model"
)

// APITokenSource is the slice of the store used to resolve API tokens.
type APITokenSource interface {
	GetAPITokenByValue(ctx context.Context, token string) (*model.APIToken, error)
	TouchAPIToken(ctx context.Context, id string) error
}

// TokenAuthenticator accepts long-lived "tk_" API tokens next to the
// session tokens of the wrapped Authenticator. An active API token acts as
// the user who created it.
type TokenAuthenticator struct {
	Authenticator
	tokens APITokenSource
	users  UserSource
}

var _ Authenticator = (*TokenAuthenticator)(nil)

func WithAPITokens(inner Authenticator, tokens APITokenSource, users UserSource) *TokenAuthenticator {
	return &TokenAuthenticator{Authenticator: inner, tokens: tokens, users: users}
}

func (a *TokenAuthenticator) Logout(ctx context.Context, token string) error {
	if model.IsAPITokenValue(token) {
		return nil
	}
	return a.Authenticator.Logout(ctx, token)
}

func (a *TokenAuthenticator) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if !model.IsAPITokenValue(token) {
		return a.Authenticator.CurrentUser(ctx, token)
	}

	t, err := a.tokens.GetAPITokenByValue(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("finding api token: %w", err)
	}
	if t == nil || !t.IsActive {
		return nil, nil
	}

	if err := a.tokens.TouchAPIToken(ctx, t.ID); err != nil {
		slog.WarnContext(ctx, "Failed to record api token use", "error", err, "tokenID", t.ID)
	}

	return a.users.GetUser(ctx, t.CreatedBy)
}
