// internal/auth/store.go
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/google/uuid"
)

// StoreAuthenticator signs users in against the persistent store. Tokens
// are signed JWTs; their session id must still be present in the session
// store for the token to resolve.
type StoreAuthenticator struct {
	users    UserSource
	tokens   *TokenManager
	sessions SessionStore
}

var _ Authenticator = (*StoreAuthenticator)(nil)

func NewStoreAuthenticator(users UserSource, tokens *TokenManager, sessions SessionStore) *StoreAuthenticator {
	return &StoreAuthenticator{users: users, tokens: tokens, sessions: sessions}
}

// Login matches the email exactly. The password is not checked.
func (a *StoreAuthenticator) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := a.tokens.Generate(u.UID, u.Email, sessionID)
	if err != nil {
		return nil, err
	}

	if err := a.sessions.Save(ctx, sessionID, u.UID, a.tokens.ExpiryPeriod()); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &Session{Token: token, User: *u, ExpiresAt: expiresAt.UTC()}, nil
}

// Logout forgets the session behind token. Tokens that no longer validate
// are already unusable and are ignored.
func (a *StoreAuthenticator) Logout(ctx context.Context, token string) error {
	claims, err := a.tokens.Validate(token)
	if err != nil {
		return nil
	}
	return a.sessions.Delete(ctx, claims.ID)
}

// CurrentUser re-reads the user on every call so role changes apply at once.
func (a *StoreAuthenticator) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := a.tokens.Validate(token)
	if err != nil {
		slog.DebugContext(ctx, "Rejected session token", "error", err)
		return nil, nil
	}

	uid, err := a.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if uid == "" || uid != claims.UserID {
		return nil, nil
	}

	return a.users.GetUser(ctx, uid)
}
