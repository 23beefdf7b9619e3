// internal/auth/fixture.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/google/uuid"
)

// FixtureAuthenticator signs users in from a fixed user list. Sessions are
// opaque random tokens and resolve to the user as it was when the
// authenticator was built.
type FixtureAuthenticator struct {
	users    []model.User
	sessions SessionStore
	ttl      time.Duration
	now      func() time.Time
}

var _ Authenticator = (*FixtureAuthenticator)(nil)

func NewFixtureAuthenticator(users []model.User, sessions SessionStore, ttl time.Duration) *FixtureAuthenticator {
	return &FixtureAuthenticator{
		users:    append([]model.User{}, users...),
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login matches the email exactly. The password is not checked.
func (a *FixtureAuthenticator) Login(ctx context.Context, email, password string) (*Session, error) {
	u := a.byEmail(email)
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := a.sessions.Save(ctx, token, u.UID, a.ttl); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &Session{Token: token, User: *u, ExpiresAt: a.now().Add(a.ttl).UTC()}, nil
}

func (a *FixtureAuthenticator) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.sessions.Delete(ctx, token)
}

func (a *FixtureAuthenticator) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}
	uid, err := a.sessions.Lookup(ctx, token)
	if err != nil || uid == "" {
		return nil, err
	}
	return a.byUID(uid), nil
}

func (a *FixtureAuthenticator) byEmail(email string) *model.User {
	for _, u := range a.users {
		if u.Email == email {
			return &u
		}
	}
	return nil
}

func (a *FixtureAuthenticator) byUID(uid string) *model.User {
	for _, u := range a.users {
		if u.UID == uid {
			return &u
		}
	}
	return nil
}
