// internal/auth/authenticator.go
package auth

import (
	"context"
	"time"

	"github.com/dangerclosesec/roofdesk/internal/model"
)

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string     `json:"token"`
	User      model.User `json:"user"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// Authenticator resolves bearer tokens to users. CurrentUser returns
// (nil, nil) for unknown, expired or logged-out tokens; callers decide
// whether that is an error.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

// UserSource is the slice of the store the authenticators read users from.
type UserSource interface {
	GetUser(ctx context.Context, uid string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}
