// internal/service/auth.go
package service

import (
	"context"

	"github.com/dangerclosesec/roofdesk/internal/auth"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/validation"
)

type AuthService struct {
	authenticator auth.Authenticator
	validate      *validation.Validator
}

func NewAuthService(authenticator auth.Authenticator, validate *validation.Validator) *AuthService {
	return &AuthService{authenticator: authenticator, validate: validate}
}

// Login validates the credentials' shape and signs the user in by email.
func (s *AuthService) Login(ctx context.Context, in model.LoginInput) (*auth.Session, error) {
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}
	return s.authenticator.Login(ctx, in.Email, in.Password)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.authenticator.Logout(ctx, token)
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	return s.authenticator.CurrentUser(ctx, token)
}
