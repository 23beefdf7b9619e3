// internal/service/token.go
package service

import (
	"context"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/dangerclosesec/roofdesk/internal/validation"
)

// AdminService covers the super-admin-only surfaces: API tokens and the
// email activity log.
type AdminService struct {
	store    repository.Store
	validate *validation.Validator
}

func NewAdminService(store repository.Store, validate *validation.Validator) *AdminService {
	return &AdminService{store: store, validate: validate}
}

func (s *AdminService) ListTokens(ctx context.Context, actor *model.User) ([]model.APIToken, error) {
	if !isSuperAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	return s.store.ListAPITokens(ctx)
}

func (s *AdminService) CreateToken(ctx context.Context, actor *model.User, in model.APITokenInput) (*model.APIToken, error) {
	if !isSuperAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}
	return s.store.CreateAPIToken(ctx, in.Name, actor.UID)
}

// RevokeToken deactivates a token for good.
func (s *AdminService) RevokeToken(ctx context.Context, actor *model.User, id string) error {
	if !isSuperAdmin(actor) {
		return domain.ErrForbidden
	}
	return s.store.RevokeAPIToken(ctx, id)
}

func (s *AdminService) ListEmailLogs(ctx context.Context, actor *model.User) ([]model.EmailLog, error) {
	if !isSuperAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	return s.store.ListEmailLogs(ctx)
}
