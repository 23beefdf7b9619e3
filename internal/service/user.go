// internal/service/user.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/dangerclosesec/roofdesk/internal/validation"
)

type UserService struct {
	store    repository.Store
	validate *validation.Validator
}

func NewUserService(store repository.Store, validate *validation.Validator) *UserService {
	return &UserService{store: store, validate: validate}
}

// List returns the users visible to actor. Roofers see none.
func (s *UserService) List(ctx context.Context, actor *model.User) ([]model.User, error) {
	filter, ok := UserScope(actor)
	if !ok {
		return []model.User{}, nil
	}
	return s.store.ListUsers(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, actor *model.User, uid string) (*model.User, error) {
	u, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if u == nil || !canSeeUser(actor, u) {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, actor *model.User, in model.UserInput) (*model.User, error) {
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}
	if err := s.authorize(actor, in.OrgID, in.Role); err != nil {
		return nil, err
	}
	if err := s.checkPlacement(ctx, in.OrgID, in.DepartmentID); err != nil {
		return nil, err
	}
	return s.store.CreateUser(ctx, in)
}

func (s *UserService) Update(ctx context.Context, actor *model.User, uid string, patch model.UserPatch) (*model.User, error) {
	if err := s.validate.Check(&patch); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, actor, uid)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, current.OrgID, current.Role); err != nil {
		return nil, err
	}

	next := *current
	next.Apply(patch)
	if err := s.authorize(actor, next.OrgID, next.Role); err != nil {
		return nil, err
	}
	if next.OrgID != current.OrgID || next.DepartmentID != current.DepartmentID {
		if err := s.checkPlacement(ctx, next.OrgID, next.DepartmentID); err != nil {
			return nil, err
		}
	}

	return s.store.UpdateUser(ctx, uid, patch)
}

// authorize checks that actor may manage a user with the given organization
// and role. Org admins stay inside their organization and cannot hand out
// super admin rights.
func (s *UserService) authorize(actor *model.User, orgID string, role model.Role) error {
	switch actor.Role {
	case model.RoleSuperAdmin:
		return nil
	case model.RoleOrgAdmin:
		if orgID != actor.OrgID || role == model.RoleSuperAdmin {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}

func (s *UserService) checkPlacement(ctx context.Context, orgID, departmentID string) error {
	org, err := s.store.GetOrganization(ctx, orgID)
	if err != nil {
		return fmt.Errorf("finding organization: %w", err)
	}
	if org == nil {
		return domain.NewValidationError(map[string]string{"orgId": "Organization does not exist"})
	}

	if departmentID == "" {
		return nil
	}
	d, err := s.store.GetDepartment(ctx, orgID, departmentID)
	if err != nil {
		return fmt.Errorf("finding department: %w", err)
	}
	if d == nil {
		return domain.NewValidationError(map[string]string{"departmentId": "Department does not belong to the organization"})
	}
	return nil
}
