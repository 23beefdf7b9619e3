// internal/service/organization.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/dangerclosesec/roofdesk/internal/validation"
)

type OrganizationService struct {
	store    repository.Store
	validate *validation.Validator
}

func NewOrganizationService(store repository.Store, validate *validation.Validator) *OrganizationService {
	return &OrganizationService{store: store, validate: validate}
}

// List returns every organization to super admins and only the caller's
// own organization to everyone else.
func (s *OrganizationService) List(ctx context.Context, actor *model.User) ([]model.Organization, error) {
	if isSuperAdmin(actor) {
		return s.store.ListOrganizations(ctx)
	}

	org, err := s.store.GetOrganization(ctx, actor.OrgID)
	if err != nil {
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	if org == nil {
		return []model.Organization{}, nil
	}
	return []model.Organization{*org}, nil
}

func (s *OrganizationService) Get(ctx context.Context, actor *model.User, id string) (*model.Organization, error) {
	if !canSeeOrganization(actor, id) {
		return nil, domain.ErrOrganizationNotFound
	}

	org, err := s.store.GetOrganization(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	if org == nil {
		return nil, domain.ErrOrganizationNotFound
	}
	return org, nil
}

func (s *OrganizationService) Create(ctx context.Context, actor *model.User, in model.OrganizationInput) (*model.Organization, error) {
	if !isSuperAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}
	return s.store.CreateOrganization(ctx, in)
}

func (s *OrganizationService) Update(ctx context.Context, actor *model.User, id string, patch model.OrganizationPatch) (*model.Organization, error) {
	if !isSuperAdmin(actor) {
		if canSeeOrganization(actor, id) {
			return nil, domain.ErrForbidden
		}
		return nil, domain.ErrOrganizationNotFound
	}
	if err := s.validate.Check(&patch); err != nil {
		return nil, err
	}
	return s.store.UpdateOrganization(ctx, id, patch)
}

type DepartmentService struct {
	store    repository.Store
	validate *validation.Validator
}

func NewDepartmentService(store repository.Store, validate *validation.Validator) *DepartmentService {
	return &DepartmentService{store: store, validate: validate}
}

func (s *DepartmentService) List(ctx context.Context, actor *model.User, orgID string) ([]model.Department, error) {
	if !canSeeOrganization(actor, orgID) {
		return nil, domain.ErrOrganizationNotFound
	}
	return s.store.ListDepartments(ctx, orgID)
}

func (s *DepartmentService) Get(ctx context.Context, actor *model.User, orgID, id string) (*model.Department, error) {
	if !canSeeOrganization(actor, orgID) {
		return nil, domain.ErrDepartmentNotFound
	}

	d, err := s.store.GetDepartment(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("finding department: %w", err)
	}
	if d == nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return d, nil
}

func (s *DepartmentService) Create(ctx context.Context, actor *model.User, orgID string, in model.DepartmentInput) (*model.Department, error) {
	if err := s.authorize(actor, orgID); err != nil {
		return nil, err
	}
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}
	return s.store.CreateDepartment(ctx, orgID, in)
}

func (s *DepartmentService) Update(ctx context.Context, actor *model.User, orgID, id string, patch model.DepartmentPatch) (*model.Department, error) {
	if err := s.authorize(actor, orgID); err != nil {
		return nil, err
	}
	if err := s.validate.Check(&patch); err != nil {
		return nil, err
	}

	// the department must live under the organization named in the path
	d, err := s.store.GetDepartment(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("finding department: %w", err)
	}
	if d == nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return s.store.UpdateDepartment(ctx, id, patch)
}

func (s *DepartmentService) authorize(actor *model.User, orgID string) error {
	if canManageOrganization(actor, orgID) {
		return nil
	}
	if canSeeOrganization(actor, orgID) {
		return domain.ErrForbidden
	}
	return domain.ErrOrganizationNotFound
}
