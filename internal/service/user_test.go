package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/fixtures"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserListByRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	users, err := env.users.List(ctx, env.user(t, fixtures.Roofer1ID))
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	users, err = env.users.List(ctx, env.user(t, fixtures.OrgAdminID))
	require.NoError(t, err)
	assert.Len(t, users, 4)

	self, err := env.users.Get(ctx, env.user(t, fixtures.Roofer1ID), fixtures.Roofer1ID)
	require.NoError(t, err)
	assert.Equal(t, "peter@taklaget.dk", self.Email)

	_, err = env.users.Get(ctx, env.user(t, fixtures.Roofer1ID), fixtures.Roofer2ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserCreateRules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	orgAdmin := env.user(t, fixtures.OrgAdminID)

	_, err := env.users.Create(ctx, orgAdmin, model.UserInput{
		Email: "ny@taklaget.dk", Name: "Ny", Role: model.RoleSuperAdmin, OrgID: fixtures.OrgID,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.users.Create(ctx, orgAdmin, model.UserInput{
		Email: "ny@andet.dk", Name: "Ny", Role: model.RoleRoofer, OrgID: "andet",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.users.Create(ctx, env.user(t, fixtures.Roofer1ID), model.UserInput{
		Email: "ny@taklaget.dk", Name: "Ny", Role: model.RoleRoofer, OrgID: fixtures.OrgID,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.users.Create(ctx, orgAdmin, model.UserInput{
		Email: "ny@taklaget.dk", Name: "Ny", Role: model.RoleRoofer, OrgID: fixtures.OrgID, DepartmentID: "dept-x",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "departmentId")

	_, err = env.users.Create(ctx, env.user(t, fixtures.SuperAdminID), model.UserInput{
		Email: "ny@andet.dk", Name: "Ny", Role: model.RoleOrgAdmin, OrgID: "andet",
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Organization does not exist", verr.Fields["orgId"])

	u, err := env.users.Create(ctx, orgAdmin, model.UserInput{
		Email: "ny@taklaget.dk", Name: "Ny", Role: model.RoleRoofer, OrgID: fixtures.OrgID, DepartmentID: fixtures.DeptAarhus,
	})
	require.NoError(t, err)
	assert.Equal(t, fixtures.DeptAarhus, u.DepartmentID)

	_, err = env.users.Create(ctx, orgAdmin, model.UserInput{
		Email: "ny@taklaget.dk", Name: "Igen", Role: model.RoleRoofer, OrgID: fixtures.OrgID,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestOrganizationRules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	orgAdmin := env.user(t, fixtures.OrgAdminID)

	name := "Nyt navn"
	_, err := env.orgs.Update(ctx, orgAdmin, fixtures.OrgID, model.OrganizationPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.orgs.Update(ctx, orgAdmin, "andet", model.OrganizationPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)

	_, err = env.orgs.Get(ctx, orgAdmin, "andet")
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)

	org, err := env.orgs.Create(ctx, env.user(t, fixtures.SuperAdminID), model.OrganizationInput{
		Name: "Tagmestrene", Address: "Strøget 1", Phone: "+45 11 11 11 11", Email: "info@tagmestrene.dk",
	})
	require.NoError(t, err)

	orgs, err := env.orgs.List(ctx, env.user(t, fixtures.SuperAdminID))
	require.NoError(t, err)
	assert.Len(t, orgs, 2)

	orgs, err = env.orgs.List(ctx, orgAdmin)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, fixtures.OrgID, orgs[0].ID)

	_, err = env.depts.Create(ctx, orgAdmin, org.ID, model.DepartmentInput{Name: "Odense", Description: "Fyn"})
	assert.Error(t, err)

	d, err := env.depts.Create(ctx, orgAdmin, fixtures.OrgID, model.DepartmentInput{Name: "Odense", Description: "Fyn"})
	require.NoError(t, err)

	depts, err := env.depts.List(ctx, env.user(t, fixtures.Roofer1ID), fixtures.OrgID)
	require.NoError(t, err)
	assert.Len(t, depts, 3)

	_, err = env.depts.Update(ctx, env.user(t, fixtures.Roofer1ID), fixtures.OrgID, d.ID, model.DepartmentPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdminServiceRequiresSuperAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.admin.ListTokens(ctx, env.user(t, fixtures.OrgAdminID))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	super := env.user(t, fixtures.SuperAdminID)
	tok, err := env.admin.CreateToken(ctx, super, model.APITokenInput{Name: "CI"})
	require.NoError(t, err)
	assert.Equal(t, fixtures.SuperAdminID, tok.CreatedBy)
	assert.True(t, tok.IsActive)

	require.NoError(t, env.admin.RevokeToken(ctx, super, tok.ID))

	tokens, err := env.admin.ListTokens(ctx, super)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.False(t, tokens[0].IsActive)

	logs, err := env.admin.ListEmailLogs(ctx, super)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
