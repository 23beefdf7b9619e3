// internal/service/visibility.go
package service

import (
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/repository"
)

// WorkScope returns the report and quote filter for u. Super admins get an
// empty filter; org admins are pinned to their organization; roofers to
// their organization, department and own uid.
func WorkScope(u *model.User) repository.ScopeFilter {
	switch u.Role {
	case model.RoleSuperAdmin:
		return repository.ScopeFilter{}
	case model.RoleOrgAdmin:
		return repository.ScopeFilter{OrgID: u.OrgID}
	default:
		return repository.ScopeFilter{OrgID: u.OrgID, DepartmentID: u.DepartmentID, RooferID: u.UID}
	}
}

// CanSeeWork reports whether a report or quote written by author is visible to u.
func CanSeeWork(u *model.User, author model.Author) bool {
	return WorkScope(u).Match(author)
}

// UserScope returns the user listing filter for u. Roofers may not list
// users at all.
func UserScope(u *model.User) (repository.UserFilter, bool) {
	switch u.Role {
	case model.RoleSuperAdmin:
		return repository.UserFilter{}, true
	case model.RoleOrgAdmin:
		return repository.UserFilter{OrgID: u.OrgID}, true
	default:
		return repository.UserFilter{}, false
	}
}

func canSeeUser(u *model.User, target *model.User) bool {
	if u.UID == target.UID {
		return true
	}
	filter, ok := UserScope(u)
	return ok && filter.Match(*target)
}

func canSeeOrganization(u *model.User, orgID string) bool {
	return u.Role == model.RoleSuperAdmin || u.OrgID == orgID
}

func canManageOrganization(u *model.User, orgID string) bool {
	return u.Role == model.RoleSuperAdmin || (u.Role == model.RoleOrgAdmin && u.OrgID == orgID)
}

func isSuperAdmin(u *model.User) bool {
	return u.Role == model.RoleSuperAdmin
}
