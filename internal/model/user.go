// internal/model/user.go
package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleOrgAdmin   Role = "ORG_ADMIN"
	RoleRoofer     Role = "ROOFER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleOrgAdmin, RoleRoofer:
		return true
	}
	return false
}

// User is a member of exactly one organization. DepartmentID is only kept
// for roofers.
type User struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	OrgID        string    `json:"orgId"`
	DepartmentID string    `json:"departmentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Author returns the scope under which u creates reports and quotes.
func (u *User) Author() Author {
	return Author{OrgID: u.OrgID, DepartmentID: u.DepartmentID, RooferID: u.UID}
}

type UserInput struct {
	Email        string `json:"email" validate:"required,email"`
	Name         string `json:"name" validate:"required"`
	Role         Role   `json:"role" validate:"required,oneof=SUPER_ADMIN ORG_ADMIN ROOFER"`
	OrgID        string `json:"orgId" validate:"required"`
	DepartmentID string `json:"departmentId,omitempty"`
}

func (in *UserInput) Normalize() {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.OrgID = strings.TrimSpace(in.OrgID)
	in.DepartmentID = strings.TrimSpace(in.DepartmentID)
	if in.Role != RoleRoofer {
		in.DepartmentID = ""
	}
}

func NewUser(uid string, in UserInput, now time.Time) User {
	u := User{
		UID:          uid,
		Email:        in.Email,
		Name:         in.Name,
		Role:         in.Role,
		OrgID:        in.OrgID,
		DepartmentID: in.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if u.Role != RoleRoofer {
		u.DepartmentID = ""
	}
	return u
}

type UserPatch struct {
	Email        *string `json:"email,omitempty" validate:"omitnil,email"`
	Name         *string `json:"name,omitempty" validate:"omitnil,required"`
	Role         *Role   `json:"role,omitempty" validate:"omitnil,oneof=SUPER_ADMIN ORG_ADMIN ROOFER"`
	OrgID        *string `json:"orgId,omitempty" validate:"omitnil,required"`
	DepartmentID *string `json:"departmentId,omitempty"`
}

func (p *UserPatch) Normalize() {
	trimPtr(p.Email)
	trimPtr(p.Name)
	trimPtr(p.OrgID)
	trimPtr(p.DepartmentID)
}

func (u *User) Apply(p UserPatch) {
	setIf(&u.Email, p.Email)
	setIf(&u.Name, p.Name)
	setIf(&u.Role, p.Role)
	setIf(&u.OrgID, p.OrgID)
	setIf(&u.DepartmentID, p.DepartmentID)
	if u.Role != RoleRoofer {
		u.DepartmentID = ""
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (in *LoginInput) Normalize() {
	in.Email = strings.TrimSpace(in.Email)
}
