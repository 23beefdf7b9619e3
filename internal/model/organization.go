// internal/model/organization.go
package model

import (
	"strings"
	"time"
)

// Organization is the top-level tenant. It owns departments and users.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrganizationInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

func (in *OrganizationInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
}

func NewOrganization(id string, in OrganizationInput, now time.Time) Organization {
	return Organization{
		ID:        id,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type OrganizationPatch struct {
	Name    *string `json:"name,omitempty" validate:"omitnil,required"`
	Address *string `json:"address,omitempty" validate:"omitnil,required"`
	Phone   *string `json:"phone,omitempty" validate:"omitnil,required"`
	Email   *string `json:"email,omitempty" validate:"omitnil,email"`
}

func (p *OrganizationPatch) Normalize() {
	trimPtr(p.Name)
	trimPtr(p.Address)
	trimPtr(p.Phone)
	trimPtr(p.Email)
}

// Apply merges the set fields of p onto o. Timestamps are left to the caller.
func (o *Organization) Apply(p OrganizationPatch) {
	setIf(&o.Name, p.Name)
	setIf(&o.Address, p.Address)
	setIf(&o.Phone, p.Phone)
	setIf(&o.Email, p.Email)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
