package model

import (
	"strings"
	"time"
)

// Department groups roofers of one organization by region or team.
type Department struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"orgId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DepartmentInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (in *DepartmentInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

func NewDepartment(id, orgID string, in DepartmentInput, now time.Time) Department {
	return Department{
		ID:          id,
		OrgID:       orgID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type DepartmentPatch struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,required"`
	Description *string `json:"description,omitempty" validate:"omitnil,required"`
}

func (p *DepartmentPatch) Normalize() {
	trimPtr(p.Name)
	trimPtr(p.Description)
}

func (d *Department) Apply(p DepartmentPatch) {
	setIf(&d.Name, p.Name)
	setIf(&d.Description, p.Description)
}
