// internal/repository/store.go
package repository

import (
	"context"

	"github.com/dangerclosesec/roofdesk/internal/model"
)

// Store is the single read/write surface over every entity. Reads by id
// return (nil, nil) on a miss; updates of a missing id fail with the
// matching domain not-found error. Writers are not coordinated and the last
// write wins.
type Store interface {
	ListOrganizations(ctx context.Context) ([]model.Organization, error)
	GetOrganization(ctx context.Context, id string) (*model.Organization, error)
	CreateOrganization(ctx context.Context, in model.OrganizationInput) (*model.Organization, error)
	UpdateOrganization(ctx context.Context, id string, patch model.OrganizationPatch) (*model.Organization, error)

	// ListDepartments returns every department when orgID is empty.
	ListDepartments(ctx context.Context, orgID string) ([]model.Department, error)
	// GetDepartment returns nil when the department belongs to another organization.
	GetDepartment(ctx context.Context, orgID, id string) (*model.Department, error)
	CreateDepartment(ctx context.Context, orgID string, in model.DepartmentInput) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id string, patch model.DepartmentPatch) (*model.Department, error)

	ListUsers(ctx context.Context, filter UserFilter) ([]model.User, error)
	GetUser(ctx context.Context, uid string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, in model.UserInput) (*model.User, error)
	UpdateUser(ctx context.Context, uid string, patch model.UserPatch) (*model.User, error)

	ListReports(ctx context.Context, filter ScopeFilter) ([]model.InspectionReport, error)
	GetReport(ctx context.Context, id string) (*model.InspectionReport, error)
	CreateReport(ctx context.Context, author model.Author, in model.ReportInput) (*model.InspectionReport, error)
	UpdateReport(ctx context.Context, id string, patch model.ReportPatch) (*model.InspectionReport, error)

	ListQuotes(ctx context.Context, filter ScopeFilter) ([]model.Quote, error)
	GetQuote(ctx context.Context, id string) (*model.Quote, error)
	CreateQuote(ctx context.Context, author model.Author, in model.QuoteInput) (*model.Quote, error)
	UpdateQuote(ctx context.Context, id string, patch model.QuotePatch) (*model.Quote, error)

	ListAPITokens(ctx context.Context) ([]model.APIToken, error)
	GetAPITokenByValue(ctx context.Context, token string) (*model.APIToken, error)
	CreateAPIToken(ctx context.Context, name, createdBy string) (*model.APIToken, error)
	RevokeAPIToken(ctx context.Context, id string) error
	TouchAPIToken(ctx context.Context, id string) error

	CreateEmailLog(ctx context.Context, entry model.EmailLog) (*model.EmailLog, error)
	ListEmailLogs(ctx context.Context) ([]model.EmailLog, error)
}

// Seeder is implemented by stores that can be loaded from a dataset.
type Seeder interface {
	HasData(ctx context.Context) (bool, error)
	Import(ctx context.Context, ds model.Dataset) error
}

// ScopeFilter narrows report and quote listings. Set fields are ANDed; empty
// fields match everything.
type ScopeFilter struct {
	OrgID        string
	DepartmentID string
	RooferID     string
}

func (f ScopeFilter) Match(a model.Author) bool {
	return (f.OrgID == "" || f.OrgID == a.OrgID) &&
		(f.DepartmentID == "" || f.DepartmentID == a.DepartmentID) &&
		(f.RooferID == "" || f.RooferID == a.RooferID)
}

type UserFilter struct {
	OrgID        string
	DepartmentID string
}

func (f UserFilter) Match(u model.User) bool {
	return (f.OrgID == "" || f.OrgID == u.OrgID) &&
		(f.DepartmentID == "" || f.DepartmentID == u.DepartmentID)
}
