// internal/service/report.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/dangerclosesec/roofdesk/internal/validation"
)

type ReportService struct {
	store    repository.Store
	validate *validation.Validator
}

func NewReportService(store repository.Store, validate *validation.Validator) *ReportService {
	return &ReportService{store: store, validate: validate}
}

// List returns the reports visible to actor. For super admins this is the
// concatenation of every organization's reports in organization order.
func (s *ReportService) List(ctx context.Context, actor *model.User) ([]model.InspectionReport, error) {
	if !isSuperAdmin(actor) {
		return s.store.ListReports(ctx, WorkScope(actor))
	}

	orgs, err := s.store.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	out := []model.InspectionReport{}
	for _, org := range orgs {
		reports, err := s.store.ListReports(ctx, repository.ScopeFilter{OrgID: org.ID})
		if err != nil {
			return nil, fmt.Errorf("listing reports of %s: %w", org.ID, err)
		}
		out = append(out, reports...)
	}
	return out, nil
}

func (s *ReportService) Get(ctx context.Context, actor *model.User, id string) (*model.InspectionReport, error) {
	r, err := s.store.GetReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding report: %w", err)
	}
	if r == nil || !CanSeeWork(actor, r.Author()) {
		return nil, domain.ErrReportNotFound
	}
	return r, nil
}

// Create files a new draft report under the caller's own organization,
// department and uid.
func (s *ReportService) Create(ctx context.Context, actor *model.User, in model.ReportInput) (*model.InspectionReport, error) {
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}
	return s.store.CreateReport(ctx, actor.Author(), in)
}

func (s *ReportService) Update(ctx context.Context, actor *model.User, id string, patch model.ReportPatch) (*model.InspectionReport, error) {
	if err := s.validate.Check(&patch); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.store.UpdateReport(ctx, id, patch)
}
