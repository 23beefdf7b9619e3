// internal/service/dashboard.go
package service

import (
	"context"

	"github.com/dangerclosesec/roofdesk/internal/model"
)

const dashboardRecent = 5

type DashboardCounts struct {
	Reports       int `json:"reports"`
	Quotes        int `json:"quotes"`
	Users         int `json:"users"`
	Organizations int `json:"organizations"`
}

type Dashboard struct {
	Counts        DashboardCounts          `json:"counts"`
	RecentReports []model.InspectionReport `json:"recentReports"`
	RecentQuotes  []model.Quote            `json:"recentQuotes"`
}

type DashboardService struct {
	orgs    *OrganizationService
	users   *UserService
	reports *ReportService
	quotes  *QuoteService
}

func NewDashboardService(orgs *OrganizationService, users *UserService, reports *ReportService, quotes *QuoteService) *DashboardService {
	return &DashboardService{orgs: orgs, users: users, reports: reports, quotes: quotes}
}

// Summary counts everything visible to actor and picks the first few
// reports and quotes of the visible lists. Only super admins get an
// organization count; it stays zero for everyone else.
func (s *DashboardService) Summary(ctx context.Context, actor *model.User) (*Dashboard, error) {
	reports, err := s.reports.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	quotes, err := s.quotes.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	var orgs []model.Organization
	if isSuperAdmin(actor) {
		if orgs, err = s.orgs.List(ctx, actor); err != nil {
			return nil, err
		}
	}

	return &Dashboard{
		Counts: DashboardCounts{
			Reports:       len(reports),
			Quotes:        len(quotes),
			Users:         len(users),
			Organizations: len(orgs),
		},
		RecentReports: reports[:min(len(reports), dashboardRecent)],
		RecentQuotes:  quotes[:min(len(quotes), dashboardRecent)],
	}, nil
}
