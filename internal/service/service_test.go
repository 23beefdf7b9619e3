package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/roofdesk/internal/fixtures"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/dangerclosesec/roofdesk/internal/validation"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store     *repository.MemoryStore
	orgs      *service.OrganizationService
	depts     *service.DepartmentService
	users     *service.UserService
	reports   *service.ReportService
	quotes    *service.QuoteService
	admin     *service.AdminService
	dashboard *service.DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := repository.NewMemoryStoreFrom(nil, fixtures.Dataset())
	v := validation.New()

	env := &testEnv{
		store:   store,
		orgs:    service.NewOrganizationService(store, v),
		depts:   service.NewDepartmentService(store, v),
		users:   service.NewUserService(store, v),
		reports: service.NewReportService(store, v),
		quotes:  service.NewQuoteService(store, v),
		admin:   service.NewAdminService(store, v),
	}
	env.dashboard = service.NewDashboardService(env.orgs, env.users, env.reports, env.quotes)
	return env
}

func (e *testEnv) user(t *testing.T, uid string) *model.User {
	t.Helper()
	u, err := e.store.GetUser(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func reportInput(customer string) model.ReportInput {
	return model.ReportInput{
		Customer: model.CustomerInput{
			Name:    customer,
			Email:   "kunde@example.com",
			Phone:   "+45 11 22 33 44",
			Address: "Vestergade 1",
		},
		Address:         "Vestergade 1",
		RoofType:        "Tegl",
		Findings:        "Loose tiles",
		Recommendations: "Replace tiles",
		RoofAssessment:  assessment(),
	}
}

func assessment() model.RoofAssessment {
	return model.RoofAssessment{
		ContactPerson:          "Flemming Krarup",
		Phone:                  "+4529815911",
		Email:                  "fwk@example.dk",
		AdvisorContact:         "Flemming Adolfsen",
		AdvisorPhone:           "+4521619540",
		AdvisorEmail:           "advisor@example.dk",
		RoofArea:               490,
		AccessConditions:       "Adgang med lang stige",
		TechnicalExecution:     "OK",
		Drainage:               "UV tagbrønde",
		Edges:                  "OK",
		Skylights:              "OK",
		TechnicalInstallations: "OK",
		InsulationType:         "EPS",
	}
}

func quoteInput(customer string) model.QuoteInput {
	return model.QuoteInput{
		Customer: model.CustomerInput{
			Name:    customer,
			Email:   "kunde@example.com",
			Phone:   "+45 11 22 33 44",
			Address: "Vestergade 1",
		},
		LineItems: []model.QuoteLineItemInput{
			{Description: "Udskiftning af tagsten", Quantity: 20, UnitPrice: 125},
			{Description: "Reparation af tagrender", Quantity: 1, UnitPrice: 1500},
			{Description: "Arbejdsløn", Quantity: 8, UnitPrice: 450},
		},
		Tax:        1900,
		ValidUntil: "2024-02-15",
	}
}
