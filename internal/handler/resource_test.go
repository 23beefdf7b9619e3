package handler_test

import (
	"net/http"
	"testing"

	"github.com/dangerclosesec/roofdesk/internal/handler"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assessment = map[string]string{
	"contactPerson":          "Flemming Krarup",
	"phone":                  "+4529815911",
	"email":                  "fwk@example.dk",
	"advisorContact":         "Flemming Adolfsen",
	"advisorPhone":           "+4521619540",
	"advisorEmail":           "advisor@example.dk",
	"accessConditions":       "Adgang med lang stige",
	"technicalExecution":     "OK",
	"drainage":               "UV tagbrønde",
	"edges":                  "OK",
	"skylights":              "OK",
	"technicalInstallations": "OK",
	"insulationType":         "EPS",
}

var customer = map[string]string{
	"name":    "Jens Olsen",
	"email":   "jens@example.com",
	"phone":   "+45 98 76 54 32",
	"address": "Nørrebrogade 45, 2200 København N",
}

func TestReportsAreScopedByRole(t *testing.T) {
	srv := newTestServer(t)
	peter := srv.login(t, "peter@taklaget.dk")
	morten := srv.login(t, "morten@taklaget.dk")

	rec := srv.do(t, http.MethodGet, "/api/reports", peter, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	reports := decode[handler.ReportsResponse](t, rec)
	require.Len(t, reports.Reports, 1)
	assert.Equal(t, "report-1", reports.Reports[0].ID)

	rec = srv.do(t, http.MethodGet, "/api/reports", morten, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reports":[]`)

	rec = srv.do(t, http.MethodGet, "/api/reports/report-1", morten, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Report not found")
}

func TestCreateAndUpdateReport(t *testing.T) {
	srv := newTestServer(t)
	morten := srv.login(t, "morten@taklaget.dk")

	body := map[string]any{
		"customer":        customer,
		"address":         "Nørrebrogade 45",
		"roofType":        "Tegl",
		"findings":        "Revnede tagsten",
		"recommendations": "Udskift tagsten",
		"photos":          []string{"https://example.com/a.jpg"},
		"roofArea":        120,
	}
	for k, v := range assessment {
		body[k] = v
	}
	rec := srv.do(t, http.MethodPost, "/api/reports", morten, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.ReportResponse](t, rec).Report

	assert.Equal(t, model.ReportDraft, created.Status)
	assert.Equal(t, "dept-2", created.DepartmentID)
	assert.Equal(t, "roofer-2", created.RooferID)
	assert.Equal(t, 120.0, created.RoofArea)
	assert.NotEmpty(t, created.Customer.ID)

	rec = srv.do(t, http.MethodPatch, "/api/reports/"+created.ID, morten, map[string]string{"status": "IN_PROGRESS"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[handler.ReportResponse](t, rec).Report
	assert.Equal(t, model.ReportInProgress, updated.Status)
	assert.Equal(t, "Tegl", updated.RoofType)

	rec = srv.do(t, http.MethodPatch, "/api/reports/"+created.ID, morten, map[string]string{"status": "DONE"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[handler.ErrorResponse](t, rec).Fields, "status")

	rec = srv.do(t, http.MethodPatch, "/api/reports/"+created.ID, morten, map[string]any{
		"customer": map[string]string{"id": "forged", "name": "", "email": "nope", "phone": "1", "address": "a"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decode[handler.ErrorResponse](t, rec).Fields
	assert.Equal(t, "Invalid email", fields["customer.email"])
	assert.Equal(t, "Name is required", fields["customer.name"])

	rec = srv.do(t, http.MethodPatch, "/api/reports/"+created.ID, morten, map[string]any{
		"customer": map[string]string{"id": "forged", "name": "Jens Olsen", "email": "jens@example.com", "phone": "1", "address": "a"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, created.Customer.ID, decode[handler.ReportResponse](t, rec).Report.Customer.ID)
}

func TestCreateReportValidation(t *testing.T) {
	srv := newTestServer(t)
	peter := srv.login(t, "peter@taklaget.dk")

	rec := srv.do(t, http.MethodPost, "/api/reports", peter, map[string]any{
		"customer": map[string]string{"name": "Jens", "email": "nope", "phone": "1", "address": "a"},
		"address":  "a",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[handler.ErrorResponse](t, rec)
	assert.False(t, resp.Ok)
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, "Invalid email", resp.Fields["customer.email"])
	assert.Equal(t, "Roof type is required", resp.Fields["roofType"])
	require.NotNil(t, resp.Details)
	assert.Contains(t, *resp.Details, "roofType: Roof type is required")
}

func TestCreateQuotePricesLineItems(t *testing.T) {
	srv := newTestServer(t)
	peter := srv.login(t, "peter@taklaget.dk")

	rec := srv.do(t, http.MethodPost, "/api/quotes", peter, map[string]any{
		"reportId": "report-1",
		"customer": customer,
		"lineItems": []map[string]any{
			{"description": "Udskiftning af tagsten", "quantity": 20, "unitPrice": 125, "total": 1},
			{"description": "Reparation af tagrender", "quantity": 1, "unitPrice": 1500},
			{"description": "Arbejdsløn", "quantity": 8, "unitPrice": 450},
		},
		"tax":        1900,
		"validUntil": "2024-02-15",
		"total":      42,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	q := decode[handler.QuoteResponse](t, rec).Quote
	assert.Equal(t, 7600.0, q.Subtotal)
	assert.Equal(t, 9500.0, q.Total)
	assert.Equal(t, 2500.0, q.LineItems[0].Total)
	assert.Equal(t, model.DefaultCurrency, q.Currency)
	assert.Equal(t, model.QuoteDraft, q.Status)

	rec = srv.do(t, http.MethodPatch, "/api/quotes/"+q.ID, peter, map[string]any{"tax": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 7600.0, decode[handler.QuoteResponse](t, rec).Quote.Total)

	rec = srv.do(t, http.MethodPost, "/api/quotes", peter, map[string]any{
		"customer":   customer,
		"lineItems":  []map[string]any{},
		"validUntil": "someday",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decode[handler.ErrorResponse](t, rec).Fields
	assert.Contains(t, fields, "lineItems")
	assert.Equal(t, "Invalid date", fields["validUntil"])
}

func TestOrganizationRoutes(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login(t, "admin@taklaget.dk")
	manager := srv.login(t, "manager@taklaget.dk")
	peter := srv.login(t, "peter@taklaget.dk")

	rec := srv.do(t, http.MethodPatch, "/api/organizations/taklaget", manager, map[string]string{"name": "Nyt navn"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPatch, "/api/organizations/taklaget", admin, map[string]string{"name": "Taklaget A/S"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Taklaget A/S", decode[handler.OrganizationResponse](t, rec).Organization.Name)

	rec = srv.do(t, http.MethodPost, "/api/organizations/taklaget/departments", manager, map[string]string{"name": "Odense", "description": "Fyn"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	dept := decode[handler.DepartmentResponse](t, rec).Department
	assert.Equal(t, "taklaget", dept.OrgID)

	rec = srv.do(t, http.MethodGet, "/api/organizations/taklaget/departments", peter, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[handler.DepartmentsResponse](t, rec).Departments, 3)

	rec = srv.do(t, http.MethodGet, "/api/organizations/taklaget/departments/"+dept.ID, peter, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/organizations/taklaget/departments", peter, map[string]string{"name": "Vejle", "description": "Trekanten"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/organizations/andet", manager, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserRoutes(t *testing.T) {
	srv := newTestServer(t)
	manager := srv.login(t, "manager@taklaget.dk")
	peter := srv.login(t, "peter@taklaget.dk")

	rec := srv.do(t, http.MethodGet, "/api/users", peter, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[handler.UsersResponse](t, rec).Users)

	rec = srv.do(t, http.MethodPost, "/api/users", manager, map[string]string{
		"email": "soren@taklaget.dk", "name": "Søren", "role": "ROOFER", "orgId": "taklaget", "departmentId": "dept-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	u := decode[handler.UserResponse](t, rec).User

	rec = srv.do(t, http.MethodPost, "/api/users", manager, map[string]string{
		"email": "soren@taklaget.dk", "name": "Søren", "role": "ROOFER", "orgId": "taklaget",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPatch, "/api/users/"+u.UID, manager, map[string]string{"role": "ORG_ADMIN"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	promoted := decode[handler.UserResponse](t, rec).User
	assert.Equal(t, model.RoleOrgAdmin, promoted.Role)
	assert.Empty(t, promoted.DepartmentID)

	rec = srv.do(t, http.MethodGet, "/api/users/"+u.UID, peter, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login(t, "admin@taklaget.dk")

	rec := srv.do(t, http.MethodGet, "/api/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[map[string]any](t, rec)
	assert.Equal(t, true, resp["ok"])
	counts := resp["counts"].(map[string]any)
	assert.EqualValues(t, 1, counts["reports"])
	assert.EqualValues(t, 1, counts["quotes"])
	assert.EqualValues(t, 4, counts["users"])
	assert.EqualValues(t, 1, counts["organizations"])
	assert.Len(t, resp["recentReports"], 1)
}
