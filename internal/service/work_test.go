package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/fixtures"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportUpdateCustomer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	peter := env.user(t, fixtures.Roofer1ID)

	_, err := env.reports.Update(ctx, peter, "report-1", model.ReportPatch{
		Customer: &model.CustomerInput{Name: "", Email: "not-an-email", Phone: "1", Address: "a"},
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Invalid email", verr.Fields["customer.email"])
	assert.Equal(t, "Name is required", verr.Fields["customer.name"])

	stored, err := env.store.GetReport(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, "DANDY Business Park", stored.Customer.Name)

	updated, err := env.reports.Update(ctx, peter, "report-1", model.ReportPatch{
		Customer: &model.CustomerInput{Name: " DANDY ApS ", Email: "drift@dandy.dk", Phone: "1", Address: "Vejle"},
	})
	require.NoError(t, err)
	assert.Equal(t, "DANDY ApS", updated.Customer.Name)
	assert.Equal(t, "drift@dandy.dk", updated.Customer.Email)
	assert.Equal(t, "customer-1", updated.Customer.ID)
}

func TestReportUpdateAssessment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	peter := env.user(t, fixtures.Roofer1ID)

	empty := ""
	_, err := env.reports.Update(ctx, peter, "report-1", model.ReportPatch{
		RoofAssessmentPatch: model.RoofAssessmentPatch{InsulationType: &empty},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	edges := "  Inddækning løs  "
	updated, err := env.reports.Update(ctx, peter, "report-1", model.ReportPatch{
		RoofAssessmentPatch: model.RoofAssessmentPatch{Edges: &edges},
	})
	require.NoError(t, err)
	assert.Equal(t, "Inddækning løs", updated.Edges)
	assert.Equal(t, "EPS og Mineraluld", updated.InsulationType)
}

func TestQuoteUpdateCustomer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	peter := env.user(t, fixtures.Roofer1ID)

	_, err := env.quotes.Update(ctx, peter, "quote-1", model.QuotePatch{
		Customer: &model.CustomerInput{Name: "Jens", Email: "nope", Phone: "1", Address: "a"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	updated, err := env.quotes.Update(ctx, peter, "quote-1", model.QuotePatch{
		Customer: &model.CustomerInput{Name: "Jens Olsen", Email: "jens.olsen@example.com", Phone: "1", Address: "a"},
	})
	require.NoError(t, err)
	assert.Equal(t, "jens.olsen@example.com", updated.Customer.Email)
	assert.Equal(t, "customer-1", updated.Customer.ID)
	assert.Equal(t, 9500.0, updated.Total)
}
